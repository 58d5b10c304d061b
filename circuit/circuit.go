// File: circuit/circuit.go
package circuit

// Names of the non-gate operations circuits may carry. Gate operations use
// the hardware catalog names directly.
const (
	// OpMeasureQubit reads one qubit into a classical bit.
	OpMeasureQubit = "MeasureQubit"
	// OpDefinitionBit declares a classical readout register.
	OpDefinitionBit = "DefinitionBit"
	// OpSetNumberOfMeasurements fixes the repetition count of a run.
	OpSetNumberOfMeasurements = "PragmaSetNumberOfMeasurements"
	// OpRepeatedMeasurement measures every qubit repeatedly.
	OpRepeatedMeasurement = "PragmaRepeatedMeasurement"
	// OpActiveReset actively resets a qubit to the ground state; legal only
	// on devices that allow resets.
	OpActiveReset = "PragmaActiveReset"
)

// Operation is one named operation over explicit qubit indices. Gate names
// follow the hardware catalog; measurement and pragma names are listed
// above.
type Operation struct {
	Name   string
	Qubits []int
}

// Op builds an Operation.
func Op(name string, qubits ...int) Operation {
	return Operation{Name: name, Qubits: qubits}
}

// Circuit is an ordered operation list.
type Circuit []Operation

// New builds a circuit from the given operations.
func New(ops ...Operation) Circuit {
	return Circuit(ops)
}

// Add appends an operation to the circuit.
func (c *Circuit) Add(name string, qubits ...int) {
	*c = append(*c, Operation{Name: name, Qubits: qubits})
}
