// File: circuit/circuit_test.go
package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qryddev/circuit"
)

func TestNew_KeepsOrder(t *testing.T) {
	c := circuit.New(
		circuit.Op("RotateX", 0),
		circuit.Op("PhaseShiftedControlledZ", 0, 1),
		circuit.Op(circuit.OpMeasureQubit, 1),
	)

	assert.Len(t, c, 3)
	assert.Equal(t, "RotateX", c[0].Name)
	assert.Equal(t, []int{0, 1}, c[1].Qubits)
	assert.Equal(t, circuit.OpMeasureQubit, c[2].Name)
}

func TestAdd_Appends(t *testing.T) {
	var c circuit.Circuit
	c.Add(circuit.OpDefinitionBit, 0)
	c.Add("PauliX", 2)
	c.Add(circuit.OpRepeatedMeasurement)

	assert.Len(t, c, 3)
	assert.Equal(t, circuit.Operation{Name: "PauliX", Qubits: []int{2}}, c[1])
	assert.Empty(t, c[2].Qubits)
}

func TestOp_NoQubits(t *testing.T) {
	op := circuit.Op(circuit.OpSetNumberOfMeasurements)

	assert.Equal(t, circuit.OpSetNumberOfMeasurements, op.Name)
	assert.Empty(t, op.Qubits)
}
