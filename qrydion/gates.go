// File: qrydion/gates.go
package qrydion

import "sort"

// Arity classifies a gate name by the number of qubits it addresses.
type Arity int

const (
	// AritySingle marks single-qubit gates.
	AritySingle Arity = iota
	// ArityTwo marks two-qubit gates.
	ArityTwo
	// ArityThree marks three-qubit gates.
	ArityThree
	// ArityMulti marks gates addressing an arbitrary qubit group.
	ArityMulti
)

// String implements fmt.Stringer for diagnostics.
func (a Arity) String() string {
	switch a {
	case AritySingle:
		return "single"
	case ArityTwo:
		return "two"
	case ArityThree:
		return "three"
	case ArityMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Names of the gates the device implementations reference directly.
// The full hardware catalog lives in the arity lists below.
const (
	GatePhaseShiftState1 = "PhaseShiftState1"
	GateRotateX          = "RotateX"
	GateRotateY          = "RotateY"
	GateRotateZ          = "RotateZ"
	GateRotateXY         = "RotateXY"
	GatePauliX           = "PauliX"
	GatePauliY           = "PauliY"
	GatePauliZ           = "PauliZ"
	GateSqrtPauliX       = "SqrtPauliX"
	GateInvSqrtPauliX    = "InvSqrtPauliX"

	GatePhaseShiftedControlledZ     = "PhaseShiftedControlledZ"
	GatePhaseShiftedControlledPhase = "PhaseShiftedControlledPhase"

	GateControlledControlledPauliZ     = "ControlledControlledPauliZ"
	GateControlledControlledPhaseShift = "ControlledControlledPhaseShift"

	GateMultiQubitZZ = "MultiQubitZZ"
)

// singleQubitGates lists every single-qubit gate name of the hardware catalog.
var singleQubitGates = []string{
	"SingleQubitGate",
	GateRotateZ,
	GateRotateX,
	GateRotateY,
	GatePauliX,
	GatePauliY,
	GatePauliZ,
	GateSqrtPauliX,
	GateInvSqrtPauliX,
	"Hadamard",
	"SGate",
	"TGate",
	"InvSGate",
	"InvTGate",
	GatePhaseShiftState1,
	"PhaseShiftState0",
	"RotateAroundSphericalAxis",
	GateRotateXY,
	"GPi",
	"GPi2",
	"Identity",
	"SqrtPauliY",
	"InvSqrtPauliY",
}

// twoQubitGates lists every two-qubit gate name of the hardware catalog.
var twoQubitGates = []string{
	"CNOT",
	"SWAP",
	"ISwap",
	"FSwap",
	"SqrtISwap",
	"InvSqrtISwap",
	"XY",
	"ControlledPhaseShift",
	"ControlledPauliY",
	"ControlledPauliZ",
	"MolmerSorensenXX",
	"VariableMSXX",
	"GivensRotation",
	"GivensRotationLittleEndian",
	"Qsim",
	"Fsim",
	"SpinInteraction",
	"Bogoliubov",
	"PMInteraction",
	"ComplexPMInteraction",
	GatePhaseShiftedControlledZ,
	GatePhaseShiftedControlledPhase,
	"ControlledRotateX",
	"ControlledRotateXY",
	"EchoCrossResonance",
}

// threeQubitGates lists every three-qubit gate name of the hardware catalog.
var threeQubitGates = []string{
	GateControlledControlledPauliZ,
	GateControlledControlledPhaseShift,
	"Toffoli",
	"PhaseShiftedControlledControlledZ",
	"PhaseShiftedControlledControlledPhase",
}

// multiQubitGates lists every multi-qubit gate name of the hardware catalog.
var multiQubitGates = []string{
	"MultiQubitMS",
	GateMultiQubitZZ,
}

// gateArities indexes the full catalog by name.
var gateArities = func() map[string]Arity {
	m := make(map[string]Arity, len(singleQubitGates)+len(twoQubitGates)+len(threeQubitGates)+len(multiQubitGates))
	for _, name := range singleQubitGates {
		m[name] = AritySingle
	}
	for _, name := range twoQubitGates {
		m[name] = ArityTwo
	}
	for _, name := range threeQubitGates {
		m[name] = ArityThree
	}
	for _, name := range multiQubitGates {
		m[name] = ArityMulti
	}

	return m
}()

// KnownGate reports whether name belongs to the hardware gate catalog.
// Complexity: O(1).
func KnownGate(name string) bool {
	_, ok := gateArities[name]

	return ok
}

// GateArity resolves the arity of a catalog gate name.
// Returns false for names outside the catalog.
// Complexity: O(1).
func GateArity(name string) (Arity, bool) {
	a, ok := gateArities[name]

	return a, ok
}

// GateNames returns the catalog names of the given arity, sorted.
// The slice is freshly allocated on every call.
func GateNames(arity Arity) []string {
	var src []string
	switch arity {
	case AritySingle:
		src = singleQubitGates
	case ArityTwo:
		src = twoQubitGates
	case ArityThree:
		src = threeQubitGates
	case ArityMulti:
		src = multiQubitGates
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	sort.Strings(out)

	return out
}
