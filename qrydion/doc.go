// Package qrydion defines the shared capability contract of every QRyd
// device variant, the hardware gate catalog, and the GenericDevice — the
// fully explicit, geometry-free gate-table representation any variant can be
// exported to.
//
// The Device interface is the closed capability surface consumed by backends
// and tooling:
//
//	NumberQubits() int
//	SingleQubitGateTime(gate string, qubit int) (float64, bool)
//	TwoQubitGateTime(gate string, control, target int) (float64, bool)
//	ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool)
//	MultiQubitGateTime(gate string, qubits []int) (float64, bool)
//	TwoQubitEdges() []Edge
//	Generic() (*GenericDevice, error)
//	ChangeDevice(name string, payload []byte) error
//
// Gate-time queries report availability through the second return value: a
// miss is an absent result, never an error. ChangeDevice applies an encoded
// device-changing operation selected by name; devices reject names they do
// not support with ErrUnsupportedOperation.
//
// GenericDevice guarantees: converting any device D with Generic() yields a
// device reporting the identical time for every currently available
// (gate, qubit-tuple) of D, while unavailable combinations stay unavailable.
// Layout history and symbolic phase-relation metadata are not carried — only
// resolved times.
//
// The gate catalog (KnownGate, GateArity, and the Gate* name constants)
// enumerates the gate names the hardware understands, grouped by arity.
//
// Errors:
//
//	ErrQubitOutOfRange       – a table setter referenced a qubit outside the device.
//	ErrUnsupportedOperation  – ChangeDevice received an operation the device cannot apply.
//
// See examples in example_test.go.
package qrydion
