// File: qrydion/device.go
package qrydion

import (
	"errors"
)

// Sentinel errors shared across the device packages.
var (
	// ErrQubitOutOfRange indicates a gate-table setter referenced a qubit
	// index outside the device's qubit range.
	ErrQubitOutOfRange = errors.New("qrydion: qubit index out of range")

	// ErrUnsupportedOperation indicates ChangeDevice received an operation
	// name the device cannot apply. Device packages wrap this sentinel with
	// the offending name.
	ErrUnsupportedOperation = errors.New("qrydion: operation not supported by this device")
)

// Edge is an undirected qubit pair of the device connectivity graph,
// normalized so that A < B. Connectivity is exported as plain pairs; no graph
// structure is imposed on callers.
type Edge struct {
	A, B int
}

// Device is the capability surface every QRyd device variant satisfies.
//
// All gate-time queries resolve availability for the named gate on the given
// qubit tuple: (time, true) when the operation is natively available,
// (0, false) otherwise. A lookup miss — unknown gate, unmapped qubit,
// out-of-reach pair — is an absent result, never an error.
type Device interface {
	// NumberQubits reports how many qubits the device currently exposes.
	NumberQubits() int

	// SingleQubitGateTime resolves the execution time of gate on qubit.
	SingleQubitGateTime(gate string, qubit int) (float64, bool)

	// TwoQubitGateTime resolves the execution time of gate on the
	// control/target pair.
	TwoQubitGateTime(gate string, control, target int) (float64, bool)

	// ThreeQubitGateTime resolves the execution time of gate on the
	// control0/control1/target triple.
	ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool)

	// MultiQubitGateTime resolves the execution time of gate on the qubit
	// group.
	MultiQubitGateTime(gate string, qubits []int) (float64, bool)

	// TwoQubitEdges exports the current two-qubit connectivity as
	// undirected pairs.
	TwoQubitEdges() []Edge

	// Generic exports the device into its explicit gate-table form.
	Generic() (*GenericDevice, error)

	// ChangeDevice applies the encoded device-changing operation selected
	// by name. Unsupported names surface ErrUnsupportedOperation.
	ChangeDevice(name string, payload []byte) error
}
