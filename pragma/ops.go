// File: pragma/ops.go
// Role: the five mutation commands and their Encode/Decode pairs.
// Every payload is a kind-tagged binary envelope whose kind is the command's
// wire name, so a payload can never be decoded as the wrong command.

package pragma

import (
	"github.com/katalvlaran/qryddev/codec"
)

// ChangeLayout switches a grid device to the registered layout with the
// given index.
type ChangeLayout struct {
	// NewLayout is the index of the target layout in registration order.
	NewLayout int
}

// Name returns OpChangeLayout.
func (op ChangeLayout) Name() string { return OpChangeLayout }

// Encode serializes the command for dispatch.
func (op ChangeLayout) Encode() ([]byte, error) {
	return codec.EncodeBinaryKind(OpChangeLayout, op)
}

// DecodeChangeLayout rejects payloads of any other command via codec.ErrKind.
func DecodeChangeLayout(payload []byte) (ChangeLayout, error) {
	var op ChangeLayout
	if err := codec.DecodeBinaryKind(payload, OpChangeLayout, &op); err != nil {
		return ChangeLayout{}, err
	}

	return op, nil
}

// ShiftQubitPositions moves grid qubits to new positions. Keys are qubit
// indices; values are {row, column} pairs in the current layout.
type ShiftQubitPositions struct {
	Positions map[int][2]int
}

// Name returns OpShiftQubitPositions.
func (op ShiftQubitPositions) Name() string { return OpShiftQubitPositions }

// Encode serializes the command for dispatch.
func (op ShiftQubitPositions) Encode() ([]byte, error) {
	return codec.EncodeBinaryKind(OpShiftQubitPositions, op)
}

// DecodeShiftQubitPositions is the inverse of ShiftQubitPositions.Encode.
func DecodeShiftQubitPositions(payload []byte) (ShiftQubitPositions, error) {
	var op ShiftQubitPositions
	if err := codec.DecodeBinaryKind(payload, OpShiftQubitPositions, &op); err != nil {
		return ShiftQubitPositions{}, err
	}

	return op, nil
}

// SwitchLayout switches a tweezer device to the named layout.
type SwitchLayout struct {
	NewLayout string
}

// Name returns OpSwitchLayout.
func (op SwitchLayout) Name() string { return OpSwitchLayout }

// Encode serializes the command for dispatch.
func (op SwitchLayout) Encode() ([]byte, error) {
	return codec.EncodeBinaryKind(OpSwitchLayout, op)
}

// DecodeSwitchLayout is the inverse of SwitchLayout.Encode.
func DecodeSwitchLayout(payload []byte) (SwitchLayout, error) {
	var op SwitchLayout
	if err := codec.DecodeBinaryKind(payload, OpSwitchLayout, &op); err != nil {
		return SwitchLayout{}, err
	}

	return op, nil
}

// DeactivateQubit removes a qubit from the device's qubit map.
type DeactivateQubit struct {
	Qubit int
}

// Name returns OpDeactivateQubit.
func (op DeactivateQubit) Name() string { return OpDeactivateQubit }

// Encode serializes the command for dispatch.
func (op DeactivateQubit) Encode() ([]byte, error) {
	return codec.EncodeBinaryKind(OpDeactivateQubit, op)
}

// DecodeDeactivateQubit is the inverse of DeactivateQubit.Encode.
func DecodeDeactivateQubit(payload []byte) (DeactivateQubit, error) {
	var op DeactivateQubit
	if err := codec.DecodeBinaryKind(payload, OpDeactivateQubit, &op); err != nil {
		return DeactivateQubit{}, err
	}

	return op, nil
}

// ShiftQubitsTweezers moves mapped qubits between tweezer positions. Each
// shift is a {from, to} tweezer pair; shifts apply in slice order, so chains
// like {1→2, 2→3} vacate positions as they go.
type ShiftQubitsTweezers struct {
	Shifts [][2]int
}

// Name returns OpShiftQubitsTweezers.
func (op ShiftQubitsTweezers) Name() string { return OpShiftQubitsTweezers }

// Encode serializes the command for dispatch.
func (op ShiftQubitsTweezers) Encode() ([]byte, error) {
	return codec.EncodeBinaryKind(OpShiftQubitsTweezers, op)
}

// DecodeShiftQubitsTweezers is the inverse of ShiftQubitsTweezers.Encode.
func DecodeShiftQubitsTweezers(payload []byte) (ShiftQubitsTweezers, error) {
	var op ShiftQubitsTweezers
	if err := codec.DecodeBinaryKind(payload, OpShiftQubitsTweezers, &op); err != nil {
		return ShiftQubitsTweezers{}, err
	}

	return op, nil
}
