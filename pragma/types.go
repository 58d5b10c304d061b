// File: pragma/types.go
package pragma

import (
	"sort"

	"github.com/katalvlaran/qryddev/qrydion"
)

// Wire names of the device-mutation commands. ChangeDevice dispatch matches
// on these strings, so they are part of the serialization contract and must
// never change.
const (
	// OpChangeLayout switches a grid device to a registered layout index.
	OpChangeLayout = "PragmaChangeQRydLayout"
	// OpShiftQubitPositions moves grid qubits to new row/column positions.
	OpShiftQubitPositions = "PragmaShiftQRydQubit"
	// OpSwitchLayout switches a tweezer device to a named layout.
	OpSwitchLayout = "PragmaSwitchDeviceLayout"
	// OpDeactivateQubit removes a qubit from the tweezer qubit map.
	OpDeactivateQubit = "PragmaDeactivateQRydQubit"
	// OpShiftQubitsTweezers moves mapped qubits along tweezer shift chains.
	OpShiftQubitsTweezers = "PragmaShiftQubitsTweezers"
)

// Operation is a device-mutation command that knows its wire name and can
// serialize itself into a dispatchable payload.
type Operation interface {
	// Name returns the stable wire name of the command.
	Name() string
	// Encode serializes the command into a self-identifying binary payload.
	Encode() ([]byte, error)
}

// Wrapped is a command in dispatch form: the wire name plus the encoded
// payload, exactly what Device.ChangeDevice consumes.
type Wrapped struct {
	Name    string
	Payload []byte
}

// Wrap encodes op into its dispatch form.
func Wrap(op Operation) (Wrapped, error) {
	payload, err := op.Encode()
	if err != nil {
		return Wrapped{}, err
	}

	return Wrapped{Name: op.Name(), Payload: payload}, nil
}

// Apply dispatches the wrapped command to d.
func (w Wrapped) Apply(d qrydion.Device) error {
	return d.ChangeDevice(w.Name, w.Payload)
}

// Known reports whether name is one of the five command wire names.
func Known(name string) bool {
	switch name {
	case OpChangeLayout, OpShiftQubitPositions, OpSwitchLayout, OpDeactivateQubit, OpShiftQubitsTweezers:
		return true
	default:
		return false
	}
}

// Names returns all command wire names, sorted.
func Names() []string {
	names := []string{
		OpChangeLayout,
		OpShiftQubitPositions,
		OpSwitchLayout,
		OpDeactivateQubit,
		OpShiftQubitsTweezers,
	}
	sort.Strings(names)

	return names
}
