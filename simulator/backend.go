// File: simulator/backend.go
package simulator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qryddev/circuit"
	"github.com/katalvlaran/qryddev/qrydion"
)

// Sentinel errors surfaced by circuit validation.
var (
	// ErrGateUnavailable indicates an operation names a gate the device
	// cannot execute, either at all or on the given qubits.
	ErrGateUnavailable = errors.New("simulator: gate not available on the device")

	// ErrOperandCount indicates an operation carries a qubit list whose
	// length does not match the gate's arity.
	ErrOperandCount = errors.New("simulator: operand count does not match the gate arity")

	// ErrResetUnsupported indicates the circuit actively resets a qubit on
	// a device that does not allow resets.
	ErrResetUnsupported = errors.New("simulator: active reset not allowed on the device")
)

// resetter is the optional capability probed when a circuit carries an
// active reset. Devices without the method reject resets.
type resetter interface {
	AllowReset() bool
}

// Backend checks circuits against one device's capability surface before
// they are handed to an executor. It runs nothing itself.
type Backend struct {
	// Device answers the gate-time queries.
	Device qrydion.Device
	// NumberQubits is the device's qubit count captured at construction.
	NumberQubits int
}

// New builds a validation backend bound to device.
func New(device qrydion.Device) *Backend {
	return &Backend{Device: device, NumberQubits: device.NumberQubits()}
}

// ValidateCircuit walks c in order and reports the first operation the
// backend's device cannot execute. Measurement and bookkeeping operations
// always pass; active resets pass only on devices that allow them; gate
// operations must resolve to an available gate time on their exact qubit
// tuple. A nil return means every operation is executable.
func (b *Backend) ValidateCircuit(c circuit.Circuit) error {
	for i, op := range c {
		if err := b.validate(op); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	return nil
}

// validate checks a single operation against the device.
func (b *Backend) validate(op circuit.Operation) error {
	switch op.Name {
	case circuit.OpMeasureQubit, circuit.OpDefinitionBit,
		circuit.OpSetNumberOfMeasurements, circuit.OpRepeatedMeasurement:
		return nil
	case circuit.OpActiveReset:
		if r, ok := b.Device.(resetter); ok && r.AllowReset() {
			return nil
		}

		return ErrResetUnsupported
	}

	arity, ok := qrydion.GateArity(op.Name)
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", ErrGateUnavailable, op.Name)
	}

	available := false
	switch arity {
	case qrydion.AritySingle:
		if len(op.Qubits) != 1 {
			return fmt.Errorf("%w: %q takes 1 qubit, got %d", ErrOperandCount, op.Name, len(op.Qubits))
		}
		_, available = b.Device.SingleQubitGateTime(op.Name, op.Qubits[0])
	case qrydion.ArityTwo:
		if len(op.Qubits) != 2 {
			return fmt.Errorf("%w: %q takes 2 qubits, got %d", ErrOperandCount, op.Name, len(op.Qubits))
		}
		_, available = b.Device.TwoQubitGateTime(op.Name, op.Qubits[0], op.Qubits[1])
	case qrydion.ArityThree:
		if len(op.Qubits) != 3 {
			return fmt.Errorf("%w: %q takes 3 qubits, got %d", ErrOperandCount, op.Name, len(op.Qubits))
		}
		_, available = b.Device.ThreeQubitGateTime(op.Name, op.Qubits[0], op.Qubits[1], op.Qubits[2])
	case qrydion.ArityMulti:
		if len(op.Qubits) == 0 {
			return fmt.Errorf("%w: %q takes at least 1 qubit, got 0", ErrOperandCount, op.Name)
		}
		_, available = b.Device.MultiQubitGateTime(op.Name, op.Qubits)
	}
	if !available {
		return fmt.Errorf("%w: %q on qubits %v", ErrGateUnavailable, op.Name, op.Qubits)
	}

	return nil
}
