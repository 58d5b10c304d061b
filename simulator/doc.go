// Package simulator validates circuits against a device's capability
// surface.
//
// The Backend wraps any qrydion.Device and answers one question: can this
// device execute this circuit? ValidateCircuit walks the operation list in
// order and stops at the first operation the device cannot run, wrapping the
// failure with the operation's position.
//
// Three operation classes are checked:
//
//   - Measurement and bookkeeping operations (MeasureQubit, DefinitionBit,
//     the measurement pragmas) always pass; every device measures.
//   - Active resets pass only on devices that expose and enable the reset
//     capability; all other devices reject them with ErrResetUnsupported.
//   - Gate operations resolve their arity through the hardware catalog,
//     must carry a matching qubit count, and must hit an available gate
//     time on the device for their exact qubit tuple.
//
// Errors:
//
//	ErrGateUnavailable  - unknown gate name, or a lookup miss on the device.
//	ErrOperandCount     - qubit list length does not match the gate arity.
//	ErrResetUnsupported - active reset on a device without reset support.
//
// The backend holds no mutable state and is safe for concurrent use as long
// as the underlying device is not mutated concurrently.
package simulator
