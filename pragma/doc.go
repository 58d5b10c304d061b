// Package pragma defines the mutation commands a device accepts through its
// ChangeDevice dispatch, together with their wire encoding.
//
// What
//
//   - Five commands, each a small value type with a stable wire name:
//   - ChangeLayout         → "PragmaChangeQRydLayout"    (grid, by layout index)
//   - ShiftQubitPositions  → "PragmaShiftQRydQubit"      (grid, new row/column per qubit)
//   - SwitchLayout         → "PragmaSwitchDeviceLayout"  (tweezer, by layout name)
//   - DeactivateQubit      → "PragmaDeactivateQRydQubit" (tweezer/emulator)
//   - ShiftQubitsTweezers  → "PragmaShiftQubitsTweezers" (tweezer/emulator, shift chains)
//   - Encode serializes a command into a self-identifying binary payload;
//     the matching Decode helper rejects payloads carrying any other command.
//   - Wrap bundles a command into a Wrapped{Name, Payload} pair ready for
//     dispatch; Wrapped.Apply feeds it to any device.
//
// Why
//
//	Devices receive mutations as (name, payload) pairs so that callers can
//	route commands without knowing the concrete device type. Each device
//	accepts the subset of commands that makes sense for its geometry and
//	rejects the rest.
//
// Errors
//
//	Decode helpers surface the codec sentinels: codec.ErrEmptyInput,
//	codec.ErrMalformed, and codec.ErrKind when the payload belongs to a
//	different command.
package pragma
