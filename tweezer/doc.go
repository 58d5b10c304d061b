// Package tweezer models a trap array whose connectivity is written down
// explicitly instead of being derived from geometry.
//
// What:
//
//   - Layouts are named and registered empty; each carries four gate-time
//     tables keyed by tweezer positions (single, pair, ordered triple,
//     sorted group) plus the allowed shift paths out of each tweezer.
//   - A single global qubit→tweezer map decides which positions are
//     occupied. Queries resolve qubits through the map first, then consult
//     the CURRENT layout's tables only; an unmapped qubit is a plain miss.
//   - PhaseShiftedControlledZ and PhaseShiftedControlledPhase additionally
//     require the device's phase relation to resolve.
//
// The qubit map:
//
//   - A fresh device has no map; the first SwitchLayout installs the
//     trivial identity map over the layout's tweezers 0..MaxTweezer().
//   - AddQubitTweezerMapping assigns explicitly; a tweezer holds at most
//     one qubit, so mapping onto an occupied tweezer evicts the previous
//     holder.
//   - Writing any gate-time table clears the map: positions changed
//     meaning, callers must rebuild the assignment.
//
// Shifts:
//
//   - AllowedTweezerShifts registers ordered escape paths per tweezer; a
//     destination is reachable only while every path position before it is
//     free. AllowedTweezerShiftsFromRows derives the paths from physical
//     rows (leftwards and rightwards from each position).
//   - pragma.OpShiftQubitsTweezers validates every shift against the
//     occupancy before applying any of them.
//
// Mutations via ChangeDevice: pragma.OpSwitchLayout,
// pragma.OpDeactivateQubit, pragma.OpShiftQubitsTweezers. The grid
// commands (indexed layouts, grid position shifts) are rejected with a
// pointer to the tweezer counterpart.
//
// Errors:
//
//   - ErrLayoutExists / ErrLayoutUnknown: layout-register violations.
//   - ErrTweezerUnknown: an operation referenced a tweezer no gate table
//     of the target layout mentions.
//   - ErrShiftSelfReference / ErrShiftRowRepetition: rejected shift
//     registrations.
//   - ErrQubitUnmapped: deactivating a qubit the map does not hold.
//   - ErrNoQubitMap / ErrShiftInvalid: rejected shift operations.
//
// Gate-time queries never return errors: an unavailable combination is a
// plain (0, false) miss.
package tweezer
