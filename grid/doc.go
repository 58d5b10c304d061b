// Package grid models a rectangular lattice of optical-tweezer rows where
// two-qubit-gate availability is purely distance-derived.
//
// What:
//
//   - Device fixes the row/column dimensions, the per-row qubit occupation,
//     and the physical distance between rows at construction.
//   - Layouts are 2-D matrices of per-position y-coordinates, registered by
//     index; the initial layout is registered as index 0 and made current.
//   - A two-qubit gate is available when both qubits are mapped, the current
//     layout's Euclidean distance between them is within the cutoff, and the
//     device's phase relation resolves; its time grows with distance squared.
//   - ControlledControlled gates are gated by construction flags and require
//     all three qubit pairs to pass the two-qubit distance rule.
//   - MultiQubitZZ is available for groups of two or three qubits sharing a
//     row.
//
// Geometry:
//
//	A qubit at (row r, column c) sits at physical position
//	(r · rowDistance, layout[r][c]). The distance between two qubits is
//	sqrt((y1−y0)² + ((r1−r0)·rowDistance)²).
//
// Mutations:
//
//   - AddLayout / SwitchLayout manage the layout register in place.
//   - ChangeQubitPositions reassigns qubits to grid positions; each row's
//     occupancy count is an invariant and reassignments that would change it
//     fail.
//   - SetCutoff takes effect immediately; no history is kept.
//   - ChangeDevice dispatches pragma.OpChangeLayout and
//     pragma.OpShiftQubitPositions.
//
// Errors:
//
//   - ErrRowMismatch: qubits-per-row list does not match the row count.
//   - ErrColumnOverflow: a row's occupancy is negative or exceeds the columns.
//   - ErrLayoutShape: a layout matrix does not match the device dimensions.
//   - ErrLayoutExists / ErrLayoutUnknown: layout-register violations.
//   - ErrPositionsMismatch / ErrPositionBounds / ErrPositionCollision /
//     ErrRowOccupancy: rejected qubit reassignments.
//   - ErrOptionViolation: invalid construction option.
//
// Gate-time queries never return errors: an unavailable combination is a
// plain (0, false) miss.
package grid
