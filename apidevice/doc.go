// File: apidevice/doc.go

// Package apidevice implements the fixed cloud-emulator devices behind the
// web API: a square and a triangular lattice of 30 qubits each, five columns
// by six rows.
//
// Unlike the grid and tweezer models these devices carry no mutable state:
// topology and gate set are baked in, ChangeDevice always fails, and the
// wire form is just the constructor arguments (seed, phase relations, and
// the triangular three-qubit flags).
//
// Both devices implement the native single-qubit set with a uniform 1e-6
// time and the PhaseShiftedControlledZ / PhaseShiftedControlledPhase pair on
// neighbouring qubits, provided the matching phase relation resolves. The
// triangular device can additionally offer ControlledControlledPauliZ and
// ControlledControlledPhaseShift when enabled at construction; a triple is
// available when all three of its pairs are lattice neighbours.
//
// Qubit numbering is row-major: qubit q sits in column q%5. On the square
// lattice the neighbours of q are q±1 within the row and q±5 across rows.
// The triangular lattice offsets every second row by half a column, which
// adds the alternating q±4 / q±6 diagonals.
package apidevice
