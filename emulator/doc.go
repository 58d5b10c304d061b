// File: emulator/doc.go

// Package emulator implements the name-gated emulator variant of the
// tweezer device model.
//
// Where the tweezer device answers availability from per-position gate-time
// tables, the emulator answers from a flat gate-name allow-list: a gate is
// available on any qubits iff AddAvailableGate admitted its name, and every
// available gate reports unit time. PhaseShiftedControlledZ and
// PhaseShiftedControlledPhase additionally require their phase relation to
// resolve, exactly as on the table-driven devices.
//
// The device still carries a qubit→tweezer map so deactivations and tweezer
// shifts behave like the hardware model, but there are no layouts, no shift
// paths to validate, and no connectivity: TwoQubitEdges is always empty.
// ChangeDevice accepts the deactivate and tweezer-shift commands and rejects
// every layout command.
//
// Generic flattens the allow-list over the mapped qubits: single-qubit names
// on every qubit, two-qubit names on every ordered pair, three-qubit names
// on every ordered distinct triple. Multi-qubit names have no finite
// enumeration and are left out of the export.
//
// Errors: AddAvailableGate rejects names outside the hardware catalog with
// ErrUnknownGate; DeactivateQubit fails on unmapped qubits with
// ErrQubitUnmapped; shifting before any map exists fails with ErrNoQubitMap.
// Gate-time queries never return errors; a miss is (0, false).
package emulator
