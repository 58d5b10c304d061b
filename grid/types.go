// File: grid/types.go
package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qryddev/phaserel"
)

// Sentinel errors for grid device construction and mutation.
var (
	// ErrRowMismatch is returned when the qubits-per-row list does not
	// cover exactly the device's rows.
	ErrRowMismatch = errors.New("grid: qubits-per-row length must equal number of rows")

	// ErrColumnOverflow is returned when a row's occupancy is negative or
	// exceeds the number of columns.
	ErrColumnOverflow = errors.New("grid: row occupancy out of range")

	// ErrLayoutShape is returned when a layout matrix does not match the
	// device's row/column dimensions.
	ErrLayoutShape = errors.New("grid: layout shape does not match device dimensions")

	// ErrLayoutExists is returned when AddLayout reuses a registered index.
	ErrLayoutExists = errors.New("grid: layout index already registered")

	// ErrLayoutUnknown is returned when SwitchLayout names an unregistered
	// index.
	ErrLayoutUnknown = errors.New("grid: layout index not registered")

	// ErrPositionsMismatch is returned when a reassignment map does not
	// cover the device's qubits exactly (a qubit missing or unknown).
	ErrPositionsMismatch = errors.New("grid: new positions must cover the device qubits exactly")

	// ErrPositionBounds is returned when a reassignment places a qubit
	// outside the grid.
	ErrPositionBounds = errors.New("grid: position outside the device grid")

	// ErrPositionCollision is returned when a reassignment places two
	// qubits on one position.
	ErrPositionCollision = errors.New("grid: two qubits assigned to one position")

	// ErrRowOccupancy is returned when a reassignment would change the
	// number of occupied positions in some row.
	ErrRowOccupancy = errors.New("grid: row occupancy counts must be preserved")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Position is a grid coordinate: the row index and the column index of an
// occupied tweezer position.
type Position struct {
	Row, Column int
}

// Option configures device construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the tunable construction parameters of a grid device.
type Options struct {
	// ControlledZPhaseRelation selects the PhaseShiftedControlledZ phase
	// relation: a relation name or a float literal.
	ControlledZPhaseRelation string

	// ControlledPhasePhaseRelation selects the PhaseShiftedControlledPhase
	// phase relation.
	ControlledPhasePhaseRelation string

	// AllowCCZ enables the ControlledControlledPauliZ gate family.
	AllowCCZ bool

	// AllowCCP enables the ControlledControlledPhaseShift gate family.
	AllowCCP bool

	// Cutoff is the maximum distance at which two-qubit gates operate.
	Cutoff float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the construction defaults: both phase relations set
// to phaserel.DefaultRelation, CCZ allowed, CCP disallowed, cutoff 1.0.
func DefaultOptions() Options {
	return Options{
		ControlledZPhaseRelation:     phaserel.DefaultRelation,
		ControlledPhasePhaseRelation: phaserel.DefaultRelation,
		AllowCCZ:                     true,
		AllowCCP:                     false,
		Cutoff:                       1.0,
		err:                          nil,
	}
}

// WithControlledZPhaseRelation sets the PhaseShiftedControlledZ relation.
// An empty string keeps the default.
func WithControlledZPhaseRelation(relation string) Option {
	return func(o *Options) {
		if relation != "" {
			o.ControlledZPhaseRelation = relation
		}
	}
}

// WithControlledPhasePhaseRelation sets the PhaseShiftedControlledPhase
// relation. An empty string keeps the default.
func WithControlledPhasePhaseRelation(relation string) Option {
	return func(o *Options) {
		if relation != "" {
			o.ControlledPhasePhaseRelation = relation
		}
	}
}

// WithAllowCCZ toggles the ControlledControlledPauliZ gate family.
func WithAllowCCZ(allow bool) Option {
	return func(o *Options) {
		o.AllowCCZ = allow
	}
}

// WithAllowCCP toggles the ControlledControlledPhaseShift gate family.
func WithAllowCCP(allow bool) Option {
	return func(o *Options) {
		o.AllowCCP = allow
	}
}

// WithCutoff sets the two-qubit distance cutoff; it must be positive.
func WithCutoff(cutoff float64) Option {
	return func(o *Options) {
		if cutoff <= 0 {
			o.err = fmt.Errorf("%w: cutoff must be positive (%v)", ErrOptionViolation, cutoff)

			return
		}
		o.Cutoff = cutoff
	}
}
