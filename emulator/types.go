// File: emulator/types.go
// Role: sentinel errors and construction options of the emulator device.

package emulator

import (
	"errors"

	"github.com/katalvlaran/qryddev/phaserel"
)

// Sentinel errors returned by the emulator device. Wrapped with context at
// the call site; match with errors.Is.
var (
	// ErrUnknownGate flags an allow-list entry that is not in the hardware
	// gate catalog.
	ErrUnknownGate = errors.New("emulator: gate name not in the hardware catalog")
	// ErrQubitUnmapped flags a deactivation of a qubit the map does not hold.
	ErrQubitUnmapped = errors.New("emulator: qubit not in the qubit map")
	// ErrNoQubitMap flags a shift request before any qubit map exists.
	ErrNoQubitMap = errors.New("emulator: no qubit map installed, nothing to shift")
)

// Options collects the construction parameters of an emulator device.
type Options struct {
	// ControlledZPhaseRelation names the phase relation behind
	// PhaseShiftedControlledZ. Either a relation name or a float literal.
	ControlledZPhaseRelation string
	// ControlledPhasePhaseRelation is the PhaseShiftedControlledPhase
	// counterpart.
	ControlledPhasePhaseRelation string
	// Seed is the simulator seed forwarded to backends; meaningful only
	// when HasSeed is set.
	Seed int
	// HasSeed records whether a seed was requested.
	HasSeed bool
}

// DefaultOptions returns the construction defaults: both phase relations on
// the calibrated default, no seed.
func DefaultOptions() Options {
	return Options{
		ControlledZPhaseRelation:     phaserel.DefaultRelation,
		ControlledPhasePhaseRelation: phaserel.DefaultRelation,
	}
}

// Option mutates Options during construction.
type Option func(*Options)

// WithControlledZPhaseRelation overrides the PhaseShiftedControlledZ phase
// relation. The empty string keeps the default.
func WithControlledZPhaseRelation(relation string) Option {
	return func(o *Options) {
		if relation != "" {
			o.ControlledZPhaseRelation = relation
		}
	}
}

// WithControlledPhasePhaseRelation overrides the PhaseShiftedControlledPhase
// phase relation. The empty string keeps the default.
func WithControlledPhasePhaseRelation(relation string) Option {
	return func(o *Options) {
		if relation != "" {
			o.ControlledPhasePhaseRelation = relation
		}
	}
}

// WithSeed records a simulator seed.
func WithSeed(seed int) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}
