// File: tweezer/types.go
package tweezer

import (
	"errors"

	"github.com/katalvlaran/qryddev/phaserel"
)

// DefaultLayoutName is the layout every new device registers and starts on.
const DefaultLayoutName = "default"

// defaultDeviceName is the identity a freshly built device reports.
const defaultDeviceName = "qryd_tweezer_device"

// Sentinel errors for tweezer device mutation.
var (
	// ErrLayoutExists is returned when AddLayout reuses a registered name.
	ErrLayoutExists = errors.New("tweezer: layout name already registered")

	// ErrLayoutUnknown is returned when an operation names an unregistered
	// layout.
	ErrLayoutUnknown = errors.New("tweezer: layout name not registered")

	// ErrTweezerUnknown is returned when an operation references a tweezer
	// that no gate table of the target layout mentions.
	ErrTweezerUnknown = errors.New("tweezer: tweezer not present in the layout's gate tables")

	// ErrShiftSelfReference is returned when a shift path revisits its own
	// origin tweezer.
	ErrShiftSelfReference = errors.New("tweezer: shift path contains its origin tweezer")

	// ErrShiftRowRepetition is returned when a shift row lists a tweezer
	// twice.
	ErrShiftRowRepetition = errors.New("tweezer: shift row contains a repeated tweezer")

	// ErrQubitUnmapped is returned when DeactivateQubit names a qubit the
	// map does not hold.
	ErrQubitUnmapped = errors.New("tweezer: qubit not present in the qubit map")

	// ErrNoQubitMap is returned when a shift operation arrives before any
	// qubit map is installed.
	ErrNoQubitMap = errors.New("tweezer: no qubit map installed, nothing to shift")

	// ErrShiftInvalid is returned when a requested shift is not registered
	// for its origin, the origin is empty, or the path to the destination
	// is blocked.
	ErrShiftInvalid = errors.New("tweezer: shift not allowed on this device")
)

// Option configures device construction via functional arguments.
type Option func(*Options)

// Options holds the tunable construction parameters of a tweezer device.
type Options struct {
	// ControlledZPhaseRelation selects the PhaseShiftedControlledZ phase
	// relation: a relation name or a float literal.
	ControlledZPhaseRelation string

	// ControlledPhasePhaseRelation selects the PhaseShiftedControlledPhase
	// phase relation.
	ControlledPhasePhaseRelation string

	// Seed is the simulator seed forwarded to backends; HasSeed marks it
	// as set.
	Seed    int
	HasSeed bool
}

// DefaultOptions returns the construction defaults: both phase relations set
// to phaserel.DefaultRelation and no seed.
func DefaultOptions() Options {
	return Options{
		ControlledZPhaseRelation:     phaserel.DefaultRelation,
		ControlledPhasePhaseRelation: phaserel.DefaultRelation,
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

// WithSeed records a simulator seed on the device.
func WithSeed(seed int) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}
