// File: apidevice/triangular.go
// Role: the triangular-lattice cloud emulator device.

package apidevice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qryddev/phaserel"
	"github.com/katalvlaran/qryddev/qrydion"
)

// TriangularDevice is the fixed 30-qubit triangular-lattice emulator behind
// the web API. On top of the square device's gate set it can offer the
// three-qubit ControlledControlledPauliZ and ControlledControlledPhaseShift,
// gated by construction flags.
type TriangularDevice struct {
	seed       int
	czRelation string
	cpRelation string
	allowCCZ   bool
	allowCCP   bool
}

// NewTriangular constructs the triangular cloud device. Empty relation
// strings select the calibrated default relation; allowCCZ and allowCCP
// enable the three-qubit gates.
func NewTriangular(seed int, czRelation, cpRelation string, allowCCZ, allowCCP bool) *TriangularDevice {
	return &TriangularDevice{
		seed:       seed,
		czRelation: orDefaultRelation(czRelation),
		cpRelation: orDefaultRelation(cpRelation),
		allowCCZ:   allowCCZ,
		allowCCP:   allowCCP,
	}
}

// QRydBackend reports the backend identifier the web API expects.
func (d *TriangularDevice) QRydBackend() string { return TriangularBackend }

// Seed reports the simulator seed submitted with jobs.
func (d *TriangularDevice) Seed() int { return d.seed }

// NumberQubits reports the fixed device capacity.
func (d *TriangularDevice) NumberQubits() int { return numberQubits }

// AllowCCZ reports whether ControlledControlledPauliZ is enabled.
func (d *TriangularDevice) AllowCCZ() bool { return d.allowCCZ }

// AllowCCP reports whether ControlledControlledPhaseShift is enabled.
func (d *TriangularDevice) AllowCCP() bool { return d.allowCCP }

// SingleQubitGateTime resolves gate on qubit against the native single-qubit
// set.
func (d *TriangularDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	return singleNativeTime(gate, qubit)
}

// TwoQubitGateTime resolves gate on the control/target pair: available for
// PhaseShiftedControlledZ and PhaseShiftedControlledPhase on neighbouring
// pairs, provided the gate's phase relation resolves.
func (d *TriangularDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if !validPair(control, target) {
		return 0, false
	}
	switch gate {
	case qrydion.GatePhaseShiftedControlledZ:
		if !phaserel.Valid(d.czRelation) {
			return 0, false
		}
	case qrydion.GatePhaseShiftedControlledPhase:
		if !phaserel.Valid(d.cpRelation) {
			return 0, false
		}
	default:
		return 0, false
	}
	if !triangularNeighbours(control, target) {
		return 0, false
	}

	return nativeGateTime, true
}

// ThreeQubitGateTime resolves the triangular three-qubit gates: available
// when the flag admits the gate and all three qubit pairs are linked by the
// matching phase-shifted two-qubit gate.
func (d *TriangularDevice) ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool) {
	var probe string
	switch gate {
	case qrydion.GateControlledControlledPauliZ:
		if !d.allowCCZ {
			return 0, false
		}
		probe = qrydion.GatePhaseShiftedControlledZ
	case qrydion.GateControlledControlledPhaseShift:
		if !d.allowCCP {
			return 0, false
		}
		probe = qrydion.GatePhaseShiftedControlledPhase
	default:
		return 0, false
	}

	pairs := [][2]int{{control0, target}, {control0, control1}, {control1, target}}
	for _, pair := range pairs {
		if _, ok := d.TwoQubitGateTime(probe, pair[0], pair[1]); !ok {
			return 0, false
		}
	}

	return nativeGateTime, true
}

// MultiQubitGateTime reports no multi-qubit gates on the triangular device.
func (d *TriangularDevice) MultiQubitGateTime(string, []int) (float64, bool) {
	return 0, false
}

// PhaseShiftControlledZ resolves the device's PhaseShiftedControlledZ phase
// shift: the configured relation evaluated at π.
func (d *TriangularDevice) PhaseShiftControlledZ() (float64, error) {
	return phaserel.PhiThetaRelation(d.czRelation, math.Pi)
}

// PhaseShiftControlledPhase resolves the device's PhaseShiftedControlledPhase
// phase shift at theta.
func (d *TriangularDevice) PhaseShiftControlledPhase(theta float64) (float64, error) {
	return phaserel.PhiThetaRelation(d.cpRelation, theta)
}

// GateTimeControlledZ reports the time of a PhaseShiftedControlledZ with the
// given phi on the pair.
func (d *TriangularDevice) GateTimeControlledZ(control, target int, phi float64) (float64, bool) {
	_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, control, target)
	relationPhi, err := d.PhaseShiftControlledZ()

	return controlledTime(ok, relationPhi, err, phi)
}

// GateTimeControlledPhase reports the time of a PhaseShiftedControlledPhase
// with the given phi and theta on the pair.
func (d *TriangularDevice) GateTimeControlledPhase(control, target int, phi, theta float64) (float64, bool) {
	_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledPhase, control, target)
	relationPhi, err := d.PhaseShiftControlledPhase(theta)

	return controlledTime(ok, relationPhi, err, phi)
}

// TwoQubitEdges exports the lattice connectivity, sorted by (A, B).
func (d *TriangularDevice) TwoQubitEdges() []qrydion.Edge {
	return probeEdges(d)
}

// Generic exports the device into its explicit gate-table form.
func (d *TriangularDevice) Generic() (*qrydion.GenericDevice, error) {
	return exportGeneric(d)
}

// ChangeDevice rejects every mutation: the cloud devices are fixed.
func (d *TriangularDevice) ChangeDevice(name string, _ []byte) error {
	return fmt.Errorf("apidevice: %q: %w, the cloud devices are fixed", name, qrydion.ErrUnsupportedOperation)
}

// Clone returns an independent copy of the device.
func (d *TriangularDevice) Clone() *TriangularDevice {
	clone := *d

	return &clone
}
