// File: apidevice/square.go
// Role: the square-lattice cloud emulator device.

package apidevice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qryddev/phaserel"
	"github.com/katalvlaran/qryddev/qrydion"
)

// SquareDevice is the fixed 30-qubit square-lattice emulator behind the web
// API. Its topology and gate set never change: ChangeDevice always fails.
type SquareDevice struct {
	seed       int
	czRelation string
	cpRelation string
}

// NewSquare constructs the square cloud device. Empty relation strings
// select the calibrated default relation.
func NewSquare(seed int, czRelation, cpRelation string) *SquareDevice {
	return &SquareDevice{
		seed:       seed,
		czRelation: orDefaultRelation(czRelation),
		cpRelation: orDefaultRelation(cpRelation),
	}
}

// QRydBackend reports the backend identifier the web API expects.
func (d *SquareDevice) QRydBackend() string { return SquareBackend }

// Seed reports the simulator seed submitted with jobs.
func (d *SquareDevice) Seed() int { return d.seed }

// NumberQubits reports the fixed device capacity.
func (d *SquareDevice) NumberQubits() int { return numberQubits }

// SingleQubitGateTime resolves gate on qubit against the native single-qubit
// set.
func (d *SquareDevice) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	return singleNativeTime(gate, qubit)
}

// TwoQubitGateTime resolves gate on the control/target pair: available for
// PhaseShiftedControlledZ and PhaseShiftedControlledPhase on neighbouring
// pairs, provided the gate's phase relation resolves.
func (d *SquareDevice) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
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
	if !squareNeighbours(control, target) {
		return 0, false
	}

	return nativeGateTime, true
}

// ThreeQubitGateTime reports no three-qubit gates on the square device.
func (d *SquareDevice) ThreeQubitGateTime(string, int, int, int) (float64, bool) {
	return 0, false
}

// MultiQubitGateTime reports no multi-qubit gates on the square device.
func (d *SquareDevice) MultiQubitGateTime(string, []int) (float64, bool) {
	return 0, false
}

// PhaseShiftControlledZ resolves the device's PhaseShiftedControlledZ phase
// shift: the configured relation evaluated at π.
func (d *SquareDevice) PhaseShiftControlledZ() (float64, error) {
	return phaserel.PhiThetaRelation(d.czRelation, math.Pi)
}

// PhaseShiftControlledPhase resolves the device's PhaseShiftedControlledPhase
// phase shift at theta.
func (d *SquareDevice) PhaseShiftControlledPhase(theta float64) (float64, error) {
	return phaserel.PhiThetaRelation(d.cpRelation, theta)
}

// GateTimeControlledZ reports the time of a PhaseShiftedControlledZ with the
// given phi on the pair.
func (d *SquareDevice) GateTimeControlledZ(control, target int, phi float64) (float64, bool) {
	_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, control, target)
	relationPhi, err := d.PhaseShiftControlledZ()

	return controlledTime(ok, relationPhi, err, phi)
}

// GateTimeControlledPhase reports the time of a PhaseShiftedControlledPhase
// with the given phi and theta on the pair.
func (d *SquareDevice) GateTimeControlledPhase(control, target int, phi, theta float64) (float64, bool) {
	_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledPhase, control, target)
	relationPhi, err := d.PhaseShiftControlledPhase(theta)

	return controlledTime(ok, relationPhi, err, phi)
}

// TwoQubitEdges exports the lattice connectivity, sorted by (A, B).
func (d *SquareDevice) TwoQubitEdges() []qrydion.Edge {
	return probeEdges(d)
}

// Generic exports the device into its explicit gate-table form.
func (d *SquareDevice) Generic() (*qrydion.GenericDevice, error) {
	return exportGeneric(d)
}

// ChangeDevice rejects every mutation: the cloud devices are fixed.
func (d *SquareDevice) ChangeDevice(name string, _ []byte) error {
	return fmt.Errorf("apidevice: %q: %w, the cloud devices are fixed", name, qrydion.ErrUnsupportedOperation)
}

// Clone returns an independent copy of the device.
func (d *SquareDevice) Clone() *SquareDevice {
	clone := *d

	return &clone
}
