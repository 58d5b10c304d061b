// File: emulator/gatetimes.go
// Role: allow-list-gated availability queries and the generic-table export.

package emulator

import (
	"math"

	"github.com/katalvlaran/qryddev/phaserel"
	"github.com/katalvlaran/qryddev/qrydion"
)

const (
	// availableGateTime is the uniform time of every allow-listed gate.
	availableGateTime = 1.0

	controlledGateTime = 1e-6

	// phaseTolerance bounds |device phase| − |query phase| for the
	// controlled-gate helpers.
	phaseTolerance = 1e-4
)

// SingleQubitGateTime reports gate as available with unit time iff its name
// is allow-listed. The qubit argument does not factor in: the emulator keeps
// no per-position tables.
func (d *Device) SingleQubitGateTime(gate string, _ int) (float64, bool) {
	if !d.allowed(gate) {
		return 0, false
	}

	return availableGateTime, true
}

// TwoQubitGateTime reports gate as available with unit time iff its name is
// allow-listed. PhaseShiftedControlledZ and PhaseShiftedControlledPhase
// additionally require the device's phase relation to resolve.
func (d *Device) TwoQubitGateTime(gate string, _, _ int) (float64, bool) {
	if !d.allowed(gate) {
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
	}

	return availableGateTime, true
}

// ThreeQubitGateTime reports gate as available with unit time iff its name
// is allow-listed.
func (d *Device) ThreeQubitGateTime(gate string, _, _, _ int) (float64, bool) {
	if !d.allowed(gate) {
		return 0, false
	}

	return availableGateTime, true
}

// MultiQubitGateTime reports gate as available with unit time iff its name
// is allow-listed.
func (d *Device) MultiQubitGateTime(gate string, _ []int) (float64, bool) {
	if !d.allowed(gate) {
		return 0, false
	}

	return availableGateTime, true
}

// PhaseShiftControlledZ resolves the device's PhaseShiftedControlledZ phase
// shift: the configured relation evaluated at π.
func (d *Device) PhaseShiftControlledZ() (float64, error) {
	return phaserel.PhiThetaRelation(d.czRelation, math.Pi)
}

// PhaseShiftControlledPhase resolves the device's PhaseShiftedControlledPhase
// phase shift at theta.
func (d *Device) PhaseShiftControlledPhase(theta float64) (float64, error) {
	return phaserel.PhiThetaRelation(d.cpRelation, theta)
}

// GateTimeControlledZ reports the time of a PhaseShiftedControlledZ with the
// given phi: available iff the gate passes the two-qubit test and phi matches
// the device phase within the tolerance (absolute values compared).
func (d *Device) GateTimeControlledZ(control, target int, phi float64) (float64, bool) {
	if _, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, control, target); !ok {
		return 0, false
	}
	relationPhi, err := d.PhaseShiftControlledZ()
	if err != nil {
		return 0, false
	}
	if math.Abs(math.Abs(relationPhi)-math.Abs(phi)) >= phaseTolerance {
		return 0, false
	}

	return controlledGateTime, true
}

// GateTimeControlledPhase reports the time of a PhaseShiftedControlledPhase
// with the given phi and theta, under the same matching rule as
// GateTimeControlledZ.
func (d *Device) GateTimeControlledPhase(control, target int, phi, theta float64) (float64, bool) {
	if _, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledPhase, control, target); !ok {
		return 0, false
	}
	relationPhi, err := d.PhaseShiftControlledPhase(theta)
	if err != nil {
		return 0, false
	}
	if math.Abs(math.Abs(relationPhi)-math.Abs(phi)) >= phaseTolerance {
		return 0, false
	}

	return controlledGateTime, true
}

// TwoQubitEdges reports no connectivity: the emulator's availability is
// purely name-gated, so it publishes no qubit graph for routers to chase.
func (d *Device) TwoQubitEdges() []qrydion.Edge {
	return []qrydion.Edge{}
}

// Generic exports the device into its explicit gate-table form: every
// allow-listed gate is enumerated over the mapped qubits according to its
// arity, single per qubit, two per ordered pair, three per ordered distinct
// triple, all with unit time. Multi-qubit names have no finite enumeration
// and are skipped.
func (d *Device) Generic() (*qrydion.GenericDevice, error) {
	n := d.NumberQubits()
	g := qrydion.NewGenericDevice(n)

	for _, gate := range d.AvailableGates() {
		arity, ok := qrydion.GateArity(gate)
		if !ok {
			continue
		}
		switch gate {
		case qrydion.GatePhaseShiftedControlledZ:
			if !phaserel.Valid(d.czRelation) {
				continue
			}
		case qrydion.GatePhaseShiftedControlledPhase:
			if !phaserel.Valid(d.cpRelation) {
				continue
			}
		}

		switch arity {
		case qrydion.AritySingle:
			for q := 0; q < n; q++ {
				if err := g.SetSingleQubitGateTime(gate, q, availableGateTime); err != nil {
					return nil, err
				}
			}
		case qrydion.ArityTwo:
			for c := 0; c < n; c++ {
				for t := 0; t < n; t++ {
					if c == t {
						continue
					}
					if err := g.SetTwoQubitGateTime(gate, c, t, availableGateTime); err != nil {
						return nil, err
					}
				}
			}
		case qrydion.ArityThree:
			for c0 := 0; c0 < n; c0++ {
				for c1 := 0; c1 < n; c1++ {
					for t := 0; t < n; t++ {
						if c0 == c1 || c0 == t || c1 == t {
							continue
						}
						if err := g.SetThreeQubitGateTime(gate, c0, c1, t, availableGateTime); err != nil {
							return nil, err
						}
					}
				}
			}
		case qrydion.ArityMulti:
			// No finite qubit enumeration exists for group gates.
		}
	}

	return g, nil
}
