// File: tweezer/gatetimes.go
// Role: gate-time table setters, availability queries, connectivity export,
// and the generic-table export. Tables are written per tweezer; queries
// resolve qubits through the global map first and consult the current
// layout only.

package tweezer

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/qryddev/phaserel"
	"github.com/katalvlaran/qryddev/qrydion"
)

const (
	controlledGateTime = 1e-6

	// phaseTolerance bounds |device phase| − |query phase| for the
	// controlled-gate helpers.
	phaseTolerance = 1e-4
)

// resolveLayout maps the setter layout argument to a registered layout:
// the empty string selects the current one.
func (d *Device) resolveLayout(layout string) (*layoutInfo, error) {
	if layout == "" {
		return d.current(), nil
	}
	info, ok := d.layouts[layout]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLayoutUnknown, layout)
	}

	return info, nil
}

// SetTweezerSingleQubitGateTime records the time of gate at tweezer in the
// named layout (empty = current). Writing a table invalidates the
// qubit→tweezer map: it is cleared and must be rebuilt.
func (d *Device) SetTweezerSingleQubitGateTime(gate string, tweezer int, time float64, layout string) error {
	info, err := d.resolveLayout(layout)
	if err != nil {
		return err
	}
	d.qubitMap = nil
	info.setSingle(gate, tweezer, time)

	return nil
}

// SetTweezerTwoQubitGateTime records the time of gate on the tweezer pair.
// One entry answers queries in either argument order.
func (d *Device) SetTweezerTwoQubitGateTime(gate string, tweezer0, tweezer1 int, time float64, layout string) error {
	info, err := d.resolveLayout(layout)
	if err != nil {
		return err
	}
	d.qubitMap = nil
	info.setTwo(gate, tweezer0, tweezer1, time)

	return nil
}

// SetTweezerThreeQubitGateTime records the time of gate on the ordered
// tweezer triple.
func (d *Device) SetTweezerThreeQubitGateTime(gate string, tweezer0, tweezer1, tweezer2 int, time float64, layout string) error {
	info, err := d.resolveLayout(layout)
	if err != nil {
		return err
	}
	d.qubitMap = nil
	info.setThree(gate, tweezer0, tweezer1, tweezer2, time)

	return nil
}

// SetTweezerMultiQubitGateTime records the time of gate on the tweezer
// group; the group is kept sorted, so permutations name the same entry.
func (d *Device) SetTweezerMultiQubitGateTime(gate string, tweezers []int, time float64, layout string) error {
	info, err := d.resolveLayout(layout)
	if err != nil {
		return err
	}
	d.qubitMap = nil
	info.setMulti(gate, tweezers, time)

	return nil
}

// SingleQubitGateTime resolves gate on qubit through the qubit map and the
// current layout's single-qubit table.
func (d *Device) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	tweezer, ok := d.qubitMap[qubit]
	if !ok {
		return 0, false
	}

	return d.current().getSingle(gate, tweezer)
}

// TwoQubitGateTime resolves gate on the control/target pair. The pair's
// table entry answers in either order. PhaseShiftedControlledZ and
// PhaseShiftedControlledPhase additionally require the device's phase
// relation to resolve.
func (d *Device) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	controlTweezer, ok := d.qubitMap[control]
	if !ok {
		return 0, false
	}
	targetTweezer, ok := d.qubitMap[target]
	if !ok {
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

	return d.current().getTwo(gate, controlTweezer, targetTweezer)
}

// ThreeQubitGateTime resolves gate on the ordered control0/control1/target
// triple.
func (d *Device) ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool) {
	t0, ok := d.qubitMap[control0]
	if !ok {
		return 0, false
	}
	t1, ok := d.qubitMap[control1]
	if !ok {
		return 0, false
	}
	t2, ok := d.qubitMap[target]
	if !ok {
		return 0, false
	}

	return d.current().getThree(gate, t0, t1, t2)
}

// MultiQubitGateTime resolves gate on the qubit group; the mapped tweezers
// are compared as a sorted set.
func (d *Device) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	tweezers := make([]int, 0, len(qubits))
	for _, qubit := range qubits {
		tweezer, ok := d.qubitMap[qubit]
		if !ok {
			return 0, false
		}
		tweezers = append(tweezers, tweezer)
	}

	return d.current().getMulti(gate, tweezers)
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
// given phi: available iff the pair passes the two-qubit test and phi matches
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

// TwoQubitEdges exports the undirected connectivity: every mapped qubit pair
// whose tweezer pair has a PhaseShiftedControlledZ or
// PhaseShiftedControlledPhase entry in the current layout, sorted by (A, B).
// Table presence decides; the phase relations do not factor in here.
func (d *Device) TwoQubitEdges() []qrydion.Edge {
	info := d.current()
	qubits := make([]int, 0, len(d.qubitMap))
	for qubit := range d.qubitMap {
		qubits = append(qubits, qubit)
	}
	sort.Ints(qubits)

	edges := make([]qrydion.Edge, 0)
	for i := 0; i < len(qubits); i++ {
		for j := i + 1; j < len(qubits); j++ {
			ta, tb := d.qubitMap[qubits[i]], d.qubitMap[qubits[j]]
			_, cz := info.getTwo(qrydion.GatePhaseShiftedControlledZ, ta, tb)
			_, cp := info.getTwo(qrydion.GatePhaseShiftedControlledPhase, ta, tb)
			if cz || cp {
				edges = append(edges, qrydion.Edge{A: qubits[i], B: qubits[j]})
			}
		}
	}

	return edges
}

// Generic exports the device into its explicit gate-table form: the current
// layout's entries are resolved through the qubit map, so the export carries
// exactly the (gate, qubit tuple) pairs the queries report available, with
// identical times. Entries on unoccupied tweezers are dropped; two-qubit
// entries are emitted in both directions. The export fails when a mapped
// qubit index falls outside 0..NumberQubits()-1.
func (d *Device) Generic() (*qrydion.GenericDevice, error) {
	g := qrydion.NewGenericDevice(d.NumberQubits())
	info := d.current()

	holders := make(map[int]int, len(d.qubitMap))
	for qubit, tweezer := range d.qubitMap {
		holders[tweezer] = qubit
	}

	for gate, table := range info.single {
		for tweezer, time := range table {
			qubit, ok := holders[tweezer]
			if !ok {
				continue
			}
			if err := g.SetSingleQubitGateTime(gate, qubit, time); err != nil {
				return nil, err
			}
		}
	}

	for gate, table := range info.two {
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
		for pair, time := range table {
			a, ok := holders[pair[0]]
			if !ok {
				continue
			}
			b, ok := holders[pair[1]]
			if !ok {
				continue
			}
			if err := g.SetTwoQubitGateTime(gate, a, b, time); err != nil {
				return nil, err
			}
			if err := g.SetTwoQubitGateTime(gate, b, a, time); err != nil {
				return nil, err
			}
		}
	}

	for gate, table := range info.three {
		for triple, time := range table {
			q0, ok := holders[triple[0]]
			if !ok {
				continue
			}
			q1, ok := holders[triple[1]]
			if !ok {
				continue
			}
			q2, ok := holders[triple[2]]
			if !ok {
				continue
			}
			if err := g.SetThreeQubitGateTime(gate, q0, q1, q2, time); err != nil {
				return nil, err
			}
		}
	}

	for gate, entries := range info.multi {
		for _, entry := range entries {
			qubits := make([]int, 0, len(entry.tweezers))
			for _, tweezer := range entry.tweezers {
				qubit, ok := holders[tweezer]
				if !ok {
					break
				}
				qubits = append(qubits, qubit)
			}
			if len(qubits) != len(entry.tweezers) {
				continue
			}
			if err := g.SetMultiQubitGateTime(gate, qubits, entry.time); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
