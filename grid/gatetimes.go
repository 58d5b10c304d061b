// File: grid/gatetimes.go
// Role: gate-time queries, connectivity export, and the generic-table export.
// The numeric model follows the hardware prototype: fixed single-qubit times,
// two-qubit times growing with the square of the distance, fixed
// controlled-controlled and multi-qubit times.

package grid

import (
	"math"

	"github.com/katalvlaran/qryddev/phaserel"
	"github.com/katalvlaran/qryddev/qrydion"
)

const (
	singleQubitTime    = 1e-6
	twoQubitTimeFactor = 2e-6
	threeQubitTime     = 1e-6
	multiQubitTime     = 2e-5
	controlledGateTime = 1e-6

	// phaseTolerance bounds |device phase| − |query phase| for the
	// controlled-gate helpers.
	phaseTolerance = 1e-4
)

// nativeSingleQubitGates is the fixed single-qubit gate set of the hardware.
var nativeSingleQubitGates = []string{
	qrydion.GatePhaseShiftState1,
	qrydion.GateRotateX,
	qrydion.GateRotateY,
	qrydion.GateRotateZ,
	qrydion.GateRotateXY,
	qrydion.GatePauliX,
	qrydion.GatePauliY,
	qrydion.GatePauliZ,
	qrydion.GateSqrtPauliX,
	qrydion.GateInvSqrtPauliX,
}

// SingleQubitGateTime resolves gate on qubit: every native single-qubit gate
// runs in the same fixed time on every mapped qubit.
func (d *Device) SingleQubitGateTime(gate string, qubit int) (float64, bool) {
	if _, ok := d.qubitPositions[qubit]; !ok {
		return 0, false
	}
	for _, native := range nativeSingleQubitGates {
		if gate == native {
			return singleQubitTime, true
		}
	}

	return 0, false
}

// TwoQubitGateTime resolves gate on the control/target pair.
//
// Available iff the gate is PhaseShiftedControlledZ or
// PhaseShiftedControlledPhase, both qubits are mapped and distinct, the
// device's phase relation for the gate resolves, and the current-layout
// distance is within the cutoff. The time grows with the distance squared.
func (d *Device) TwoQubitGateTime(gate string, control, target int) (float64, bool) {
	if control == target {
		return 0, false
	}
	controlPos, ok := d.qubitPositions[control]
	if !ok {
		return 0, false
	}
	targetPos, ok := d.qubitPositions[target]
	if !ok {
		return 0, false
	}

	var relation string
	switch gate {
	case qrydion.GatePhaseShiftedControlledZ:
		relation = d.czRelation
	case qrydion.GatePhaseShiftedControlledPhase:
		relation = d.cpRelation
	default:
		return 0, false
	}
	if !phaserel.Valid(relation) {
		return 0, false
	}

	distance := d.distance(controlPos, targetPos)
	if distance > d.cutoff {
		return 0, false
	}

	return twoQubitTimeFactor * distance * distance, true
}

// ThreeQubitGateTime resolves gate on the control0/control1/target triple.
//
// ControlledControlledPauliZ requires the CCZ flag and every pair of the
// triple to pass the PhaseShiftedControlledZ test;
// ControlledControlledPhaseShift requires the CCP flag and the
// PhaseShiftedControlledPhase test.
func (d *Device) ThreeQubitGateTime(gate string, control0, control1, target int) (float64, bool) {
	if control0 == control1 || control0 == target || control1 == target {
		return 0, false
	}

	var pairGate string
	switch gate {
	case qrydion.GateControlledControlledPauliZ:
		if !d.allowCCZ {
			return 0, false
		}
		pairGate = qrydion.GatePhaseShiftedControlledZ
	case qrydion.GateControlledControlledPhaseShift:
		if !d.allowCCP {
			return 0, false
		}
		pairGate = qrydion.GatePhaseShiftedControlledPhase
	default:
		return 0, false
	}

	if _, ok := d.TwoQubitGateTime(pairGate, control0, target); !ok {
		return 0, false
	}
	if _, ok := d.TwoQubitGateTime(pairGate, control0, control1); !ok {
		return 0, false
	}
	if _, ok := d.TwoQubitGateTime(pairGate, control1, target); !ok {
		return 0, false
	}

	return threeQubitTime, true
}

// MultiQubitGateTime resolves gate on the qubit group. MultiQubitZZ is
// available for groups of two or three distinct mapped qubits sharing a row;
// larger groups are never available on this variant.
func (d *Device) MultiQubitGateTime(gate string, qubits []int) (float64, bool) {
	if gate != qrydion.GateMultiQubitZZ {
		return 0, false
	}
	if len(qubits) < 2 || len(qubits) > 3 {
		return 0, false
	}

	seen := make(map[int]struct{}, len(qubits))
	row := 0
	for i, qubit := range qubits {
		if _, dup := seen[qubit]; dup {
			return 0, false
		}
		seen[qubit] = struct{}{}
		pos, ok := d.qubitPositions[qubit]
		if !ok {
			return 0, false
		}
		if i == 0 {
			row = pos.Row
		} else if pos.Row != row {
			return 0, false
		}
	}

	return multiQubitTime, true
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

// TwoQubitEdges exports the undirected connectivity under the current layout
// and cutoff: every qubit pair passing the PhaseShiftedControlledPhase
// availability test, sorted by (A, B).
// Complexity: O(n²) over mapped qubits.
func (d *Device) TwoQubitEdges() []qrydion.Edge {
	n := d.NumberQubits()
	edges := make([]qrydion.Edge, 0)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if _, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledPhase, a, b); ok {
				edges = append(edges, qrydion.Edge{A: a, B: b})
			}
		}
	}

	return edges
}

// Generic exports the device into its explicit gate-table form: every
// currently available (gate, qubit tuple) of this device appears with the
// identical time. Layout history, the cutoff, and the symbolic phase
// relations are not carried.
func (d *Device) Generic() (*qrydion.GenericDevice, error) {
	n := d.NumberQubits()
	g := qrydion.NewGenericDevice(n)

	for _, gate := range nativeSingleQubitGates {
		for qubit := 0; qubit < n; qubit++ {
			if t, ok := d.SingleQubitGateTime(gate, qubit); ok {
				if err := g.SetSingleQubitGateTime(gate, qubit, t); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, gate := range []string{qrydion.GatePhaseShiftedControlledZ, qrydion.GatePhaseShiftedControlledPhase} {
		for control := 0; control < n; control++ {
			for target := 0; target < n; target++ {
				if t, ok := d.TwoQubitGateTime(gate, control, target); ok {
					if err := g.SetTwoQubitGateTime(gate, control, target, t); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	for _, gate := range []string{qrydion.GateControlledControlledPauliZ, qrydion.GateControlledControlledPhaseShift} {
		for c0 := 0; c0 < n; c0++ {
			for c1 := 0; c1 < n; c1++ {
				for target := 0; target < n; target++ {
					if t, ok := d.ThreeQubitGateTime(gate, c0, c1, target); ok {
						if err := g.SetThreeQubitGateTime(gate, c0, c1, target, t); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	for _, group := range d.sameRowGroups() {
		if t, ok := d.MultiQubitGateTime(qrydion.GateMultiQubitZZ, group); ok {
			if err := g.SetMultiQubitGateTime(qrydion.GateMultiQubitZZ, group, t); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// sameRowGroups enumerates the size-2 and size-3 qubit groups within each
// row, the candidate MultiQubitZZ tuples.
func (d *Device) sameRowGroups() [][]int {
	byRow := make(map[int][]int)
	for qubit, pos := range d.qubitPositions {
		byRow[pos.Row] = append(byRow[pos.Row], qubit)
	}

	var groups [][]int
	for _, qubits := range byRow {
		for i := 0; i < len(qubits); i++ {
			for j := i + 1; j < len(qubits); j++ {
				groups = append(groups, []int{qubits[i], qubits[j]})
				for k := j + 1; k < len(qubits); k++ {
					groups = append(groups, []int{qubits[i], qubits[j], qubits[k]})
				}
			}
		}
	}

	return groups
}

// distance computes the current-layout physical distance between two grid
// positions: sqrt(Δy² + (Δrow·rowDistance)²).
func (d *Device) distance(a, b Position) float64 {
	layout := d.layouts[d.currentLayout]
	dy := layout[a.Row][a.Column] - layout[b.Row][b.Column]
	dx := float64(a.Row-b.Row) * d.rowDistance

	return math.Sqrt(dy*dy + dx*dx)
}
