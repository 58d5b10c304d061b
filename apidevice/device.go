// File: apidevice/device.go
// Role: shared geometry and export logic of the fixed cloud-emulator
// devices. The square and triangular variants differ only in their
// neighbour predicate and the triangular three-qubit extras.

package apidevice

import (
	"math"

	"github.com/katalvlaran/qryddev/phaserel"
	"github.com/katalvlaran/qryddev/qrydion"
)

const (
	// numberQubits is the fixed capacity of the cloud emulators: five
	// columns by six rows.
	numberQubits = 30

	// nativeGateTime is the uniform time of every native gate.
	nativeGateTime = 1e-6

	// phaseTolerance bounds |device phase| − |query phase| for the
	// controlled-gate helpers.
	phaseTolerance = 1e-4
)

// Backend identifiers reported to the web API.
const (
	SquareBackend     = "qryd_emu_cloudcomp_square"
	TriangularBackend = "qryd_emu_cloudcomp_triangle"
)

// singleNatives lists the single-qubit gates both cloud devices implement.
var singleNatives = []string{
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

// orDefaultRelation resolves the constructor relation arguments: the empty
// string selects the calibrated default.
func orDefaultRelation(relation string) string {
	if relation == "" {
		return phaserel.DefaultRelation
	}

	return relation
}

// singleNativeTime answers the single-qubit query shared by both devices.
func singleNativeTime(gate string, qubit int) (float64, bool) {
	if qubit < 0 || qubit >= numberQubits {
		return 0, false
	}
	for _, native := range singleNatives {
		if native == gate {
			return nativeGateTime, true
		}
	}

	return 0, false
}

// validPair bounds a two-qubit query to distinct on-device qubits.
func validPair(control, target int) bool {
	if control < 0 || control >= numberQubits {
		return false
	}

	return target >= 0 && target < numberQubits && target != control
}

// squareNeighbours reports adjacency on the 5-column square lattice:
// horizontal neighbours stay within a row, vertical neighbours are one full
// row apart.
func squareNeighbours(control, target int) bool {
	smaller, larger := control, target
	if smaller > larger {
		smaller, larger = larger, smaller
	}
	d := larger - smaller

	return (d == 1 && smaller%5 != 4) || d == 5
}

// triangularNeighbours reports adjacency on the 5-column triangular lattice.
// Odd double-rows are offset by half a column, so the diagonal neighbour
// direction alternates every five qubits.
func triangularNeighbours(control, target int) bool {
	smaller, larger := control, target
	if smaller > larger {
		smaller, larger = larger, smaller
	}
	d := larger - smaller

	if smaller%10 < 5 {
		return d == 5 || (d == 6 && smaller%5 != 4) || (d == 1 && larger%5 != 0)
	}

	return d == 5 || (d == 4 && smaller%5 != 0) || (d == 1 && larger%5 != 0)
}

// controlledTime reduces the GateTimeControlledZ/Phase contract shared by
// both devices: the two-qubit probe must hit, the relation must resolve, and
// the query phase must match within the tolerance (absolute values compared).
func controlledTime(probeOK bool, relationPhi float64, relationErr error, phi float64) (float64, bool) {
	if !probeOK || relationErr != nil {
		return 0, false
	}
	if math.Abs(math.Abs(relationPhi)-math.Abs(phi)) >= phaseTolerance {
		return 0, false
	}

	return nativeGateTime, true
}

// probeEdges collects the undirected connectivity by probing every pair with
// PhaseShiftedControlledZ, sorted by (A, B) construction.
func probeEdges(d qrydion.Device) []qrydion.Edge {
	n := d.NumberQubits()
	edges := make([]qrydion.Edge, 0)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if _, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, a, b); ok {
				edges = append(edges, qrydion.Edge{A: a, B: b})
			}
		}
	}

	return edges
}

// exportGeneric flattens a cloud device into its explicit gate-table form by
// probing every native gate over the full qubit range, so the export carries
// exactly the (gate, qubit tuple) pairs the queries report available.
// Two-qubit entries are emitted in both directions.
func exportGeneric(d qrydion.Device) (*qrydion.GenericDevice, error) {
	n := d.NumberQubits()
	g := qrydion.NewGenericDevice(n)

	for _, gate := range singleNatives {
		for q := 0; q < n; q++ {
			time, ok := d.SingleQubitGateTime(gate, q)
			if !ok {
				continue
			}
			if err := g.SetSingleQubitGateTime(gate, q, time); err != nil {
				return nil, err
			}
		}
	}

	twoNatives := []string{qrydion.GatePhaseShiftedControlledZ, qrydion.GatePhaseShiftedControlledPhase}
	for _, gate := range twoNatives {
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				time, ok := d.TwoQubitGateTime(gate, a, b)
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
	}

	threeNatives := []string{qrydion.GateControlledControlledPauliZ, qrydion.GateControlledControlledPhaseShift}
	for _, gate := range threeNatives {
		for c0 := 0; c0 < n; c0++ {
			for c1 := 0; c1 < n; c1++ {
				for t := 0; t < n; t++ {
					if c0 == c1 || c0 == t || c1 == t {
						continue
					}
					time, ok := d.ThreeQubitGateTime(gate, c0, c1, t)
					if !ok {
						continue
					}
					if err := g.SetThreeQubitGateTime(gate, c0, c1, t, time); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return g, nil
}
