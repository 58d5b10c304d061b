package apidevice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qryddev/apidevice"
	"github.com/katalvlaran/qryddev/phaserel"
	"github.com/katalvlaran/qryddev/pragma"
	"github.com/katalvlaran/qryddev/qrydion"
)

var (
	_ qrydion.Device = (*apidevice.SquareDevice)(nil)
	_ qrydion.Device = (*apidevice.TriangularDevice)(nil)
)

func TestNewSquare_Defaults(t *testing.T) {
	d := apidevice.NewSquare(42, "", "")

	assert.Equal(t, apidevice.SquareBackend, d.QRydBackend())
	assert.Equal(t, 42, d.Seed())
	assert.Equal(t, 30, d.NumberQubits())

	phi, err := d.PhaseShiftControlledZ()
	require.NoError(t, err, "empty relation falls back to the default")
	assert.InDelta(t, phaserel.PhiCZ, phi, 1e-9)
}

func TestNewTriangular_Defaults(t *testing.T) {
	d := apidevice.NewTriangular(7, "0.1", "", true, false)

	assert.Equal(t, apidevice.TriangularBackend, d.QRydBackend())
	assert.Equal(t, 7, d.Seed())
	assert.Equal(t, 30, d.NumberQubits())
	assert.True(t, d.AllowCCZ())
	assert.False(t, d.AllowCCP())

	phi, err := d.PhaseShiftControlledZ()
	require.NoError(t, err)
	assert.InDelta(t, 0.1, phi, 1e-12)
}

func TestSingleQubitGateTime_Natives(t *testing.T) {
	d := apidevice.NewSquare(0, "", "")

	for _, gate := range []string{
		qrydion.GatePhaseShiftState1, qrydion.GateRotateX, qrydion.GateRotateY,
		qrydion.GateRotateZ, qrydion.GateRotateXY, qrydion.GatePauliX,
		qrydion.GatePauliY, qrydion.GatePauliZ, qrydion.GateSqrtPauliX,
		qrydion.GateInvSqrtPauliX,
	} {
		time, ok := d.SingleQubitGateTime(gate, 29)
		require.True(t, ok, gate)
		assert.InDelta(t, 1e-6, time, 1e-18)
	}

	_, ok := d.SingleQubitGateTime("Hadamard", 0)
	assert.False(t, ok, "not a native gate")
	_, ok = d.SingleQubitGateTime(qrydion.GateRotateX, 30)
	assert.False(t, ok, "off the device")
	_, ok = d.SingleQubitGateTime(qrydion.GateRotateX, -1)
	assert.False(t, ok)
}

func TestSquare_Neighbours(t *testing.T) {
	d := apidevice.NewSquare(0, "", "")

	available := func(control, target int) bool {
		_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, control, target)

		return ok
	}

	assert.True(t, available(0, 1), "within a row")
	assert.True(t, available(1, 0), "either argument order")
	assert.True(t, available(0, 5), "across rows")
	assert.True(t, available(24, 29))
	assert.False(t, available(4, 5), "row boundary is not adjacent")
	assert.False(t, available(0, 2), "two columns apart")
	assert.False(t, available(0, 6), "no diagonals on the square lattice")
	assert.False(t, available(0, 0), "distinct qubits required")
	assert.False(t, available(0, 30), "off the device")

	_, ok := d.TwoQubitGateTime("CNOT", 0, 1)
	assert.False(t, ok, "only the phase-shifted pair is native")
	_, ok = d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledPhase, 0, 1)
	assert.True(t, ok)
}

func TestTriangular_Neighbours(t *testing.T) {
	d := apidevice.NewTriangular(0, "", "", true, true)

	available := func(control, target int) bool {
		_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, control, target)

		return ok
	}

	// Even double-rows: q+1, q+5 and the q+6 diagonal.
	assert.True(t, available(0, 1))
	assert.True(t, available(0, 5))
	assert.True(t, available(0, 6))
	assert.False(t, available(4, 10), "diagonal stops at the row boundary")
	assert.False(t, available(4, 5), "row boundary is not adjacent")

	// Odd double-rows: q+1, q+5 and the q+4 diagonal.
	assert.True(t, available(5, 6))
	assert.True(t, available(5, 10))
	assert.True(t, available(6, 10))
	assert.False(t, available(5, 9), "diagonal stops at the row boundary")
	assert.False(t, available(9, 10), "row boundary is not adjacent")

	assert.False(t, available(1, 5), "not a lattice edge")
}

func TestRelationGatesTwoQubit(t *testing.T) {
	d := apidevice.NewSquare(0, "not-a-relation", "")

	_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, 0, 1)
	assert.False(t, ok, "a broken relation hides PhaseShiftedControlledZ")
	_, ok = d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledPhase, 0, 1)
	assert.True(t, ok, "the other relation is intact")
	assert.Empty(t, d.TwoQubitEdges(), "edges are probed with PhaseShiftedControlledZ")
}

func TestGateTimeControlledZ(t *testing.T) {
	d := apidevice.NewSquare(0, "", "")

	time, ok := d.GateTimeControlledZ(0, 1, phaserel.PhiCZ)
	require.True(t, ok)
	assert.InDelta(t, 1e-6, time, 1e-18)

	_, ok = d.GateTimeControlledZ(0, 1, phaserel.PhiCZ+1e-3)
	assert.False(t, ok, "outside the tolerance")
	_, ok = d.GateTimeControlledZ(0, 2, phaserel.PhiCZ)
	assert.False(t, ok, "not neighbours")
}

func TestGateTimeControlledPhase(t *testing.T) {
	d := apidevice.NewTriangular(0, "", "", true, false)

	theta := 1.3
	phi, err := d.PhaseShiftControlledPhase(theta)
	require.NoError(t, err)

	time, ok := d.GateTimeControlledPhase(0, 6, phi, theta)
	require.True(t, ok)
	assert.InDelta(t, 1e-6, time, 1e-18)

	_, ok = d.GateTimeControlledPhase(0, 6, phi+1e-3, theta)
	assert.False(t, ok)
}

func TestThreeQubitGateTime_Triangular(t *testing.T) {
	d := apidevice.NewTriangular(0, "", "", true, false)

	// (0, 1, 6): all three pairs are lattice edges.
	time, ok := d.ThreeQubitGateTime(qrydion.GateControlledControlledPauliZ, 0, 1, 6)
	require.True(t, ok)
	assert.InDelta(t, 1e-6, time, 1e-18)

	_, ok = d.ThreeQubitGateTime(qrydion.GateControlledControlledPauliZ, 0, 1, 2)
	assert.False(t, ok, "(1, 2) closes no triangle with (0, ...)")
	_, ok = d.ThreeQubitGateTime(qrydion.GateControlledControlledPhaseShift, 0, 1, 6)
	assert.False(t, ok, "ControlledControlledPhaseShift disabled at construction")

	enabled := apidevice.NewTriangular(0, "", "", false, true)
	_, ok = enabled.ThreeQubitGateTime(qrydion.GateControlledControlledPauliZ, 0, 1, 6)
	assert.False(t, ok)
	_, ok = enabled.ThreeQubitGateTime(qrydion.GateControlledControlledPhaseShift, 0, 1, 6)
	assert.True(t, ok)
}

func TestThreeQubitGateTime_Square(t *testing.T) {
	d := apidevice.NewSquare(0, "", "")

	_, ok := d.ThreeQubitGateTime(qrydion.GateControlledControlledPauliZ, 0, 1, 6)
	assert.False(t, ok, "no three-qubit gates on the square device")
	_, ok = d.MultiQubitGateTime(qrydion.GateMultiQubitZZ, []int{0, 1, 2})
	assert.False(t, ok)
}

func TestTwoQubitEdges_Counts(t *testing.T) {
	square := apidevice.NewSquare(0, "", "")
	edges := square.TwoQubitEdges()
	assert.Len(t, edges, 49, "24 horizontal + 25 vertical")
	assert.Contains(t, edges, qrydion.Edge{A: 0, B: 1})
	assert.Contains(t, edges, qrydion.Edge{A: 0, B: 5})
	assert.NotContains(t, edges, qrydion.Edge{A: 4, B: 5})

	triangular := apidevice.NewTriangular(0, "", "", true, false)
	edges = triangular.TwoQubitEdges()
	assert.Len(t, edges, 69, "square edges plus the alternating diagonals")
	assert.Contains(t, edges, qrydion.Edge{A: 0, B: 6})
	assert.Contains(t, edges, qrydion.Edge{A: 6, B: 10})
}

func TestGeneric_Export(t *testing.T) {
	d := apidevice.NewTriangular(0, "", "", true, false)

	g, err := d.Generic()
	require.NoError(t, err)
	assert.Equal(t, 30, g.NumberQubits())

	time, ok := g.SingleQubitGateTime(qrydion.GateRotateZ, 17)
	require.True(t, ok)
	assert.InDelta(t, 1e-6, time, 1e-18)

	_, ok = g.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, 0, 6)
	assert.True(t, ok)
	_, ok = g.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, 6, 0)
	assert.True(t, ok, "pair entries are exported in both directions")

	_, ok = g.ThreeQubitGateTime(qrydion.GateControlledControlledPauliZ, 0, 1, 6)
	assert.True(t, ok)
	_, ok = g.ThreeQubitGateTime(qrydion.GateControlledControlledPhaseShift, 0, 1, 6)
	assert.False(t, ok, "disabled gates stay out of the export")

	assert.Equal(t, d.TwoQubitEdges(), g.TwoQubitEdges())
}

func TestChangeDevice_AlwaysFails(t *testing.T) {
	square := apidevice.NewSquare(0, "", "")
	triangular := apidevice.NewTriangular(0, "", "", true, false)

	payload, err := pragma.SwitchLayout{NewLayout: "default"}.Encode()
	require.NoError(t, err)

	assert.ErrorIs(t, square.ChangeDevice(pragma.OpSwitchLayout, payload), qrydion.ErrUnsupportedOperation)
	assert.ErrorIs(t, triangular.ChangeDevice(pragma.OpSwitchLayout, payload), qrydion.ErrUnsupportedOperation)
	assert.ErrorIs(t, square.ChangeDevice(pragma.OpChangeLayout, nil), qrydion.ErrUnsupportedOperation)
}

func TestClone_Independent(t *testing.T) {
	d := apidevice.NewSquare(1, "0.5", "")
	clone := d.Clone()

	assert.Equal(t, d.Seed(), clone.Seed())
	phi, err := clone.PhaseShiftControlledZ()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, phi, 1e-12)
}
