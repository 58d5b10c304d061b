package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qryddev/codec"
	"github.com/katalvlaran/qryddev/grid"
	"github.com/katalvlaran/qryddev/pragma"
	"github.com/katalvlaran/qryddev/qrydion"
)

var _ qrydion.Device = (*grid.Device)(nil)

// twoByTwo is the minimal two-qubit device: one qubit per row, rows one
// distance unit apart, so the single pair sits exactly at the default cutoff.
func twoByTwo(t *testing.T, opts ...grid.Option) *grid.Device {
	t.Helper()
	d, err := grid.New(2, 2, []int{1, 1}, 1.0, [][]float64{{0, 1}, {0, 1}}, opts...)
	require.NoError(t, err)

	return d
}

// fiveQubit is a 2×3 grid with rows occupied [3, 2] and unit spacing:
// qubits 0..2 in row 0 at y 0,1,2 and qubits 3..4 in row 1 at y 0,1.
func fiveQubit(t *testing.T, opts ...grid.Option) *grid.Device {
	t.Helper()
	d, err := grid.New(2, 3, []int{3, 2}, 1.0, [][]float64{{0, 1, 2}, {0, 1, 2}}, opts...)
	require.NoError(t, err)

	return d
}

func TestNew_ShapeErrors(t *testing.T) {
	layout := [][]float64{{0, 1}, {0, 1}}

	_, err := grid.New(2, 2, []int{1}, 1.0, layout)
	assert.ErrorIs(t, err, grid.ErrRowMismatch, "qubits-per-row shorter than rows")

	_, err = grid.New(2, 2, []int{3, 1}, 1.0, layout)
	assert.ErrorIs(t, err, grid.ErrColumnOverflow, "row occupancy above column count")

	_, err = grid.New(2, 2, []int{-1, 1}, 1.0, layout)
	assert.ErrorIs(t, err, grid.ErrColumnOverflow, "negative occupancy")

	_, err = grid.New(2, 2, []int{1, 1}, 1.0, [][]float64{{0, 1}})
	assert.ErrorIs(t, err, grid.ErrLayoutShape, "too few layout rows")

	_, err = grid.New(2, 2, []int{1, 1}, 1.0, [][]float64{{0, 1}, {0}})
	assert.ErrorIs(t, err, grid.ErrLayoutShape, "ragged layout row")
}

func TestNew_OptionViolation(t *testing.T) {
	_, err := grid.New(2, 2, []int{1, 1}, 1.0, [][]float64{{0, 1}, {0, 1}}, grid.WithCutoff(0))
	assert.ErrorIs(t, err, grid.ErrOptionViolation)

	_, err = grid.New(2, 2, []int{1, 1}, 1.0, [][]float64{{0, 1}, {0, 1}}, grid.WithCutoff(-2.5))
	assert.ErrorIs(t, err, grid.ErrOptionViolation)
}

func TestNew_QubitAssignmentRowMajor(t *testing.T) {
	d := fiveQubit(t)

	assert.Equal(t, 5, d.NumberQubits(), "qubit count is the sum of row occupancies")
	assert.Equal(t, 2, d.NumberRows())
	assert.Equal(t, 3, d.NumberColumns())

	want := map[int]grid.Position{
		0: {Row: 0, Column: 0},
		1: {Row: 0, Column: 1},
		2: {Row: 0, Column: 2},
		3: {Row: 1, Column: 0},
		4: {Row: 1, Column: 1},
	}
	assert.Equal(t, want, d.QubitPositions())
}

func TestQubitPositions_ReturnsCopy(t *testing.T) {
	d := twoByTwo(t)

	positions := d.QubitPositions()
	positions[0] = grid.Position{Row: 1, Column: 1}

	assert.Equal(t, grid.Position{Row: 0, Column: 0}, d.QubitPositions()[0])
}

func TestAddLayout_Register(t *testing.T) {
	d := fiveQubit(t)

	// Index 0 is taken by the initial layout.
	err := d.AddLayout(0, [][]float64{{0, 1, 2}, {0, 1, 2}})
	assert.ErrorIs(t, err, grid.ErrLayoutExists)

	err = d.AddLayout(1, [][]float64{{0, 1, 2}})
	assert.ErrorIs(t, err, grid.ErrLayoutShape)

	require.NoError(t, d.AddLayout(1, [][]float64{{0, 0.5, 1}, {0, 0.5, 1}}))
	err = d.AddLayout(1, [][]float64{{0, 0.5, 1}, {0, 0.5, 1}})
	assert.ErrorIs(t, err, grid.ErrLayoutExists)
}

func TestSwitchLayout_RoundTripKeepsConnectivity(t *testing.T) {
	d := fiveQubit(t)
	before := d.TwoQubitEdges()

	require.NoError(t, d.AddLayout(1, [][]float64{{0, 0.5, 1}, {0, 0.5, 1}}))
	require.NoError(t, d.SwitchLayout(1))
	assert.Equal(t, 1, d.CurrentLayout())
	assert.NotEqual(t, before, d.TwoQubitEdges(), "compressed layout must change connectivity")

	require.NoError(t, d.SwitchLayout(0))
	assert.Equal(t, before, d.TwoQubitEdges(), "switching back must restore it exactly")
}

func TestSwitchLayout_Unknown(t *testing.T) {
	d := twoByTwo(t)
	assert.ErrorIs(t, d.SwitchLayout(9), grid.ErrLayoutUnknown)
	assert.Equal(t, 0, d.CurrentLayout())
}

func TestChangeQubitPositions_Validation(t *testing.T) {
	base := map[int]grid.Position{
		0: {Row: 0, Column: 0},
		1: {Row: 0, Column: 1},
		2: {Row: 0, Column: 2},
		3: {Row: 1, Column: 0},
		4: {Row: 1, Column: 1},
	}
	edit := func(mutate func(map[int]grid.Position)) map[int]grid.Position {
		m := make(map[int]grid.Position, len(base))
		for q, p := range base {
			m[q] = p
		}
		mutate(m)

		return m
	}

	cases := []struct {
		name    string
		m       map[int]grid.Position
		wantErr error
	}{
		{
			name:    "missing qubit",
			m:       edit(func(m map[int]grid.Position) { delete(m, 4) }),
			wantErr: grid.ErrPositionsMismatch,
		},
		{
			name:    "unknown qubit",
			m:       edit(func(m map[int]grid.Position) { m[9] = grid.Position{Row: 1, Column: 2} }),
			wantErr: grid.ErrPositionsMismatch,
		},
		{
			name:    "out of bounds",
			m:       edit(func(m map[int]grid.Position) { m[0] = grid.Position{Row: 0, Column: 5} }),
			wantErr: grid.ErrPositionBounds,
		},
		{
			name:    "collision",
			m:       edit(func(m map[int]grid.Position) { m[1] = grid.Position{Row: 0, Column: 0} }),
			wantErr: grid.ErrPositionCollision,
		},
		{
			name:    "row occupancy change",
			m:       edit(func(m map[int]grid.Position) { m[2] = grid.Position{Row: 1, Column: 2} }),
			wantErr: grid.ErrRowOccupancy,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := fiveQubit(t)
			err := d.ChangeQubitPositions(tc.m)
			assert.ErrorIs(t, err, tc.wantErr)
			// A rejected reassignment leaves the device untouched.
			assert.Equal(t, base, d.QubitPositions())
		})
	}
}

func TestChangeQubitPositions_WithinRow(t *testing.T) {
	d := fiveQubit(t)

	next := d.QubitPositions()
	next[0], next[1] = next[1], next[0]
	require.NoError(t, d.ChangeQubitPositions(next))
	assert.Equal(t, next, d.QubitPositions())
}

func TestChangeQubitPositions_CrossRowSwap(t *testing.T) {
	// Swapping q2 (row 0) and q3 (row 1) preserves each row's occupancy
	// count, so the reassignment is legal.
	d := fiveQubit(t)

	next := d.QubitPositions()
	next[2], next[3] = next[3], next[2]
	require.NoError(t, d.ChangeQubitPositions(next))
	assert.Equal(t, grid.Position{Row: 1, Column: 0}, d.QubitPositions()[2])
	assert.Equal(t, grid.Position{Row: 0, Column: 2}, d.QubitPositions()[3])
}

func TestSetCutoff_ImmediateEffect(t *testing.T) {
	d := fiveQubit(t)
	assert.Len(t, d.TwoQubitEdges(), 5, "unit cutoff keeps only unit-distance pairs")

	d.SetCutoff(1.5)
	assert.Len(t, d.TwoQubitEdges(), 8, "√2 pairs join at cutoff 1.5")

	d.SetCutoff(0.5)
	assert.Empty(t, d.TwoQubitEdges())

	// The cutoff is inclusive: a pair at exactly the cutoff stays connected.
	d.SetCutoff(1.0)
	assert.Len(t, d.TwoQubitEdges(), 5)
}

func TestChangeDevice_Dispatch(t *testing.T) {
	d := fiveQubit(t)
	require.NoError(t, d.AddLayout(1, [][]float64{{0, 0.5, 1}, {0, 0.5, 1}}))

	payload, err := pragma.ChangeLayout{NewLayout: 1}.Encode()
	require.NoError(t, err)
	require.NoError(t, d.ChangeDevice(pragma.OpChangeLayout, payload))
	assert.Equal(t, 1, d.CurrentLayout())

	shift := pragma.ShiftQubitPositions{Positions: map[int][2]int{
		0: {0, 1}, 1: {0, 0}, 2: {0, 2}, 3: {1, 0}, 4: {1, 1},
	}}
	payload, err = shift.Encode()
	require.NoError(t, err)
	require.NoError(t, d.ChangeDevice(pragma.OpShiftQubitPositions, payload))
	assert.Equal(t, grid.Position{Row: 0, Column: 1}, d.QubitPositions()[0])
}

func TestChangeDevice_Errors(t *testing.T) {
	d := twoByTwo(t)

	// Layout 3 was never registered; the dispatch reaches SwitchLayout and
	// fails there.
	payload, err := pragma.ChangeLayout{NewLayout: 3}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpChangeLayout, payload), grid.ErrLayoutUnknown)

	// Tweezer commands do not apply to the grid variant.
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpDeactivateQubit, nil), qrydion.ErrUnsupportedOperation)
	assert.ErrorIs(t, d.ChangeDevice("NotACommand", nil), qrydion.ErrUnsupportedOperation)

	// A known name with a broken payload fails on decode.
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpChangeLayout, []byte{0x01}), codec.ErrMalformed)

	// A known name with another command's payload fails on the kind tag.
	foreign, err := pragma.DeactivateQubit{Qubit: 0}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpChangeLayout, foreign), codec.ErrKind)
}

func TestClone_Independence(t *testing.T) {
	d := fiveQubit(t)
	require.NoError(t, d.AddLayout(1, [][]float64{{0, 0.5, 1}, {0, 0.5, 1}}))

	clone := d.Clone()
	require.NoError(t, clone.SwitchLayout(1))
	clone.SetCutoff(9)
	next := clone.QubitPositions()
	next[0], next[1] = next[1], next[0]
	require.NoError(t, clone.ChangeQubitPositions(next))

	assert.Equal(t, 0, d.CurrentLayout())
	assert.Equal(t, 1.0, d.Cutoff())
	assert.Equal(t, grid.Position{Row: 0, Column: 0}, d.QubitPositions()[0])
}
