package pragma_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qryddev/codec"
	"github.com/katalvlaran/qryddev/pragma"
	"github.com/katalvlaran/qryddev/qrydion"
)

func TestOperationNames(t *testing.T) {
	assert.Equal(t, "PragmaChangeQRydLayout", pragma.ChangeLayout{}.Name())
	assert.Equal(t, "PragmaShiftQRydQubit", pragma.ShiftQubitPositions{}.Name())
	assert.Equal(t, "PragmaSwitchDeviceLayout", pragma.SwitchLayout{}.Name())
	assert.Equal(t, "PragmaDeactivateQRydQubit", pragma.DeactivateQubit{}.Name())
	assert.Equal(t, "PragmaShiftQubitsTweezers", pragma.ShiftQubitsTweezers{}.Name())
}

func TestEncodeDecode_ChangeLayout(t *testing.T) {
	payload, err := pragma.ChangeLayout{NewLayout: 2}.Encode()
	require.NoError(t, err)

	op, err := pragma.DecodeChangeLayout(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, op.NewLayout)
}

func TestEncodeDecode_ShiftQubitPositions(t *testing.T) {
	in := pragma.ShiftQubitPositions{Positions: map[int][2]int{
		0: {0, 1},
		5: {1, 3},
	}}
	payload, err := in.Encode()
	require.NoError(t, err)

	op, err := pragma.DecodeShiftQubitPositions(payload)
	require.NoError(t, err)
	assert.Equal(t, in.Positions, op.Positions)
}

func TestEncodeDecode_SwitchLayout(t *testing.T) {
	payload, err := pragma.SwitchLayout{NewLayout: "triangle"}.Encode()
	require.NoError(t, err)

	op, err := pragma.DecodeSwitchLayout(payload)
	require.NoError(t, err)
	assert.Equal(t, "triangle", op.NewLayout)
}

func TestEncodeDecode_DeactivateQubit(t *testing.T) {
	payload, err := pragma.DeactivateQubit{Qubit: 7}.Encode()
	require.NoError(t, err)

	op, err := pragma.DecodeDeactivateQubit(payload)
	require.NoError(t, err)
	assert.Equal(t, 7, op.Qubit)
}

func TestEncodeDecode_ShiftQubitsTweezers(t *testing.T) {
	in := pragma.ShiftQubitsTweezers{Shifts: [][2]int{{1, 2}, {2, 3}}}
	payload, err := in.Encode()
	require.NoError(t, err)

	op, err := pragma.DecodeShiftQubitsTweezers(payload)
	require.NoError(t, err)
	assert.Equal(t, in.Shifts, op.Shifts)
}

// Decoding a payload as the wrong command must fail on the kind tag, not
// produce a silently misread struct.
func TestDecode_RejectsForeignCommand(t *testing.T) {
	payload, err := pragma.SwitchLayout{NewLayout: "square"}.Encode()
	require.NoError(t, err)

	_, err = pragma.DecodeChangeLayout(payload)
	assert.ErrorIs(t, err, codec.ErrKind)
	_, err = pragma.DecodeDeactivateQubit(payload)
	assert.ErrorIs(t, err, codec.ErrKind)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := pragma.DecodeChangeLayout(nil)
	assert.ErrorIs(t, err, codec.ErrEmptyInput)

	_, err = pragma.DecodeSwitchLayout([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

func TestWrap(t *testing.T) {
	w, err := pragma.Wrap(pragma.DeactivateQubit{Qubit: 3})
	require.NoError(t, err)
	assert.Equal(t, pragma.OpDeactivateQubit, w.Name)

	op, err := pragma.DecodeDeactivateQubit(w.Payload)
	require.NoError(t, err)
	assert.Equal(t, 3, op.Qubit)
}

// Wrapped.Apply routes through Device.ChangeDevice; the generic device
// supports no commands, so every apply fails uniformly.
func TestWrapped_Apply(t *testing.T) {
	w, err := pragma.Wrap(pragma.SwitchLayout{NewLayout: "square"})
	require.NoError(t, err)

	d := qrydion.NewGenericDevice(2)
	assert.ErrorIs(t, w.Apply(d), qrydion.ErrUnsupportedOperation)
}

func TestKnown(t *testing.T) {
	for _, name := range pragma.Names() {
		assert.True(t, pragma.Known(name), "name %q", name)
	}
	assert.False(t, pragma.Known("PragmaRepeatedMeasurement"))
	assert.False(t, pragma.Known(""))
}

func TestNames_Sorted(t *testing.T) {
	names := pragma.Names()
	assert.Len(t, names, 5)
	assert.True(t, sort.StringsAreSorted(names))
}
