package apidevice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qryddev/apidevice"
	"github.com/katalvlaran/qryddev/codec"
	"github.com/katalvlaran/qryddev/qrydion"
)

func TestSquare_RoundTrip(t *testing.T) {
	d := apidevice.NewSquare(11, "0.3", "")

	data, err := d.MarshalBinary()
	require.NoError(t, err)
	var restored apidevice.SquareDevice
	require.NoError(t, restored.UnmarshalBinary(data))

	assert.Equal(t, 11, restored.Seed())
	phi, err := restored.PhaseShiftControlledZ()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, phi, 1e-12)
	assert.Equal(t, d.TwoQubitEdges(), restored.TwoQubitEdges())

	data, err = d.MarshalJSON()
	require.NoError(t, err)
	require.NoError(t, restored.UnmarshalJSON(data))
	assert.Equal(t, 11, restored.Seed())
}

func TestTriangular_RoundTrip(t *testing.T) {
	d := apidevice.NewTriangular(5, "", "", true, true)

	data, err := d.MarshalBinary()
	require.NoError(t, err)
	var restored apidevice.TriangularDevice
	require.NoError(t, restored.UnmarshalBinary(data))

	assert.Equal(t, 5, restored.Seed())
	assert.True(t, restored.AllowCCZ())
	assert.True(t, restored.AllowCCP())
	_, ok := restored.ThreeQubitGateTime(qrydion.GateControlledControlledPhaseShift, 0, 1, 6)
	assert.True(t, ok, "the three-qubit flags survive the trip")

	data, err = d.MarshalJSON()
	require.NoError(t, err)
	require.NoError(t, restored.UnmarshalJSON(data))
	assert.True(t, restored.AllowCCZ())
}

func TestUnmarshal_RejectsForeignKind(t *testing.T) {
	square := apidevice.NewSquare(0, "", "")
	data, err := square.MarshalBinary()
	require.NoError(t, err)

	// The two lattice kinds do not interchange.
	var triangular apidevice.TriangularDevice
	assert.ErrorIs(t, triangular.UnmarshalBinary(data), codec.ErrKind)

	gen := qrydion.NewGenericDevice(2)
	data, err = gen.MarshalJSON()
	require.NoError(t, err)
	var d apidevice.SquareDevice
	assert.ErrorIs(t, d.UnmarshalJSON(data), codec.ErrKind)
}

func TestUnmarshal_RejectsGarbage(t *testing.T) {
	var d apidevice.SquareDevice

	assert.ErrorIs(t, d.UnmarshalBinary(nil), codec.ErrEmptyInput)
	assert.ErrorIs(t, d.UnmarshalJSON([]byte(`{"kind":`)), codec.ErrMalformed)
}

func TestUnmarshal_DefaultsEmptyRelations(t *testing.T) {
	// Wire forms written before relation tracking carry empty strings; they
	// decode to the calibrated default, matching the constructor.
	data, err := codec.EncodeJSONKind("api_square", map[string]any{"seed": 3})
	require.NoError(t, err)

	var d apidevice.SquareDevice
	require.NoError(t, d.UnmarshalJSON(data))
	assert.Equal(t, 3, d.Seed())
	_, ok := d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, 0, 1)
	assert.True(t, ok)
}
