package tweezer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qryddev/codec"
	"github.com/katalvlaran/qryddev/pragma"
	"github.com/katalvlaran/qryddev/qrydion"
	"github.com/katalvlaran/qryddev/tweezer"
)

var _ qrydion.Device = (*tweezer.Device)(nil)

// fourTweezers returns a device whose current layout mentions tweezers 0..3
// in the single-qubit table, with no qubit map installed.
func fourTweezers(t *testing.T, opts ...tweezer.Option) *tweezer.Device {
	t.Helper()
	d := tweezer.New(opts...)
	for tw := 0; tw < 4; tw++ {
		require.NoError(t, d.SetTweezerSingleQubitGateTime(qrydion.GatePauliZ, tw, 1e-6, ""))
	}

	return d
}

// mapIdentity installs qubit i → tweezer i for i in 0..n-1.
func mapIdentity(t *testing.T, d *tweezer.Device, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, d.AddQubitTweezerMapping(i, i))
	}
}

func TestNew_Defaults(t *testing.T) {
	d := tweezer.New()

	assert.Equal(t, tweezer.DefaultLayoutName, d.CurrentLayout())
	assert.Equal(t, []string{tweezer.DefaultLayoutName}, d.AvailableLayouts())
	assert.Equal(t, "qryd_tweezer_device", d.DeviceName())
	assert.Equal(t, 0, d.NumberQubits(), "empty tables, no map")
	assert.Nil(t, d.QubitTweezerMapping(), "no qubit map installed yet")
	assert.False(t, d.AllowReset())

	_, ok := d.Seed()
	assert.False(t, ok, "no seed unless requested")
	_, ok = d.MaxTweezer()
	assert.False(t, ok, "empty tables mention no tweezer")
	_, ok = d.DefaultLayout()
	assert.False(t, ok, "no startup default recorded")
}

func TestNew_WithSeed(t *testing.T) {
	d := tweezer.New(tweezer.WithSeed(11))

	seed, ok := d.Seed()
	require.True(t, ok)
	assert.Equal(t, 11, seed)
}

func TestAddLayout_Duplicate(t *testing.T) {
	d := tweezer.New()

	require.NoError(t, d.AddLayout("triangle"))
	assert.Equal(t, []string{tweezer.DefaultLayoutName, "triangle"}, d.AvailableLayouts())

	assert.ErrorIs(t, d.AddLayout("triangle"), tweezer.ErrLayoutExists)
	assert.ErrorIs(t, d.AddLayout(tweezer.DefaultLayoutName), tweezer.ErrLayoutExists)
}

func TestSwitchLayout_Unknown(t *testing.T) {
	d := tweezer.New()

	assert.ErrorIs(t, d.SwitchLayout("missing"), tweezer.ErrLayoutUnknown)
	assert.Equal(t, tweezer.DefaultLayoutName, d.CurrentLayout())
}

func TestSwitchLayout_InstallsTrivialMapping(t *testing.T) {
	d := fourTweezers(t)
	require.Nil(t, d.QubitTweezerMapping())

	require.NoError(t, d.SwitchLayout(tweezer.DefaultLayoutName))

	want := map[int]int{0: 0, 1: 1, 2: 2, 3: 3}
	assert.Equal(t, want, d.QubitTweezerMapping(), "identity map over tweezers 0..MaxTweezer")
	assert.Equal(t, 4, d.NumberQubits())
}

func TestSwitchLayout_KeepsExistingMapping(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AddLayout("sparse"))
	require.NoError(t, d.AddQubitTweezerMapping(7, 2))

	require.NoError(t, d.SwitchLayout("sparse"))

	assert.Equal(t, map[int]int{7: 2}, d.QubitTweezerMapping(), "installed map survives the switch")
	assert.Equal(t, "sparse", d.CurrentLayout())
}

func TestSwitchLayout_EmptyLayoutInstallsEmptyMapping(t *testing.T) {
	d := tweezer.New()

	require.NoError(t, d.SwitchLayout(tweezer.DefaultLayoutName))

	m := d.QubitTweezerMapping()
	require.NotNil(t, m, "switching installs a map even when the tables are empty")
	assert.Empty(t, m)
	assert.Equal(t, 0, d.NumberQubits(), "an installed empty map counts zero qubits")
}

func TestSetDefaultLayout(t *testing.T) {
	d := tweezer.New()
	require.NoError(t, d.AddLayout("compact"))

	assert.ErrorIs(t, d.SetDefaultLayout("missing"), tweezer.ErrLayoutUnknown)

	require.NoError(t, d.SetDefaultLayout("compact"))
	name, ok := d.DefaultLayout()
	require.True(t, ok)
	assert.Equal(t, "compact", name)
	assert.Equal(t, tweezer.DefaultLayoutName, d.CurrentLayout(), "recording the default does not switch")
}

func TestAddQubitTweezerMapping_UnknownTweezer(t *testing.T) {
	d := tweezer.New()

	assert.ErrorIs(t, d.AddQubitTweezerMapping(0, 0), tweezer.ErrTweezerUnknown,
		"empty tables mention no tweezer")

	d = fourTweezers(t)
	assert.ErrorIs(t, d.AddQubitTweezerMapping(0, 9), tweezer.ErrTweezerUnknown)
}

func TestAddQubitTweezerMapping_OverwriteEvicts(t *testing.T) {
	d := fourTweezers(t)

	require.NoError(t, d.AddQubitTweezerMapping(0, 0))
	require.NoError(t, d.AddQubitTweezerMapping(1, 1))
	require.NoError(t, d.AddQubitTweezerMapping(2, 3))

	// Remapping qubit 0 onto tweezer 1 evicts qubit 1 and vacates tweezer 0.
	require.NoError(t, d.AddQubitTweezerMapping(0, 1))

	assert.Equal(t, map[int]int{0: 1, 2: 3}, d.QubitTweezerMapping())
	assert.Equal(t, 2, d.NumberQubits())
}

func TestDeactivateQubit(t *testing.T) {
	d := fourTweezers(t)

	assert.ErrorIs(t, d.DeactivateQubit(0), tweezer.ErrQubitUnmapped, "no map installed")

	mapIdentity(t, d, 2)
	assert.ErrorIs(t, d.DeactivateQubit(5), tweezer.ErrQubitUnmapped)

	require.NoError(t, d.DeactivateQubit(0))
	assert.Equal(t, map[int]int{1: 1}, d.QubitTweezerMapping())

	require.NoError(t, d.DeactivateQubit(1))
	assert.Equal(t, 0, d.NumberQubits(), "an emptied map still counts zero, no fallback")
	assert.NotNil(t, d.QubitTweezerMapping())
}

func TestNumberQubits_FallsBackToTweezerCount(t *testing.T) {
	d := tweezer.New()
	assert.Equal(t, 0, d.NumberQubits())

	require.NoError(t, d.SetTweezerSingleQubitGateTime(qrydion.GatePauliX, 5, 1e-6, ""))
	assert.Equal(t, 6, d.NumberQubits(), "no map: MaxTweezer+1")

	max, ok := d.MaxTweezer()
	require.True(t, ok)
	assert.Equal(t, 5, max)

	require.NoError(t, d.AddQubitTweezerMapping(0, 5))
	assert.Equal(t, 1, d.NumberQubits(), "installed map wins over the fallback")
}

func TestTweezerFromQubit(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AddQubitTweezerMapping(4, 2))

	tw, ok := d.TweezerFromQubit(4)
	require.True(t, ok)
	assert.Equal(t, 2, tw)

	_, ok = d.TweezerFromQubit(0)
	assert.False(t, ok)
}

func TestAllowedTweezerShifts_Validation(t *testing.T) {
	d := fourTweezers(t)

	assert.ErrorIs(t, d.AllowedTweezerShifts(9, [][]int{{0}}), tweezer.ErrTweezerUnknown,
		"unknown origin")
	assert.ErrorIs(t, d.AllowedTweezerShifts(0, [][]int{{1, 9}}), tweezer.ErrTweezerUnknown,
		"unknown path member")
	assert.ErrorIs(t, d.AllowedTweezerShifts(0, [][]int{{1, 0}}), tweezer.ErrShiftSelfReference,
		"path revisits the origin")

	require.NoError(t, d.AllowedTweezerShifts(0, [][]int{{1, 2}, {3}}))
}

func TestAllowedTweezerShiftsFromRows_Validation(t *testing.T) {
	d := fourTweezers(t)

	assert.ErrorIs(t, d.AllowedTweezerShiftsFromRows([][]int{{0, 9}}), tweezer.ErrTweezerUnknown)
	assert.ErrorIs(t, d.AllowedTweezerShiftsFromRows([][]int{{0, 1, 0}}), tweezer.ErrShiftRowRepetition)
}

func TestChangeDevice_SwitchLayoutAndDeactivate(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AddLayout("compact"))
	mapIdentity(t, d, 2)

	payload, err := pragma.SwitchLayout{NewLayout: "compact"}.Encode()
	require.NoError(t, err)
	require.NoError(t, d.ChangeDevice(pragma.OpSwitchLayout, payload))
	assert.Equal(t, "compact", d.CurrentLayout())

	payload, err = pragma.SwitchLayout{NewLayout: "missing"}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpSwitchLayout, payload), tweezer.ErrLayoutUnknown)

	payload, err = pragma.DeactivateQubit{Qubit: 1}.Encode()
	require.NoError(t, err)
	require.NoError(t, d.ChangeDevice(pragma.OpDeactivateQubit, payload))
	assert.Equal(t, map[int]int{0: 0}, d.QubitTweezerMapping())

	payload, err = pragma.DeactivateQubit{Qubit: 1}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpDeactivateQubit, payload), tweezer.ErrQubitUnmapped)
}

func TestChangeDevice_ShiftQubitsTweezers(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AllowedTweezerShiftsFromRows([][]int{{0, 1, 2, 3}}))
	require.NoError(t, d.AddQubitTweezerMapping(0, 0))
	require.NoError(t, d.AddQubitTweezerMapping(3, 3))

	payload, err := pragma.ShiftQubitsTweezers{Shifts: [][2]int{{0, 1}, {3, 2}}}.Encode()
	require.NoError(t, err)
	require.NoError(t, d.ChangeDevice(pragma.OpShiftQubitsTweezers, payload))

	assert.Equal(t, map[int]int{0: 1, 3: 2}, d.QubitTweezerMapping())
}

func TestChangeDevice_ShiftBlockedByOccupiedPath(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AllowedTweezerShiftsFromRows([][]int{{0, 1, 2, 3}}))
	require.NoError(t, d.AddQubitTweezerMapping(0, 0))
	require.NoError(t, d.AddQubitTweezerMapping(1, 1))

	// 0 → 2 runs through the occupied tweezer 1.
	payload, err := pragma.ShiftQubitsTweezers{Shifts: [][2]int{{0, 2}}}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpShiftQubitsTweezers, payload), tweezer.ErrShiftInvalid)

	assert.Equal(t, map[int]int{0: 0, 1: 1}, d.QubitTweezerMapping(), "nothing applied")
}

func TestChangeDevice_ShiftValidatedBeforeAnyApply(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AllowedTweezerShiftsFromRows([][]int{{0, 1, 2, 3}}))
	require.NoError(t, d.AddQubitTweezerMapping(0, 1))

	// The second hop starts from a tweezer that is empty before the first
	// hop is applied; the whole operation is rejected.
	payload, err := pragma.ShiftQubitsTweezers{Shifts: [][2]int{{1, 2}, {2, 3}}}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpShiftQubitsTweezers, payload), tweezer.ErrShiftInvalid)

	assert.Equal(t, map[int]int{0: 1}, d.QubitTweezerMapping())
}

func TestChangeDevice_ShiftRequiresQubitMap(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AllowedTweezerShiftsFromRows([][]int{{0, 1, 2, 3}}))

	payload, err := pragma.ShiftQubitsTweezers{Shifts: [][2]int{{0, 1}}}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpShiftQubitsTweezers, payload), tweezer.ErrNoQubitMap)
}

func TestChangeDevice_ShiftUnregisteredOrUnoccupied(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AllowedTweezerShifts(0, [][]int{{1}}))
	require.NoError(t, d.AddQubitTweezerMapping(0, 0))

	payload, err := pragma.ShiftQubitsTweezers{Shifts: [][2]int{{2, 3}}}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpShiftQubitsTweezers, payload), tweezer.ErrShiftInvalid,
		"no shifts registered for the origin")

	payload, err = pragma.ShiftQubitsTweezers{Shifts: [][2]int{{0, 3}}}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpShiftQubitsTweezers, payload), tweezer.ErrShiftInvalid,
		"destination outside the registered paths")

	require.NoError(t, d.DeactivateQubit(0))
	payload, err = pragma.ShiftQubitsTweezers{Shifts: [][2]int{{0, 1}}}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpShiftQubitsTweezers, payload), tweezer.ErrShiftInvalid,
		"origin holds no qubit")
}

func TestChangeDevice_RejectsGridOperations(t *testing.T) {
	d := tweezer.New()

	err := d.ChangeDevice(pragma.OpChangeLayout, nil)
	assert.ErrorIs(t, err, qrydion.ErrUnsupportedOperation)
	assert.ErrorContains(t, err, pragma.OpSwitchLayout, "redirects to the tweezer counterpart")

	err = d.ChangeDevice(pragma.OpShiftQubitPositions, nil)
	assert.ErrorIs(t, err, qrydion.ErrUnsupportedOperation)
	assert.ErrorContains(t, err, pragma.OpShiftQubitsTweezers)

	assert.ErrorIs(t, d.ChangeDevice("PragmaNope", nil), qrydion.ErrUnsupportedOperation)
}

func TestChangeDevice_RejectsMismatchedPayload(t *testing.T) {
	d := fourTweezers(t)
	mapIdentity(t, d, 2)

	payload, err := pragma.SwitchLayout{NewLayout: tweezer.DefaultLayoutName}.Encode()
	require.NoError(t, err)
	assert.ErrorIs(t, d.ChangeDevice(pragma.OpDeactivateQubit, payload), codec.ErrKind)
}

func TestClone_Independent(t *testing.T) {
	d := fourTweezers(t)
	require.NoError(t, d.AddLayout("compact"))
	require.NoError(t, d.AllowedTweezerShifts(0, [][]int{{1, 2}}))
	require.NoError(t, d.SetDefaultLayout("compact"))
	mapIdentity(t, d, 3)
	d.SetAllowReset(true)

	clone := d.Clone()

	require.NoError(t, clone.AddQubitTweezerMapping(9, 3))
	require.NoError(t, clone.SwitchLayout("compact"))
	clone.SetAllowReset(false)

	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, d.QubitTweezerMapping())
	assert.Equal(t, tweezer.DefaultLayoutName, d.CurrentLayout())
	assert.True(t, d.AllowReset())

	tw, ok := clone.TweezerFromQubit(9)
	require.True(t, ok)
	assert.Equal(t, 3, tw)
}
