// File: tweezer/device.go
// Role: device state, construction, layout register, qubit map, and the
// in-place mutators.

package tweezer

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qryddev/pragma"
	"github.com/katalvlaran/qryddev/qrydion"
)

// Device is a tweezer trap array whose connectivity is written down
// explicitly: named layouts carry per-position gate-time tables, and a
// single global qubit→tweezer map decides which positions are occupied.
//
// A fresh device registers the layout DefaultLayoutName, makes it current,
// and holds no qubit map; until a map is installed every gate-time query
// misses.
type Device struct {
	// qubitMap is nil until a mapping is installed; nil and empty differ
	// (an empty map means every qubit was deactivated).
	qubitMap map[int]int

	layouts       map[string]*layoutInfo
	currentLayout string
	defaultLayout string

	czRelation string
	cpRelation string

	seed       int
	hasSeed    bool
	allowReset bool
	deviceName string
}

// New constructs a tweezer device on the empty DefaultLayoutName layout.
func New(opts ...Option) *Device {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	d := &Device{
		layouts:       make(map[string]*layoutInfo),
		currentLayout: DefaultLayoutName,
		czRelation:    options.ControlledZPhaseRelation,
		cpRelation:    options.ControlledPhasePhaseRelation,
		seed:          options.Seed,
		hasSeed:       options.HasSeed,
		deviceName:    defaultDeviceName,
	}
	d.layouts[DefaultLayoutName] = newLayoutInfo()

	return d
}

// AddLayout registers an empty layout under name.
func (d *Device) AddLayout(name string) error {
	if _, exists := d.layouts[name]; exists {
		return fmt.Errorf("%w: %q", ErrLayoutExists, name)
	}
	d.layouts[name] = newLayoutInfo()

	return nil
}

// SwitchLayout makes the registered layout at name the current one. When no
// qubit map is installed yet, the trivial identity map over the new layout's
// tweezers 0..MaxTweezer() is installed alongside.
func (d *Device) SwitchLayout(name string) error {
	if _, ok := d.layouts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrLayoutUnknown, name)
	}
	d.currentLayout = name
	if d.qubitMap == nil {
		d.qubitMap = d.trivialMapping()
	}

	return nil
}

// SetDefaultLayout records name as the startup default without switching to
// it. The default is applied by configuration loading, not by the device
// itself.
func (d *Device) SetDefaultLayout(name string) error {
	if _, ok := d.layouts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrLayoutUnknown, name)
	}
	d.defaultLayout = name

	return nil
}

// DefaultLayout reports the recorded startup default, false when none is
// set.
func (d *Device) DefaultLayout() (string, bool) {
	return d.defaultLayout, d.defaultLayout != ""
}

// CurrentLayout reports the name of the active layout.
func (d *Device) CurrentLayout() string { return d.currentLayout }

// AvailableLayouts lists the registered layout names in ascending order.
func (d *Device) AvailableLayouts() []string {
	names := make([]string, 0, len(d.layouts))
	for name := range d.layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// AddQubitTweezerMapping assigns qubit to tweezer. The tweezer must appear
// in the current layout's gate tables. A tweezer holds at most one qubit:
// mapping onto an occupied tweezer evicts the previous holder.
func (d *Device) AddQubitTweezerMapping(qubit, tweezer int) error {
	if !d.current().hasTweezer(tweezer) {
		return fmt.Errorf("%w: tweezer %d", ErrTweezerUnknown, tweezer)
	}
	if d.qubitMap == nil {
		d.qubitMap = make(map[int]int)
	}
	for held, tw := range d.qubitMap {
		if tw == tweezer {
			delete(d.qubitMap, held)

			break
		}
	}
	d.qubitMap[qubit] = tweezer

	return nil
}

// DeactivateQubit removes qubit from the qubit map.
func (d *Device) DeactivateQubit(qubit int) error {
	if _, ok := d.qubitMap[qubit]; !ok {
		return fmt.Errorf("%w: qubit %d", ErrQubitUnmapped, qubit)
	}
	delete(d.qubitMap, qubit)

	return nil
}

// QubitTweezerMapping returns an independent copy of the qubit→tweezer map,
// nil when no map has been installed.
func (d *Device) QubitTweezerMapping() map[int]int {
	if d.qubitMap == nil {
		return nil
	}
	out := make(map[int]int, len(d.qubitMap))
	for qubit, tweezer := range d.qubitMap {
		out[qubit] = tweezer
	}

	return out
}

// TweezerFromQubit resolves the tweezer holding qubit.
func (d *Device) TweezerFromQubit(qubit int) (int, bool) {
	tweezer, ok := d.qubitMap[qubit]

	return tweezer, ok
}

// AllowedTweezerShifts registers the shift paths a qubit may take out of
// tweezer under the current layout. Each path is an ordered tweezer list: a
// destination is reachable only while every position before it is free.
// Every mentioned tweezer must be present in the layout's tables, and no
// path may contain the origin itself.
func (d *Device) AllowedTweezerShifts(tweezer int, paths [][]int) error {
	info := d.current()
	if !info.hasTweezer(tweezer) {
		return fmt.Errorf("%w: tweezer %d", ErrTweezerUnknown, tweezer)
	}
	for _, path := range paths {
		for _, tw := range path {
			if tw == tweezer {
				return fmt.Errorf("%w: tweezer %d", ErrShiftSelfReference, tweezer)
			}
			if !info.hasTweezer(tw) {
				return fmt.Errorf("%w: tweezer %d", ErrTweezerUnknown, tw)
			}
		}
	}
	info.shifts[tweezer] = copyPaths(paths)

	return nil
}

// AllowedTweezerShiftsFromRows registers shift paths from physical rows of
// tweezers: each row position may shift left (towards the row start) or
// right (towards the row end), one free position at a time.
func (d *Device) AllowedTweezerShiftsFromRows(rows [][]int) error {
	info := d.current()
	for _, row := range rows {
		seen := make(map[int]struct{}, len(row))
		for _, tw := range row {
			if !info.hasTweezer(tw) {
				return fmt.Errorf("%w: tweezer %d", ErrTweezerUnknown, tw)
			}
			if _, dup := seen[tw]; dup {
				return fmt.Errorf("%w: tweezer %d", ErrShiftRowRepetition, tw)
			}
			seen[tw] = struct{}{}
		}
	}

	for _, row := range rows {
		for i, tweezer := range row {
			left := make([]int, 0, i)
			for j := i - 1; j >= 0; j-- {
				left = append(left, row[j])
			}
			right := append([]int(nil), row[i+1:]...)

			paths := make([][]int, 0, 2)
			if len(left) > 0 {
				paths = append(paths, left)
			}
			if len(right) > 0 {
				paths = append(paths, right)
			}
			info.shifts[tweezer] = paths
		}
	}

	return nil
}

// SetAllowReset toggles support for active qubit resets.
func (d *Device) SetAllowReset(allow bool) { d.allowReset = allow }

// AllowReset reports whether the device supports active qubit resets.
func (d *Device) AllowReset() bool { return d.allowReset }

// DeviceName reports the device identity used by backends.
func (d *Device) DeviceName() string { return d.deviceName }

// Seed reports the recorded simulator seed, false when none is set.
func (d *Device) Seed() (int, bool) { return d.seed, d.hasSeed }

// MaxTweezer reports the highest tweezer index the current layout's gate
// tables mention, false when the tables are empty.
func (d *Device) MaxTweezer() (int, bool) {
	return d.current().maxTweezer()
}

// NumberQubits reports the mapped qubit count. Before any map is installed
// it falls back to the current layout's tweezer count, MaxTweezer()+1.
func (d *Device) NumberQubits() int {
	if d.qubitMap != nil {
		return len(d.qubitMap)
	}
	if max, ok := d.current().maxTweezer(); ok {
		return max + 1
	}

	return 0
}

// ChangeDevice applies an encoded mutation command.
//
// The tweezer variant accepts pragma.OpSwitchLayout, pragma.OpDeactivateQubit
// and pragma.OpShiftQubitsTweezers. The indexed-layout and grid-shift
// commands belong to the grid variant and are redirected to their tweezer
// counterparts; any other name fails with qrydion.ErrUnsupportedOperation.
func (d *Device) ChangeDevice(name string, payload []byte) error {
	switch name {
	case pragma.OpChangeLayout:
		return fmt.Errorf("tweezer: %q: %w, use %q", name, qrydion.ErrUnsupportedOperation, pragma.OpSwitchLayout)
	case pragma.OpShiftQubitPositions:
		return fmt.Errorf("tweezer: %q: %w, use %q", name, qrydion.ErrUnsupportedOperation, pragma.OpShiftQubitsTweezers)
	case pragma.OpSwitchLayout:
		op, err := pragma.DecodeSwitchLayout(payload)
		if err != nil {
			return fmt.Errorf("tweezer: %s: %w", name, err)
		}

		return d.SwitchLayout(op.NewLayout)
	case pragma.OpDeactivateQubit:
		op, err := pragma.DecodeDeactivateQubit(payload)
		if err != nil {
			return fmt.Errorf("tweezer: %s: %w", name, err)
		}

		return d.DeactivateQubit(op.Qubit)
	case pragma.OpShiftQubitsTweezers:
		op, err := pragma.DecodeShiftQubitsTweezers(payload)
		if err != nil {
			return fmt.Errorf("tweezer: %s: %w", name, err)
		}

		return d.shiftQubits(op.Shifts)
	default:
		return fmt.Errorf("tweezer: %q: %w", name, qrydion.ErrUnsupportedOperation)
	}
}

// shiftQubits validates every requested shift against the occupancy before
// any of them is applied, then applies them in order.
func (d *Device) shiftQubits(shifts [][2]int) error {
	if d.qubitMap == nil {
		return ErrNoQubitMap
	}
	for _, shift := range shifts {
		if err := d.checkShift(shift[0], shift[1]); err != nil {
			return err
		}
	}
	for _, shift := range shifts {
		if qubit, ok := d.qubitAt(shift[0]); ok {
			d.qubitMap[qubit] = shift[1]
		}
	}

	return nil
}

// checkShift verifies one start→end shift: the start must have a registered
// path list containing end, the start must hold a qubit, and end plus every
// path position before it must be free.
func (d *Device) checkShift(start, end int) error {
	paths, ok := d.current().shifts[start]
	if !ok {
		return fmt.Errorf("%w: no shifts registered for tweezer %d", ErrShiftInvalid, start)
	}

	var path []int
	for _, candidate := range paths {
		for _, tw := range candidate {
			if tw == end {
				path = candidate

				break
			}
		}
		if path != nil {
			break
		}
	}
	if path == nil {
		return fmt.Errorf("%w: tweezer %d cannot reach %d", ErrShiftInvalid, start, end)
	}

	if _, occupied := d.qubitAt(start); !occupied {
		return fmt.Errorf("%w: tweezer %d holds no qubit", ErrShiftInvalid, start)
	}
	for _, tw := range path {
		if _, occupied := d.qubitAt(tw); occupied {
			return fmt.Errorf("%w: path position %d is occupied", ErrShiftInvalid, tw)
		}
		if tw == end {
			break
		}
	}

	return nil
}

// qubitAt resolves the qubit held by tweezer; the lowest qubit index wins if
// the map ever holds duplicates.
func (d *Device) qubitAt(tweezer int) (int, bool) {
	qubit, found := 0, false
	for q, tw := range d.qubitMap {
		if tw == tweezer && (!found || q < qubit) {
			qubit, found = q, true
		}
	}

	return qubit, found
}

// Clone returns a fully independent deep copy of the device.
func (d *Device) Clone() *Device {
	clone := &Device{
		layouts:       make(map[string]*layoutInfo, len(d.layouts)),
		currentLayout: d.currentLayout,
		defaultLayout: d.defaultLayout,
		czRelation:    d.czRelation,
		cpRelation:    d.cpRelation,
		seed:          d.seed,
		hasSeed:       d.hasSeed,
		allowReset:    d.allowReset,
		deviceName:    d.deviceName,
	}
	if d.qubitMap != nil {
		clone.qubitMap = make(map[int]int, len(d.qubitMap))
		for qubit, tweezer := range d.qubitMap {
			clone.qubitMap[qubit] = tweezer
		}
	}
	for name, info := range d.layouts {
		clone.layouts[name] = info.clone()
	}

	return clone
}

// current resolves the active layout's tables.
func (d *Device) current() *layoutInfo {
	return d.layouts[d.currentLayout]
}

// trivialMapping builds the identity map over the current layout's tweezers
// 0..MaxTweezer(); empty when the tables mention none.
func (d *Device) trivialMapping() map[int]int {
	mapping := make(map[int]int)
	if max, ok := d.current().maxTweezer(); ok {
		for i := 0; i <= max; i++ {
			mapping[i] = i
		}
	}

	return mapping
}
