// File: emulator/device.go
// Role: device state, construction, allow-list and qubit-map mutators.

package emulator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qryddev/pragma"
	"github.com/katalvlaran/qryddev/qrydion"
)

const defaultDeviceName = "qryd_tweezer_device"

// Device is the emulator variant of the tweezer model: no layouts, no
// gate-time tables, no connectivity. Availability is decided purely by a
// gate-name allow-list, and every available gate reports unit time. The
// qubit→tweezer map exists only so circuits addressing mapped qubits can be
// rewritten the same way as on tweezer hardware.
type Device struct {
	// qubitMap is nil until a mapping is installed; nil and empty differ.
	qubitMap map[int]int

	gates map[string]struct{}

	czRelation string
	cpRelation string

	seed       int
	hasSeed    bool
	allowReset bool
	deviceName string
}

// New constructs an emulator device with an empty allow-list.
func New(opts ...Option) *Device {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Device{
		gates:      make(map[string]struct{}),
		czRelation: options.ControlledZPhaseRelation,
		cpRelation: options.ControlledPhasePhaseRelation,
		seed:       options.Seed,
		hasSeed:    options.HasSeed,
		deviceName: defaultDeviceName,
	}
}

// AddAvailableGate admits a gate name to the allow-list. The name must be in
// the hardware gate catalog; admitting a name twice is a no-op.
func (d *Device) AddAvailableGate(name string) error {
	if !qrydion.KnownGate(name) {
		return fmt.Errorf("%w: %q", ErrUnknownGate, name)
	}
	d.gates[name] = struct{}{}

	return nil
}

// AvailableGates lists the allow-listed gate names in ascending order.
func (d *Device) AvailableGates() []string {
	names := make([]string, 0, len(d.gates))
	for name := range d.gates {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// allowed reports allow-list membership.
func (d *Device) allowed(name string) bool {
	_, ok := d.gates[name]

	return ok
}

// AddQubitTweezerMapping assigns qubit to tweezer. The emulator has no
// tables, so any tweezer index is acceptable; a tweezer still holds at most
// one qubit, and mapping onto an occupied one evicts the previous holder.
func (d *Device) AddQubitTweezerMapping(qubit, tweezer int) error {
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

// SetAllowReset toggles support for active qubit resets.
func (d *Device) SetAllowReset(allow bool) { d.allowReset = allow }

// AllowReset reports whether the device supports active qubit resets.
func (d *Device) AllowReset() bool { return d.allowReset }

// DeviceName reports the device identity used by backends.
func (d *Device) DeviceName() string { return d.deviceName }

// Seed reports the recorded simulator seed, false when none is set.
func (d *Device) Seed() (int, bool) { return d.seed, d.hasSeed }

// NumberQubits reports the mapped qubit count; zero before any map exists.
func (d *Device) NumberQubits() int { return len(d.qubitMap) }

// NumberTweezerPositions reports the occupied tweezer count. Tweezers hold
// at most one qubit each, so it equals NumberQubits.
func (d *Device) NumberTweezerPositions() int { return len(d.qubitMap) }

// ChangeDevice applies an encoded mutation command.
//
// The emulator accepts pragma.OpDeactivateQubit and
// pragma.OpShiftQubitsTweezers; the grid-shift command is redirected to its
// tweezer counterpart, and the layout commands fail plainly because the
// emulator has no layouts.
func (d *Device) ChangeDevice(name string, payload []byte) error {
	switch name {
	case pragma.OpChangeLayout, pragma.OpSwitchLayout:
		return fmt.Errorf("emulator: %q: %w, the emulator has no layouts", name, qrydion.ErrUnsupportedOperation)
	case pragma.OpShiftQubitPositions:
		return fmt.Errorf("emulator: %q: %w, use %q", name, qrydion.ErrUnsupportedOperation, pragma.OpShiftQubitsTweezers)
	case pragma.OpDeactivateQubit:
		op, err := pragma.DecodeDeactivateQubit(payload)
		if err != nil {
			return fmt.Errorf("emulator: %s: %w", name, err)
		}

		return d.DeactivateQubit(op.Qubit)
	case pragma.OpShiftQubitsTweezers:
		op, err := pragma.DecodeShiftQubitsTweezers(payload)
		if err != nil {
			return fmt.Errorf("emulator: %s: %w", name, err)
		}

		return d.shiftQubits(op.Shifts)
	default:
		return fmt.Errorf("emulator: %q: %w", name, qrydion.ErrUnsupportedOperation)
	}
}

// shiftQubits applies the shifts in order. The emulator registers no shift
// paths, so there is nothing to validate: each occupied start is remapped to
// its end, vacant starts are skipped.
func (d *Device) shiftQubits(shifts [][2]int) error {
	if d.qubitMap == nil {
		return ErrNoQubitMap
	}
	for _, shift := range shifts {
		if qubit, ok := d.qubitAt(shift[0]); ok {
			d.qubitMap[qubit] = shift[1]
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
		gates:      make(map[string]struct{}, len(d.gates)),
		czRelation: d.czRelation,
		cpRelation: d.cpRelation,
		seed:       d.seed,
		hasSeed:    d.hasSeed,
		allowReset: d.allowReset,
		deviceName: d.deviceName,
	}
	for name := range d.gates {
		clone.gates[name] = struct{}{}
	}
	if d.qubitMap != nil {
		clone.qubitMap = make(map[int]int, len(d.qubitMap))
		for qubit, tweezer := range d.qubitMap {
			clone.qubitMap[qubit] = tweezer
		}
	}

	return clone
}
