// File: tweezer/serialize.go
// Role: wire form of the tweezer device for gob and JSON.
// The wire form carries the full mutable state (layout register with all
// tables and shifts, qubit map, current and default layout, relations, seed,
// reset flag), so decode(encode(d)) reproduces d exactly. Emission is
// deterministic: layouts, gates, and tuples sorted ascending.

package tweezer

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qryddev/codec"
)

const tweezerKind = "tweezer"

type qubitEntry struct {
	Qubit   int `json:"qubit"`
	Tweezer int `json:"tweezer"`
}

type singleEntry struct {
	Gate    string  `json:"gate"`
	Tweezer int     `json:"tweezer"`
	Time    float64 `json:"time"`
}

type twoEntry struct {
	Gate     string  `json:"gate"`
	Tweezer0 int     `json:"tweezer_0"`
	Tweezer1 int     `json:"tweezer_1"`
	Time     float64 `json:"time"`
}

type threeEntry struct {
	Gate     string  `json:"gate"`
	Tweezer0 int     `json:"tweezer_0"`
	Tweezer1 int     `json:"tweezer_1"`
	Tweezer2 int     `json:"tweezer_2"`
	Time     float64 `json:"time"`
}

type multiEntry struct {
	Gate     string  `json:"gate"`
	Tweezers []int   `json:"tweezers"`
	Time     float64 `json:"time"`
}

type shiftEntry struct {
	Tweezer int     `json:"tweezer"`
	Paths   [][]int `json:"paths"`
}

type layoutWire struct {
	Name   string        `json:"name"`
	Single []singleEntry `json:"single_qubit_gate_times"`
	Two    []twoEntry    `json:"two_qubit_gate_times"`
	Three  []threeEntry  `json:"three_qubit_gate_times"`
	Multi  []multiEntry  `json:"multi_qubit_gate_times"`
	Shifts []shiftEntry  `json:"allowed_tweezer_shifts"`
}

type tweezerWire struct {
	HasQubitMap                  bool         `json:"qubit_map_installed"`
	Qubits                       []qubitEntry `json:"qubit_tweezer_mapping"`
	Layouts                      []layoutWire `json:"layout_register"`
	CurrentLayout                string       `json:"current_layout"`
	DefaultLayout                string       `json:"default_layout"`
	ControlledZPhaseRelation     string       `json:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string       `json:"controlled_phase_phase_relation"`
	Seed                         int          `json:"seed"`
	HasSeed                      bool         `json:"seed_set"`
	AllowReset                   bool         `json:"allow_reset"`
	DeviceName                   string       `json:"device_name"`
}

func layoutToWire(name string, info *layoutInfo) layoutWire {
	w := layoutWire{Name: name}
	for gate, table := range info.single {
		for tweezer, time := range table {
			w.Single = append(w.Single, singleEntry{Gate: gate, Tweezer: tweezer, Time: time})
		}
	}
	sort.Slice(w.Single, func(i, j int) bool {
		if w.Single[i].Gate != w.Single[j].Gate {
			return w.Single[i].Gate < w.Single[j].Gate
		}

		return w.Single[i].Tweezer < w.Single[j].Tweezer
	})

	for gate, table := range info.two {
		for pair, time := range table {
			w.Two = append(w.Two, twoEntry{Gate: gate, Tweezer0: pair[0], Tweezer1: pair[1], Time: time})
		}
	}
	sort.Slice(w.Two, func(i, j int) bool {
		a, b := w.Two[i], w.Two[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		if a.Tweezer0 != b.Tweezer0 {
			return a.Tweezer0 < b.Tweezer0
		}

		return a.Tweezer1 < b.Tweezer1
	})

	for gate, table := range info.three {
		for triple, time := range table {
			w.Three = append(w.Three, threeEntry{
				Gate: gate, Tweezer0: triple[0], Tweezer1: triple[1], Tweezer2: triple[2], Time: time,
			})
		}
	}
	sort.Slice(w.Three, func(i, j int) bool {
		a, b := w.Three[i], w.Three[j]
		if a.Gate != b.Gate {
			return a.Gate < b.Gate
		}
		if a.Tweezer0 != b.Tweezer0 {
			return a.Tweezer0 < b.Tweezer0
		}
		if a.Tweezer1 != b.Tweezer1 {
			return a.Tweezer1 < b.Tweezer1
		}

		return a.Tweezer2 < b.Tweezer2
	})

	for gate, entries := range info.multi {
		for _, entry := range entries {
			w.Multi = append(w.Multi, multiEntry{
				Gate: gate, Tweezers: append([]int(nil), entry.tweezers...), Time: entry.time,
			})
		}
	}
	sort.Slice(w.Multi, func(i, j int) bool {
		if w.Multi[i].Gate != w.Multi[j].Gate {
			return w.Multi[i].Gate < w.Multi[j].Gate
		}

		return lessInts(w.Multi[i].Tweezers, w.Multi[j].Tweezers)
	})

	for tweezer, paths := range info.shifts {
		w.Shifts = append(w.Shifts, shiftEntry{Tweezer: tweezer, Paths: copyPaths(paths)})
	}
	sort.Slice(w.Shifts, func(i, j int) bool { return w.Shifts[i].Tweezer < w.Shifts[j].Tweezer })

	return w
}

func (d *Device) wire() tweezerWire {
	w := tweezerWire{
		HasQubitMap:                  d.qubitMap != nil,
		CurrentLayout:                d.currentLayout,
		DefaultLayout:                d.defaultLayout,
		ControlledZPhaseRelation:     d.czRelation,
		ControlledPhasePhaseRelation: d.cpRelation,
		Seed:                         d.seed,
		HasSeed:                      d.hasSeed,
		AllowReset:                   d.allowReset,
		DeviceName:                   d.deviceName,
	}
	for qubit, tweezer := range d.qubitMap {
		w.Qubits = append(w.Qubits, qubitEntry{Qubit: qubit, Tweezer: tweezer})
	}
	sort.Slice(w.Qubits, func(i, j int) bool { return w.Qubits[i].Qubit < w.Qubits[j].Qubit })

	for name, info := range d.layouts {
		w.Layouts = append(w.Layouts, layoutToWire(name, info))
	}
	sort.Slice(w.Layouts, func(i, j int) bool { return w.Layouts[i].Name < w.Layouts[j].Name })

	return w
}

func layoutFromWire(w layoutWire) (*layoutInfo, error) {
	info := newLayoutInfo()
	for _, entry := range w.Single {
		if _, dup := info.single[entry.Gate][entry.Tweezer]; dup {
			return nil, fmt.Errorf("%w: layout %q: single entry (%s, %d) listed twice",
				codec.ErrMalformed, w.Name, entry.Gate, entry.Tweezer)
		}
		info.setSingle(entry.Gate, entry.Tweezer, entry.Time)
	}
	for _, entry := range w.Two {
		if _, dup := info.two[entry.Gate][[2]int{entry.Tweezer0, entry.Tweezer1}]; dup {
			return nil, fmt.Errorf("%w: layout %q: two entry (%s, %d, %d) listed twice",
				codec.ErrMalformed, w.Name, entry.Gate, entry.Tweezer0, entry.Tweezer1)
		}
		info.setTwo(entry.Gate, entry.Tweezer0, entry.Tweezer1, entry.Time)
	}
	for _, entry := range w.Three {
		key := [3]int{entry.Tweezer0, entry.Tweezer1, entry.Tweezer2}
		if _, dup := info.three[entry.Gate][key]; dup {
			return nil, fmt.Errorf("%w: layout %q: three entry (%s, %d, %d, %d) listed twice",
				codec.ErrMalformed, w.Name, entry.Gate, entry.Tweezer0, entry.Tweezer1, entry.Tweezer2)
		}
		info.setThree(entry.Gate, entry.Tweezer0, entry.Tweezer1, entry.Tweezer2, entry.Time)
	}
	for _, entry := range w.Multi {
		if len(entry.Tweezers) == 0 {
			return nil, fmt.Errorf("%w: layout %q: empty multi entry for %s", codec.ErrMalformed, w.Name, entry.Gate)
		}
		if _, dup := info.getMulti(entry.Gate, entry.Tweezers); dup {
			return nil, fmt.Errorf("%w: layout %q: multi entry (%s, %v) listed twice",
				codec.ErrMalformed, w.Name, entry.Gate, entry.Tweezers)
		}
		info.setMulti(entry.Gate, entry.Tweezers, entry.Time)
	}
	for _, entry := range w.Shifts {
		if _, dup := info.shifts[entry.Tweezer]; dup {
			return nil, fmt.Errorf("%w: layout %q: shifts for tweezer %d listed twice",
				codec.ErrMalformed, w.Name, entry.Tweezer)
		}
		for _, path := range entry.Paths {
			if len(path) == 0 {
				return nil, fmt.Errorf("%w: layout %q: empty shift path for tweezer %d",
					codec.ErrMalformed, w.Name, entry.Tweezer)
			}
		}
		info.shifts[entry.Tweezer] = copyPaths(entry.Paths)
	}

	return info, nil
}

func (d *Device) fromWire(w tweezerWire) error {
	restored := &Device{
		layouts:       make(map[string]*layoutInfo, len(w.Layouts)),
		defaultLayout: w.DefaultLayout,
		czRelation:    w.ControlledZPhaseRelation,
		cpRelation:    w.ControlledPhasePhaseRelation,
		seed:          w.Seed,
		hasSeed:       w.HasSeed,
		allowReset:    w.AllowReset,
		deviceName:    w.DeviceName,
	}

	for _, layout := range w.Layouts {
		if _, dup := restored.layouts[layout.Name]; dup {
			return fmt.Errorf("%w: layout %q listed twice", codec.ErrMalformed, layout.Name)
		}
		info, err := layoutFromWire(layout)
		if err != nil {
			return err
		}
		restored.layouts[layout.Name] = info
	}

	// A wire form predating current-layout tracking carries an empty field;
	// fall back to the recorded default, then to the construction default.
	current := w.CurrentLayout
	if current == "" {
		current = w.DefaultLayout
	}
	if current == "" {
		current = DefaultLayoutName
	}
	if _, ok := restored.layouts[current]; !ok {
		return fmt.Errorf("%w: current layout %q not in register", codec.ErrMalformed, current)
	}
	restored.currentLayout = current

	if w.DefaultLayout != "" {
		if _, ok := restored.layouts[w.DefaultLayout]; !ok {
			return fmt.Errorf("%w: default layout %q not in register", codec.ErrMalformed, w.DefaultLayout)
		}
	}

	if w.HasQubitMap {
		restored.qubitMap = make(map[int]int, len(w.Qubits))
		for _, entry := range w.Qubits {
			if _, dup := restored.qubitMap[entry.Qubit]; dup {
				return fmt.Errorf("%w: qubit %d listed twice", codec.ErrMalformed, entry.Qubit)
			}
			restored.qubitMap[entry.Qubit] = entry.Tweezer
		}
	} else if len(w.Qubits) > 0 {
		return fmt.Errorf("%w: qubit entries without an installed map", codec.ErrMalformed)
	}

	*d = *restored

	return nil
}

// MarshalBinary encodes the device into the gob envelope tagged "tweezer".
func (d *Device) MarshalBinary() ([]byte, error) {
	return codec.EncodeBinaryKind(tweezerKind, d.wire())
}

// UnmarshalBinary decodes a gob envelope produced by MarshalBinary.
func (d *Device) UnmarshalBinary(data []byte) error {
	var w tweezerWire
	if err := codec.DecodeBinaryKind(data, tweezerKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}

// MarshalJSON encodes the device into the JSON envelope tagged "tweezer".
func (d *Device) MarshalJSON() ([]byte, error) {
	return codec.EncodeJSONKind(tweezerKind, d.wire())
}

// UnmarshalJSON decodes a JSON envelope produced by MarshalJSON.
func (d *Device) UnmarshalJSON(data []byte) error {
	var w tweezerWire
	if err := codec.DecodeJSONKind(data, tweezerKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}

// lessInts orders integer slices lexicographically, shorter first on ties.
func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
