// File: devcfg/devcfg.go
package devcfg

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/qryddev/apidevice"
	"github.com/katalvlaran/qryddev/emulator"
	"github.com/katalvlaran/qryddev/grid"
	"github.com/katalvlaran/qryddev/qrydion"
	"github.com/katalvlaran/qryddev/tweezer"
)

// Sentinel errors surfaced by settings handling.
var (
	// ErrVariant indicates the settings select no device table, or more
	// than one.
	ErrVariant = errors.New("devcfg: settings must select exactly one device variant")

	// ErrBackend indicates an api_device table with an unknown backend.
	ErrBackend = errors.New("devcfg: unknown api_device backend")

	// ErrShape indicates a settings value with the wrong shape, such as a
	// qubit map entry that is not a pair.
	ErrShape = errors.New("devcfg: malformed settings value")
)

// Setting is the on-disk device description. Exactly one of the variant
// tables must be present; it selects the device Build constructs.
type Setting struct {
	Grid      *GridSetting      `toml:"grid"`
	Tweezer   *TweezerSetting   `toml:"tweezer"`
	Emulator  *EmulatorSetting  `toml:"emulator"`
	APIDevice *APIDeviceSetting `toml:"api_device"`
}

// GridSetting describes a rectangular grid device.
type GridSetting struct {
	Rows         int         `toml:"rows"`
	Columns      int         `toml:"columns"`
	QubitsPerRow []int       `toml:"qubits_per_row"`
	RowDistance  float64     `toml:"row_distance"`
	Layout       [][]float64 `toml:"layout"`
	// Cutoff overrides the interaction cutoff when positive.
	Cutoff                       float64 `toml:"cutoff"`
	ControlledZPhaseRelation     string  `toml:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string  `toml:"controlled_phase_phase_relation"`
	AllowCCZ                     bool    `toml:"allow_ccz"`
	AllowCCP                     bool    `toml:"allow_ccp"`
}

// GateEntry is one gate-table row of a tweezer setting. Tweezers names the
// addressed tweezer tuple; its required length follows the gate's arity,
// except for group gates, which take any non-empty tuple. An empty layout
// targets the layout current at build time.
type GateEntry struct {
	Gate     string  `toml:"gate"`
	Tweezers []int   `toml:"tweezers"`
	Time     float64 `toml:"time"`
	Layout   string  `toml:"layout"`
}

// TweezerSetting describes a tweezer device: optional extra layouts, gate
// table entries, shift rows, and the qubit map to install on top.
type TweezerSetting struct {
	Seed                         *int     `toml:"seed"`
	ControlledZPhaseRelation     string   `toml:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string   `toml:"controlled_phase_phase_relation"`
	Layouts                      []string `toml:"layouts"`
	DefaultLayout                string   `toml:"default_layout"`
	// Single, Two, Three, and Multi populate the per-arity gate tables.
	Single []GateEntry `toml:"single"`
	Two    []GateEntry `toml:"two"`
	Three  []GateEntry `toml:"three"`
	Multi  []GateEntry `toml:"multi"`
	// ShiftRows registers row-neighbour shifts for every listed row.
	ShiftRows [][]int `toml:"shift_rows"`
	// QubitMap lists [qubit, tweezer] pairs applied after the tables.
	QubitMap   [][]int `toml:"qubit_map"`
	AllowReset bool    `toml:"allow_reset"`
}

// EmulatorSetting describes an emulator device.
type EmulatorSetting struct {
	Seed                         *int     `toml:"seed"`
	ControlledZPhaseRelation     string   `toml:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string   `toml:"controlled_phase_phase_relation"`
	AvailableGates               []string `toml:"available_gates"`
	QubitMap                     [][]int  `toml:"qubit_map"`
	AllowReset                   bool     `toml:"allow_reset"`
}

// APIDeviceSetting describes one of the fixed cloud devices. Backend accepts
// the full backend identifier or the short forms "square" and "triangular".
type APIDeviceSetting struct {
	Backend                      string `toml:"backend"`
	Seed                         int    `toml:"seed"`
	ControlledZPhaseRelation     string `toml:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string `toml:"controlled_phase_phase_relation"`
	AllowCCZ                     bool   `toml:"allow_ccz"`
	AllowCCP                     bool   `toml:"allow_ccp"`
}

// Load reads and parses the TOML settings at path.
func Load(path string) (*Setting, error) {
	var s Setting
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("devcfg: parse %s: %w", path, err)
	}

	return &s, nil
}

// Variant names the selected device table: "grid", "tweezer", "emulator", or
// "api_device". It fails with ErrVariant unless exactly one is present.
func (s *Setting) Variant() (string, error) {
	var variants []string
	if s.Grid != nil {
		variants = append(variants, "grid")
	}
	if s.Tweezer != nil {
		variants = append(variants, "tweezer")
	}
	if s.Emulator != nil {
		variants = append(variants, "emulator")
	}
	if s.APIDevice != nil {
		variants = append(variants, "api_device")
	}
	if len(variants) != 1 {
		return "", fmt.Errorf("%w: found %d tables", ErrVariant, len(variants))
	}

	return variants[0], nil
}

// Build constructs the device the settings describe.
func (s *Setting) Build() (qrydion.Device, error) {
	variant, err := s.Variant()
	if err != nil {
		return nil, err
	}

	switch variant {
	case "grid":
		return s.buildGrid()
	case "tweezer":
		return s.buildTweezer()
	case "emulator":
		return s.buildEmulator()
	default:
		return s.buildAPIDevice()
	}
}

func (s *Setting) buildGrid() (qrydion.Device, error) {
	cfg := s.Grid
	opts := []grid.Option{
		grid.WithControlledZPhaseRelation(cfg.ControlledZPhaseRelation),
		grid.WithControlledPhasePhaseRelation(cfg.ControlledPhasePhaseRelation),
		grid.WithAllowCCZ(cfg.AllowCCZ),
		grid.WithAllowCCP(cfg.AllowCCP),
	}
	if cfg.Cutoff > 0 {
		opts = append(opts, grid.WithCutoff(cfg.Cutoff))
	}

	return grid.New(cfg.Rows, cfg.Columns, cfg.QubitsPerRow, cfg.RowDistance, cfg.Layout, opts...)
}

func (s *Setting) buildTweezer() (qrydion.Device, error) {
	cfg := s.Tweezer
	opts := []tweezer.Option{
		tweezer.WithControlledZPhaseRelation(cfg.ControlledZPhaseRelation),
		tweezer.WithControlledPhasePhaseRelation(cfg.ControlledPhasePhaseRelation),
	}
	if cfg.Seed != nil {
		opts = append(opts, tweezer.WithSeed(*cfg.Seed))
	}
	d := tweezer.New(opts...)

	for _, name := range cfg.Layouts {
		if err := d.AddLayout(name); err != nil {
			return nil, err
		}
	}
	if err := applyGateEntries(d, cfg); err != nil {
		return nil, err
	}

	// The default layout is recorded and made current before shift rows and
	// the qubit map land, so both target the layout the device operates in,
	// and explicit pairs override the trivial map a switch installs.
	if cfg.DefaultLayout != "" {
		if err := d.SetDefaultLayout(cfg.DefaultLayout); err != nil {
			return nil, err
		}
		if err := d.SwitchLayout(cfg.DefaultLayout); err != nil {
			return nil, err
		}
	}
	if err := d.AllowedTweezerShiftsFromRows(cfg.ShiftRows); err != nil {
		return nil, err
	}
	if err := applyQubitMap(cfg.QubitMap, d.AddQubitTweezerMapping); err != nil {
		return nil, err
	}
	d.SetAllowReset(cfg.AllowReset)

	return d, nil
}

// applyGateEntries routes every gate entry to the setter of its table,
// checking the tuple length against the table's arity.
func applyGateEntries(d *tweezer.Device, cfg *TweezerSetting) error {
	for _, e := range cfg.Single {
		if len(e.Tweezers) != 1 {
			return fmt.Errorf("%w: single entry for %s has %d tweezers", ErrShape, e.Gate, len(e.Tweezers))
		}
		if err := d.SetTweezerSingleQubitGateTime(e.Gate, e.Tweezers[0], e.Time, e.Layout); err != nil {
			return err
		}
	}
	for _, e := range cfg.Two {
		if len(e.Tweezers) != 2 {
			return fmt.Errorf("%w: two entry for %s has %d tweezers", ErrShape, e.Gate, len(e.Tweezers))
		}
		if err := d.SetTweezerTwoQubitGateTime(e.Gate, e.Tweezers[0], e.Tweezers[1], e.Time, e.Layout); err != nil {
			return err
		}
	}
	for _, e := range cfg.Three {
		if len(e.Tweezers) != 3 {
			return fmt.Errorf("%w: three entry for %s has %d tweezers", ErrShape, e.Gate, len(e.Tweezers))
		}
		if err := d.SetTweezerThreeQubitGateTime(e.Gate, e.Tweezers[0], e.Tweezers[1], e.Tweezers[2], e.Time, e.Layout); err != nil {
			return err
		}
	}
	for _, e := range cfg.Multi {
		if err := d.SetTweezerMultiQubitGateTime(e.Gate, e.Tweezers, e.Time, e.Layout); err != nil {
			return err
		}
	}

	return nil
}

func (s *Setting) buildEmulator() (qrydion.Device, error) {
	cfg := s.Emulator
	opts := []emulator.Option{
		emulator.WithControlledZPhaseRelation(cfg.ControlledZPhaseRelation),
		emulator.WithControlledPhasePhaseRelation(cfg.ControlledPhasePhaseRelation),
	}
	if cfg.Seed != nil {
		opts = append(opts, emulator.WithSeed(*cfg.Seed))
	}
	d := emulator.New(opts...)

	for _, gate := range cfg.AvailableGates {
		if err := d.AddAvailableGate(gate); err != nil {
			return nil, err
		}
	}
	if err := applyQubitMap(cfg.QubitMap, d.AddQubitTweezerMapping); err != nil {
		return nil, err
	}
	d.SetAllowReset(cfg.AllowReset)

	return d, nil
}

func (s *Setting) buildAPIDevice() (qrydion.Device, error) {
	cfg := s.APIDevice
	switch cfg.Backend {
	case apidevice.SquareBackend, "square":
		return apidevice.NewSquare(cfg.Seed, cfg.ControlledZPhaseRelation, cfg.ControlledPhasePhaseRelation), nil
	case apidevice.TriangularBackend, "triangular":
		return apidevice.NewTriangular(cfg.Seed, cfg.ControlledZPhaseRelation, cfg.ControlledPhasePhaseRelation,
			cfg.AllowCCZ, cfg.AllowCCP), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBackend, cfg.Backend)
	}
}

// applyQubitMap feeds [qubit, tweezer] pairs into add.
func applyQubitMap(pairs [][]int, add func(qubit, tweezer int) error) error {
	for _, pair := range pairs {
		if len(pair) != 2 {
			return fmt.Errorf("%w: qubit map entry %v is not a pair", ErrShape, pair)
		}
		if err := add(pair[0], pair[1]); err != nil {
			return err
		}
	}

	return nil
}
