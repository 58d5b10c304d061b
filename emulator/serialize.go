// File: emulator/serialize.go
// Role: wire form of the emulator device for gob and JSON. Emission is
// deterministic: gates and qubit entries sorted ascending.

package emulator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qryddev/codec"
	"github.com/katalvlaran/qryddev/qrydion"
)

const emulatorKind = "emulator"

type qubitEntry struct {
	Qubit   int `json:"qubit"`
	Tweezer int `json:"tweezer"`
}

type emulatorWire struct {
	HasQubitMap                  bool         `json:"qubit_map_installed"`
	Qubits                       []qubitEntry `json:"qubit_tweezer_mapping"`
	AvailableGates               []string     `json:"available_gates"`
	ControlledZPhaseRelation     string       `json:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string       `json:"controlled_phase_phase_relation"`
	Seed                         int          `json:"seed"`
	HasSeed                      bool         `json:"seed_set"`
	AllowReset                   bool         `json:"allow_reset"`
	DeviceName                   string       `json:"device_name"`
}

func (d *Device) wire() emulatorWire {
	w := emulatorWire{
		HasQubitMap:                  d.qubitMap != nil,
		AvailableGates:               d.AvailableGates(),
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

	return w
}

func (d *Device) fromWire(w emulatorWire) error {
	restored := &Device{
		gates:      make(map[string]struct{}, len(w.AvailableGates)),
		czRelation: w.ControlledZPhaseRelation,
		cpRelation: w.ControlledPhasePhaseRelation,
		seed:       w.Seed,
		hasSeed:    w.HasSeed,
		allowReset: w.AllowReset,
		deviceName: w.DeviceName,
	}

	for _, gate := range w.AvailableGates {
		if !qrydion.KnownGate(gate) {
			return fmt.Errorf("%w: gate %q not in the hardware catalog", codec.ErrMalformed, gate)
		}
		if _, dup := restored.gates[gate]; dup {
			return fmt.Errorf("%w: gate %q listed twice", codec.ErrMalformed, gate)
		}
		restored.gates[gate] = struct{}{}
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

// MarshalBinary encodes the device into the gob envelope tagged "emulator".
func (d *Device) MarshalBinary() ([]byte, error) {
	return codec.EncodeBinaryKind(emulatorKind, d.wire())
}

// UnmarshalBinary decodes a gob envelope produced by MarshalBinary.
func (d *Device) UnmarshalBinary(data []byte) error {
	var w emulatorWire
	if err := codec.DecodeBinaryKind(data, emulatorKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}

// MarshalJSON encodes the device into the JSON envelope tagged "emulator".
func (d *Device) MarshalJSON() ([]byte, error) {
	return codec.EncodeJSONKind(emulatorKind, d.wire())
}

// UnmarshalJSON decodes a JSON envelope produced by MarshalJSON.
func (d *Device) UnmarshalJSON(data []byte) error {
	var w emulatorWire
	if err := codec.DecodeJSONKind(data, emulatorKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}
