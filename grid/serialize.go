// File: grid/serialize.go
// Role: wire form of the grid device for gob and JSON.
// The wire form carries the full mutable state (layout register, current
// layout, qubit assignment, cutoff), so decode(encode(d)) reproduces d
// exactly. Emission is deterministic: qubits and layouts sorted ascending.

package grid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qryddev/codec"
)

const gridKind = "grid"

type qubitEntry struct {
	Qubit  int `json:"qubit"`
	Row    int `json:"row"`
	Column int `json:"column"`
}

type layoutEntry struct {
	Index int         `json:"index"`
	Rows  [][]float64 `json:"rows"`
}

type gridWire struct {
	NumberRows                   int           `json:"number_rows"`
	NumberColumns                int           `json:"number_columns"`
	RowDistance                  float64       `json:"row_distance"`
	Cutoff                       float64       `json:"cutoff"`
	CurrentLayout                int           `json:"current_layout"`
	ControlledZPhaseRelation     string        `json:"controlled_z_phase_relation"`
	ControlledPhasePhaseRelation string        `json:"controlled_phase_phase_relation"`
	AllowCCZ                     bool          `json:"allow_ccz_gate"`
	AllowCCP                     bool          `json:"allow_ccp_gate"`
	Qubits                       []qubitEntry  `json:"qubit_positions"`
	Layouts                      []layoutEntry `json:"layout_register"`
}

func (d *Device) wire() gridWire {
	w := gridWire{
		NumberRows:                   d.numberRows,
		NumberColumns:                d.numberColumns,
		RowDistance:                  d.rowDistance,
		Cutoff:                       d.cutoff,
		CurrentLayout:                d.currentLayout,
		ControlledZPhaseRelation:     d.czRelation,
		ControlledPhasePhaseRelation: d.cpRelation,
		AllowCCZ:                     d.allowCCZ,
		AllowCCP:                     d.allowCCP,
	}
	for qubit, pos := range d.qubitPositions {
		w.Qubits = append(w.Qubits, qubitEntry{Qubit: qubit, Row: pos.Row, Column: pos.Column})
	}
	sort.Slice(w.Qubits, func(i, j int) bool { return w.Qubits[i].Qubit < w.Qubits[j].Qubit })
	for index, layout := range d.layouts {
		w.Layouts = append(w.Layouts, layoutEntry{Index: index, Rows: copyLayout(layout)})
	}
	sort.Slice(w.Layouts, func(i, j int) bool { return w.Layouts[i].Index < w.Layouts[j].Index })

	return w
}

func (d *Device) fromWire(w gridWire) error {
	restored := &Device{
		numberRows:     w.NumberRows,
		numberColumns:  w.NumberColumns,
		rowDistance:    w.RowDistance,
		qubitPositions: make(map[int]Position, len(w.Qubits)),
		layouts:        make(map[int][][]float64, len(w.Layouts)),
		currentLayout:  w.CurrentLayout,
		cutoff:         w.Cutoff,
		czRelation:     w.ControlledZPhaseRelation,
		cpRelation:     w.ControlledPhasePhaseRelation,
		allowCCZ:       w.AllowCCZ,
		allowCCP:       w.AllowCCP,
	}

	for _, entry := range w.Layouts {
		if _, dup := restored.layouts[entry.Index]; dup {
			return fmt.Errorf("%w: layout %d listed twice", codec.ErrMalformed, entry.Index)
		}
		if len(entry.Rows) != w.NumberRows {
			return fmt.Errorf("%w: layout %d has %d rows, want %d", codec.ErrMalformed, entry.Index, len(entry.Rows), w.NumberRows)
		}
		for row := range entry.Rows {
			if len(entry.Rows[row]) != w.NumberColumns {
				return fmt.Errorf("%w: layout %d row %d has %d columns, want %d",
					codec.ErrMalformed, entry.Index, row, len(entry.Rows[row]), w.NumberColumns)
			}
		}
		restored.layouts[entry.Index] = copyLayout(entry.Rows)
	}
	if _, ok := restored.layouts[w.CurrentLayout]; !ok {
		return fmt.Errorf("%w: current layout %d not in register", codec.ErrMalformed, w.CurrentLayout)
	}

	// Qubit indices must form the contiguous range the constructor assigns.
	for _, entry := range w.Qubits {
		if entry.Qubit < 0 || entry.Qubit >= len(w.Qubits) {
			return fmt.Errorf("%w: qubit index %d outside 0..%d", codec.ErrMalformed, entry.Qubit, len(w.Qubits)-1)
		}
		if _, dup := restored.qubitPositions[entry.Qubit]; dup {
			return fmt.Errorf("%w: qubit %d listed twice", codec.ErrMalformed, entry.Qubit)
		}
		if entry.Row < 0 || entry.Row >= w.NumberRows || entry.Column < 0 || entry.Column >= w.NumberColumns {
			return fmt.Errorf("%w: qubit %d at (%d,%d) outside the grid", codec.ErrMalformed, entry.Qubit, entry.Row, entry.Column)
		}
		restored.qubitPositions[entry.Qubit] = Position{Row: entry.Row, Column: entry.Column}
	}

	*d = *restored

	return nil
}

// MarshalBinary encodes the device into the gob envelope tagged "grid".
func (d *Device) MarshalBinary() ([]byte, error) {
	return codec.EncodeBinaryKind(gridKind, d.wire())
}

// UnmarshalBinary decodes a gob envelope produced by MarshalBinary.
func (d *Device) UnmarshalBinary(data []byte) error {
	var w gridWire
	if err := codec.DecodeBinaryKind(data, gridKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}

// MarshalJSON encodes the device into the JSON envelope tagged "grid".
func (d *Device) MarshalJSON() ([]byte, error) {
	return codec.EncodeJSONKind(gridKind, d.wire())
}

// UnmarshalJSON decodes a JSON envelope produced by MarshalJSON.
func (d *Device) UnmarshalJSON(data []byte) error {
	var w gridWire
	if err := codec.DecodeJSONKind(data, gridKind, &w); err != nil {
		return err
	}

	return d.fromWire(w)
}
