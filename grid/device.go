// File: grid/device.go
// Role: device state, construction, and the in-place mutators.

package grid

import (
	"fmt"

	"github.com/katalvlaran/qryddev/pragma"
	"github.com/katalvlaran/qryddev/qrydion"
)

// Device is a rectangular tweezer grid with a fixed per-row qubit occupation.
// Qubit indices run 0..NumberQubits()-1 and are assigned at construction;
// layouts move positions, never qubits in or out.
type Device struct {
	numberRows    int
	numberColumns int
	rowDistance   float64

	qubitPositions map[int]Position
	layouts        map[int][][]float64
	currentLayout  int
	cutoff         float64

	czRelation string
	cpRelation string
	allowCCZ   bool
	allowCCP   bool
}

// New constructs a grid device.
//
// qubitsPerRow fixes the occupied positions of each row: its length must
// equal numberRows and no entry may exceed numberColumns. initialLayout is a
// numberRows×numberColumns matrix of y-coordinates; it is registered as
// layout 0 and made current. Qubit indices fill positions row-major: row 0
// columns 0..qubitsPerRow[0]-1, then row 1, and so on.
func New(numberRows, numberColumns int, qubitsPerRow []int, rowDistance float64, initialLayout [][]float64, opts ...Option) (*Device, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	if len(qubitsPerRow) != numberRows {
		return nil, fmt.Errorf("%w: %d entries for %d rows", ErrRowMismatch, len(qubitsPerRow), numberRows)
	}
	for row, count := range qubitsPerRow {
		if count < 0 || count > numberColumns {
			return nil, fmt.Errorf("%w: row %d occupies %d of %d columns", ErrColumnOverflow, row, count, numberColumns)
		}
	}

	d := &Device{
		numberRows:     numberRows,
		numberColumns:  numberColumns,
		rowDistance:    rowDistance,
		qubitPositions: make(map[int]Position),
		layouts:        make(map[int][][]float64),
		currentLayout:  0,
		cutoff:         options.Cutoff,
		czRelation:     options.ControlledZPhaseRelation,
		cpRelation:     options.ControlledPhasePhaseRelation,
		allowCCZ:       options.AllowCCZ,
		allowCCP:       options.AllowCCP,
	}

	qubit := 0
	for row, count := range qubitsPerRow {
		for column := 0; column < count; column++ {
			d.qubitPositions[qubit] = Position{Row: row, Column: column}
			qubit++
		}
	}

	if err := d.AddLayout(0, initialLayout); err != nil {
		return nil, err
	}

	return d, nil
}

// NumberRows reports the fixed row count of the grid.
func (d *Device) NumberRows() int { return d.numberRows }

// NumberColumns reports the fixed column count of the grid.
func (d *Device) NumberColumns() int { return d.numberColumns }

// NumberQubits reports how many qubits occupy the grid.
func (d *Device) NumberQubits() int { return len(d.qubitPositions) }

// RowDistance reports the fixed physical distance between adjacent rows.
func (d *Device) RowDistance() float64 { return d.rowDistance }

// Cutoff reports the current two-qubit distance cutoff.
func (d *Device) Cutoff() float64 { return d.cutoff }

// CurrentLayout reports the index of the active layout.
func (d *Device) CurrentLayout() int { return d.currentLayout }

// QubitPositions returns an independent copy of the qubit→position map.
func (d *Device) QubitPositions() map[int]Position {
	positions := make(map[int]Position, len(d.qubitPositions))
	for qubit, pos := range d.qubitPositions {
		positions[qubit] = pos
	}

	return positions
}

// AddLayout registers layout under index. The matrix must be
// NumberRows×NumberColumns; a registered index cannot be reused.
func (d *Device) AddLayout(index int, layout [][]float64) error {
	if _, exists := d.layouts[index]; exists {
		return fmt.Errorf("%w: index %d", ErrLayoutExists, index)
	}
	if len(layout) != d.numberRows {
		return fmt.Errorf("%w: %d rows, want %d", ErrLayoutShape, len(layout), d.numberRows)
	}
	for row := range layout {
		if len(layout[row]) != d.numberColumns {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrLayoutShape, row, len(layout[row]), d.numberColumns)
		}
	}
	d.layouts[index] = copyLayout(layout)

	return nil
}

// SwitchLayout makes the registered layout at index the current one.
func (d *Device) SwitchLayout(index int) error {
	if _, ok := d.layouts[index]; !ok {
		return fmt.Errorf("%w: index %d", ErrLayoutUnknown, index)
	}
	d.currentLayout = index

	return nil
}

// ChangeQubitPositions reassigns qubits to grid positions.
//
// The map must cover the device's qubits exactly, every position must lie
// inside the grid, no two qubits may share a position, and each row's
// occupancy count must stay unchanged. The device is only mutated when every
// check passes.
func (d *Device) ChangeQubitPositions(newPositions map[int]Position) error {
	for qubit := range d.qubitPositions {
		if _, ok := newPositions[qubit]; !ok {
			return fmt.Errorf("%w: qubit %d missing", ErrPositionsMismatch, qubit)
		}
	}
	for qubit := range newPositions {
		if _, ok := d.qubitPositions[qubit]; !ok {
			return fmt.Errorf("%w: unknown qubit %d", ErrPositionsMismatch, qubit)
		}
	}

	occupied := make(map[Position]int, len(newPositions))
	newCounts := make([]int, d.numberRows)
	for qubit, pos := range newPositions {
		if pos.Row < 0 || pos.Row >= d.numberRows || pos.Column < 0 || pos.Column >= d.numberColumns {
			return fmt.Errorf("%w: qubit %d at (%d,%d)", ErrPositionBounds, qubit, pos.Row, pos.Column)
		}
		if other, taken := occupied[pos]; taken {
			return fmt.Errorf("%w: qubits %d and %d at (%d,%d)", ErrPositionCollision, other, qubit, pos.Row, pos.Column)
		}
		occupied[pos] = qubit
		newCounts[pos.Row]++
	}

	oldCounts := make([]int, d.numberRows)
	for _, pos := range d.qubitPositions {
		oldCounts[pos.Row]++
	}
	for row := range oldCounts {
		if oldCounts[row] != newCounts[row] {
			return fmt.Errorf("%w: row %d held %d qubits, new map holds %d", ErrRowOccupancy, row, oldCounts[row], newCounts[row])
		}
	}

	d.qubitPositions = make(map[int]Position, len(newPositions))
	for qubit, pos := range newPositions {
		d.qubitPositions[qubit] = pos
	}

	return nil
}

// SetCutoff replaces the two-qubit distance cutoff. The new value applies to
// all subsequent queries immediately; no history is kept.
func (d *Device) SetCutoff(cutoff float64) {
	d.cutoff = cutoff
}

// ChangeDevice applies an encoded mutation command.
// The grid variant accepts pragma.OpChangeLayout and
// pragma.OpShiftQubitPositions; any other name fails with
// qrydion.ErrUnsupportedOperation.
func (d *Device) ChangeDevice(name string, payload []byte) error {
	switch name {
	case pragma.OpChangeLayout:
		op, err := pragma.DecodeChangeLayout(payload)
		if err != nil {
			return fmt.Errorf("grid: %s: %w", name, err)
		}

		return d.SwitchLayout(op.NewLayout)
	case pragma.OpShiftQubitPositions:
		op, err := pragma.DecodeShiftQubitPositions(payload)
		if err != nil {
			return fmt.Errorf("grid: %s: %w", name, err)
		}
		newPositions := make(map[int]Position, len(op.Positions))
		for qubit, pos := range op.Positions {
			newPositions[qubit] = Position{Row: pos[0], Column: pos[1]}
		}

		return d.ChangeQubitPositions(newPositions)
	default:
		return fmt.Errorf("grid: %q: %w", name, qrydion.ErrUnsupportedOperation)
	}
}

// Clone returns a fully independent deep copy of the device.
func (d *Device) Clone() *Device {
	clone := &Device{
		numberRows:     d.numberRows,
		numberColumns:  d.numberColumns,
		rowDistance:    d.rowDistance,
		qubitPositions: make(map[int]Position, len(d.qubitPositions)),
		layouts:        make(map[int][][]float64, len(d.layouts)),
		currentLayout:  d.currentLayout,
		cutoff:         d.cutoff,
		czRelation:     d.czRelation,
		cpRelation:     d.cpRelation,
		allowCCZ:       d.allowCCZ,
		allowCCP:       d.allowCCP,
	}
	for qubit, pos := range d.qubitPositions {
		clone.qubitPositions[qubit] = pos
	}
	for index, layout := range d.layouts {
		clone.layouts[index] = copyLayout(layout)
	}

	return clone
}

// copyLayout deep-copies a layout matrix.
func copyLayout(layout [][]float64) [][]float64 {
	out := make([][]float64, len(layout))
	for row := range layout {
		out[row] = make([]float64, len(layout[row]))
		copy(out[row], layout[row])
	}

	return out
}
