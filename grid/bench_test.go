package grid_test

import (
	"testing"

	"github.com/katalvlaran/qryddev/grid"
	"github.com/katalvlaran/qryddev/qrydion"
)

// fullGrid builds a fully occupied rows×cols device with unit spacing.
func fullGrid(b *testing.B, rows, cols int) *grid.Device {
	b.Helper()
	perRow := make([]int, rows)
	layout := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		perRow[r] = cols
		layout[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			layout[r][c] = float64(c)
		}
	}
	d, err := grid.New(rows, cols, perRow, 1.0, layout)
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	return d
}

func BenchmarkTwoQubitEdges(b *testing.B) {
	d := fullGrid(b, 6, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.TwoQubitEdges()
	}
}

func BenchmarkTwoQubitGateTime(b *testing.B) {
	d := fullGrid(b, 6, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, 0, 1)
	}
}

func BenchmarkGeneric(b *testing.B) {
	d := fullGrid(b, 6, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Generic(); err != nil {
			b.Fatalf("Generic: %v", err)
		}
	}
}

func BenchmarkMarshalBinary(b *testing.B) {
	d := fullGrid(b, 6, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.MarshalBinary(); err != nil {
			b.Fatalf("MarshalBinary: %v", err)
		}
	}
}
