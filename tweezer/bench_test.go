package tweezer_test

import (
	"testing"

	"github.com/katalvlaran/qryddev/qrydion"
	"github.com/katalvlaran/qryddev/tweezer"
)

// fullChain builds a device with n tweezers in a line: single-qubit entries
// everywhere, PhaseShiftedControlledZ between neighbours, and the identity
// qubit map.
func fullChain(b *testing.B, n int) *tweezer.Device {
	b.Helper()
	d := tweezer.New()
	for tw := 0; tw < n; tw++ {
		if err := d.SetTweezerSingleQubitGateTime(qrydion.GateRotateX, tw, 1e-6, ""); err != nil {
			b.Fatalf("SetTweezerSingleQubitGateTime: %v", err)
		}
	}
	for tw := 0; tw+1 < n; tw++ {
		if err := d.SetTweezerTwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, tw, tw+1, 2e-6, ""); err != nil {
			b.Fatalf("SetTweezerTwoQubitGateTime: %v", err)
		}
	}
	for qubit := 0; qubit < n; qubit++ {
		if err := d.AddQubitTweezerMapping(qubit, qubit); err != nil {
			b.Fatalf("AddQubitTweezerMapping: %v", err)
		}
	}

	return d
}

func BenchmarkTwoQubitEdges(b *testing.B) {
	d := fullChain(b, 36)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.TwoQubitEdges()
	}
}

func BenchmarkTwoQubitGateTime(b *testing.B) {
	d := fullChain(b, 36)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.TwoQubitGateTime(qrydion.GatePhaseShiftedControlledZ, 0, 1)
	}
}

func BenchmarkGeneric(b *testing.B) {
	d := fullChain(b, 36)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Generic(); err != nil {
			b.Fatalf("Generic: %v", err)
		}
	}
}

func BenchmarkMarshalBinary(b *testing.B) {
	d := fullChain(b, 36)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.MarshalBinary(); err != nil {
			b.Fatalf("MarshalBinary: %v", err)
		}
	}
}
