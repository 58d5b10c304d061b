// Package circuit defines the minimal circuit representation consumed by the
// validation backend of github.com/katalvlaran/qryddev.
//
// A Circuit is an ordered slice of Operations. Each Operation names either a
// gate from the hardware catalog (see package qrydion) or one of the
// measurement and pragma operations declared in this package, together with
// the qubit indices it acts on.
//
// The package carries no simulation semantics: it exists so that callers,
// the validation backend, and the web API client can exchange operation
// lists without agreeing on anything beyond names and qubit indices.
//
// Circuits are plain values. Copy them with append, share them read-only,
// and build them either from literals or incrementally with Add:
//
//	c := circuit.New(
//		circuit.Op("RotateX", 0),
//		circuit.Op("PhaseShiftedControlledZ", 0, 1),
//	)
//	c.Add(circuit.OpMeasureQubit, 0)
package circuit
