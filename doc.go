// Package qryddev is an in-memory description layer for QRyd neutral-atom
// quantum hardware: which qubits exist, which gates act on which of them,
// and how long each gate takes.
//
// 🚀 What is qryddev?
//
//	A device-model library plus the tooling that surrounds it:
//		• Capability queries: per-gate, per-operand availability & duration
//		• Prototype devices: rectangular grids with switchable row layouts
//		• Tweezer devices: named layouts, qubit↔tweezer maps, allowed shifts
//		• Emulator & cloud devices: allow-list and fixed-lattice variants
//		• Device mutation: pragma commands routed through ChangeDevice
//		• Validation: a backend that checks circuits against a device
//		• WebAPI client: submit, poll, fetch and cancel cloud jobs
//
// ✨ Why choose qryddev?
//
//   - Uniform surface – every variant satisfies the one qrydion.Device interface
//   - Deterministic – sorted edge lists, canonical snapshots, seedable devices
//   - Deep-copy safety – Clone and Generic exports never alias device state
//   - Configurable – one TOML settings file builds any variant
//
// Under the hood, everything is organized under focused subpackages:
//
//	qrydion/    — Device interface, gate catalog, GenericDevice exchange form
//	phaserel/   — phase relations for the phase-shifted controlled gates
//	grid/       — prototype rectangular-lattice device with row layouts
//	tweezer/    — tweezer-position device with named layouts and shifts
//	emulator/   — gate-name allow-list emulator device
//	apidevice/  — fixed 30-qubit square & triangular cloud devices
//	pragma/     — device-mutation commands and their wire encoding
//	codec/      — binary & text round-trips of device snapshots
//	circuit/    — minimal operation list consumed by the validation backend
//	simulator/  — pre-execution circuit validation against a device
//	api/        — HTTP client for the QRyd cloud job lifecycle
//	devcfg/     — TOML settings files that construct any device variant
//
// Quick ASCII example:
//
//	    0───1───2───3───4
//	    │   │   │   │   │
//	    5───6───7───8───9
//
//	two rows of a square-lattice device; shifting a row layout moves the
//	vertical edges in and out of two-qubit gate range.
//
// Dive into the per-package doc.go files for full usage examples and the
// exact error contracts.
//
//	go get github.com/katalvlaran/qryddev
package qryddev
