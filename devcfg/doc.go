// Package devcfg loads device descriptions from TOML settings files and
// builds the described device.
//
// A settings file carries exactly one variant table. The table name selects
// the device kind, its keys the construction parameters:
//
//	[tweezer]
//	seed = 1
//	layouts = ["compact"]
//	default_layout = "compact"
//	allow_reset = true
//	qubit_map = [[0, 0], [1, 1]]
//
//	[[tweezer.single]]
//	gate = "RotateX"
//	tweezers = [0]
//	time = 1e-6
//	layout = "compact"
//
//	[[tweezer.two]]
//	gate = "PhaseShiftedControlledZ"
//	tweezers = [0, 1]
//	time = 2e-6
//	layout = "compact"
//
// Tweezer builds run in a fixed order: extra layouts are registered, gate
// entries fill the tables, the recorded default layout is switched to, then
// shift rows and the qubit map apply to that layout. The same [grid],
// [emulator], and [api_device] tables construct the other variants;
// [api_device] accepts the full backend identifier or the short forms
// "square" and "triangular".
//
// Errors:
//
//	ErrVariant - no variant table, or more than one.
//	ErrBackend - api_device backend is not a known identifier.
//	ErrShape   - a settings value has the wrong shape.
//
// Construction errors of the device packages pass through unchanged.
package devcfg
