// Package phaserel resolves the phase relations used by phase-shifted
// controlled gates on QRyd hardware.
//
// A phase relation maps an input angle θ to the controlled phase φ the
// hardware actually applies. Relations are carried by devices as strings and
// resolved on demand:
//
//   - a numeric literal ("2.13") resolves to that constant for every θ;
//   - the named relation "DefaultRelation" applies the calibrated linear
//     rule φ(θ) = PhiCZ · (θ mod 2π) / π, anchored at φ(π) = PhiCZ;
//   - anything else fails with ErrUnknownRelation.
//
// Resolution is pure: repeated calls with the same inputs return
// bit-identical results, and nothing is cached or mutated.
//
// Errors:
//
//	ErrUnknownRelation - the relation string is neither a literal nor a
//	                     known relation name.
//
// Complexity: O(1) per call.
package phaserel
