// File: phaserel/phaserel.go
package phaserel

import (
	"errors"
	"math"
	"strconv"
)

// DefaultRelation is the name of the calibrated linear phase relation.
// Devices constructed without an explicit relation use this one.
const DefaultRelation = "DefaultRelation"

// PhiCZ is the calibrated controlled-Z phase of the hardware: the value of
// the default relation at θ = π.
const PhiCZ = 2.13228

// ErrUnknownRelation indicates a relation string that is neither a numeric
// literal nor a known relation name.
var ErrUnknownRelation = errors.New("phaserel: unknown phase relation")

// PhiThetaRelation resolves relation at the angle theta.
//
// Resolution order:
//  1. relation parses as a float literal: that constant, independent of theta.
//  2. relation == DefaultRelation: PhiCZ · θ̂/π with θ̂ = theta reduced into
//     [0, 2π).
//  3. otherwise: ErrUnknownRelation.
//
// The function is pure and never panics.
func PhiThetaRelation(relation string, theta float64) (float64, error) {
	if value, err := strconv.ParseFloat(relation, 64); err == nil {
		return value, nil
	}
	if relation == DefaultRelation {
		reduced := math.Mod(theta, 2*math.Pi)
		if reduced < 0 {
			reduced += 2 * math.Pi
		}

		return PhiCZ * reduced / math.Pi, nil
	}

	return 0, ErrUnknownRelation
}

// Valid reports whether relation would resolve without error.
// Equivalent to calling PhiThetaRelation and discarding the value.
func Valid(relation string) bool {
	_, err := PhiThetaRelation(relation, math.Pi)

	return err == nil
}
