// File: phaserel/example_test.go
package phaserel_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qryddev/phaserel"
)

// ExamplePhiThetaRelation resolves the calibrated default relation at θ = π
// and a literal relation that ignores θ entirely.
func ExamplePhiThetaRelation() {
	phi, _ := phaserel.PhiThetaRelation(phaserel.DefaultRelation, math.Pi)
	fmt.Printf("default at pi: %.5f\n", phi)

	literal, _ := phaserel.PhiThetaRelation("2.15", 0.123)
	fmt.Printf("literal:       %.2f\n", literal)

	// Output:
	// default at pi: 2.13228
	// literal:       2.15
}
