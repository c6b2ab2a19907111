package calculator

import "math"

// IsConverged compares two time levels. The residual is the largest
// absolute change over all nodes and is not normalised; the run is
// converged when it is below tolerance.
func IsConverged(fieldN, fieldNP1 []float64, tolerance float64) (bool, float64) {
	residual := 0.0
	n := len(fieldN)
	if len(fieldNP1) < n {
		n = len(fieldNP1)
	}
	for i := 0; i < n; i++ {
		if d := math.Abs(fieldNP1[i] - fieldN[i]); d > residual || math.IsNaN(d) {
			residual = d
		}
	}
	return residual < tolerance, residual
}
