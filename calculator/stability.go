package calculator

import (
	"fmt"
	"math"

	"advdiff/model"
)

// Stability 计算稳定的时间步长
//
// Each pair of neighbouring nodes gives a diffusive bound dx²/(2ν) and a
// convective bound dx/|u|, with |u| the larger speed of the pair. A zero
// viscosity or a zero speed leaves that bound unbounded. The diffusive
// bound is scaled by cfl, the convective one by min(cfl, 1) since the
// Courant number may not exceed one. The smallest scaled bound over the
// mesh is returned, +Inf when nothing bounds the step.
func Stability(coordinate, velocity []float64, viscosity, cfl float64) (float64, error) {
	n := len(coordinate)
	if n < 2 {
		return 0, fmt.Errorf("%w: stability needs at least 2 nodes, got %d", model.ErrInvalidInput, n)
	}
	if len(velocity) != n {
		return 0, fmt.Errorf("%w: %d coordinates but %d velocities", model.ErrInvalidInput, n, len(velocity))
	}
	if !(cfl > 0) || math.IsInf(cfl, 0) {
		return 0, fmt.Errorf("%w: CFL %v must be positive", model.ErrInvalidInput, cfl)
	}
	if !(viscosity >= 0) || math.IsInf(viscosity, 0) {
		return 0, fmt.Errorf("%w: viscosity %v must not be negative", model.ErrInvalidInput, viscosity)
	}

	courant := math.Min(cfl, 1.0)
	min := math.Inf(1)
	for i := 0; i < n-1; i++ {
		dx := coordinate[i+1] - coordinate[i]
		if !(dx > 0) {
			return 0, fmt.Errorf("%w: nodes %d and %d are not increasing (dx = %v)", model.ErrInvalidInput, i, i+1, dx)
		}
		if viscosity > 0 {
			if t := cfl * dx * dx / (2 * viscosity); t < min {
				min = t
			}
		}
		if u := math.Max(math.Abs(velocity[i]), math.Abs(velocity[i+1])); u > 0 {
			if t := courant * dx / u; t < min {
				min = t
			}
		}
	}
	return min, nil
}
