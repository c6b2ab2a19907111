package calculator

import (
	"fmt"

	"advdiff/model"
)

func checkInterior(i, n int, lengths ...int) error {
	for _, l := range lengths {
		if l != n {
			return fmt.Errorf("%w: field lengths differ (%d and %d)", model.ErrInvalidInput, n, l)
		}
	}
	if i <= 0 || i >= n-1 {
		return fmt.Errorf("%w: node %d of %d", ErrBoundaryNode, i, n)
	}
	return nil
}

// Diffusion1D returns the explicit diffusive change of field at interior
// node i over one step dt, from a central second difference on a
// non-uniform mesh.
func Diffusion1D(field, coordinate, volume []float64, viscosity, dt float64, i int) (float64, error) {
	if err := checkInterior(i, len(field), len(coordinate), len(volume)); err != nil {
		return 0, err
	}
	dxLeft := coordinate[i] - coordinate[i-1]
	dxRight := coordinate[i+1] - coordinate[i]
	if !(dxLeft > 0) || !(dxRight > 0) {
		return 0, fmt.Errorf("%w: degenerate spacing around node %d", model.ErrInvalidInput, i)
	}

	gradient := (field[i+1]-field[i])/dxRight - (field[i]-field[i-1])/dxLeft
	if viscosity == 0 || gradient == 0 {
		return 0, nil
	}
	return viscosity * dt / volume[i] * gradient, nil
}

// Advection1D returns the explicit advective change of field at interior
// node i over one step dt. Face velocities are the mean of the two nodes
// and face values are taken from the upwind node, so summing
// volume[i]*Advection1D over the interior telescopes to the two outermost
// face fluxes.
func Advection1D(field, velocity, volume []float64, density, dt float64, i int) (float64, error) {
	if err := checkInterior(i, len(field), len(velocity), len(volume)); err != nil {
		return 0, err
	}
	net := faceFlux(field, velocity, i) - faceFlux(field, velocity, i-1)
	if net == 0 {
		return 0, nil
	}
	return density * dt / volume[i] * net, nil
}

// faceFlux 节点 i 与 i+1 之间界面上的对流通量
func faceFlux(field, velocity []float64, i int) float64 {
	u := 0.5 * (velocity[i] + velocity[i+1])
	if u >= 0 {
		return u * field[i]
	}
	return u * field[i+1]
}
