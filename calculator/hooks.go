package calculator

import "advdiff/model"

// InitialCondition fills the N level of a freshly generated table.
type InitialCondition interface {
	Apply(table *model.NodeTable)
}

// BoundaryCondition overwrites TemperatureNP1 at the boundary nodes after
// the interior update and before the convergence test.
type BoundaryCondition interface {
	Apply(table *model.NodeTable)
}

type InitialConditionFunc func(table *model.NodeTable)

func (f InitialConditionFunc) Apply(table *model.NodeTable) { f(table) }

type BoundaryConditionFunc func(table *model.NodeTable)

func (f BoundaryConditionFunc) Apply(table *model.NodeTable) { f(table) }

// Uniform sets every node to the same temperature and velocity.
type Uniform struct {
	Temperature float64
	Velocity    float64
}

func (u Uniform) Apply(table *model.NodeTable) {
	for i := range table.TemperatureN {
		table.TemperatureN[i] = u.Temperature
		table.TemperatureNP1[i] = u.Temperature
		table.VelocityN[i] = u.Velocity
		table.VelocityNP1[i] = u.Velocity
	}
}

// NoBoundary leaves the boundary nodes at their carried-over values.
type NoBoundary struct{}

func (NoBoundary) Apply(*model.NodeTable) {}

// Dirichlet pins both boundary temperatures.
type Dirichlet struct {
	Left  float64
	Right float64
}

func (d Dirichlet) Apply(table *model.NodeTable) {
	last := table.Size() - 1
	table.TemperatureNP1[0] = d.Left
	table.TemperatureNP1[last] = d.Right
}

func boundaryFromParameters(p model.BoundaryParameters) BoundaryCondition {
	if p.Type == model.BoundaryDirichlet {
		return Dirichlet{Left: p.Left, Right: p.Right}
	}
	return NoBoundary{}
}
