package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParametersAreValid(t *testing.T) {
	require.NoError(t, DefaultParameters().Validate())
}

func TestParameters_Validate(t *testing.T) {
	cases := map[string]func(p *Parameters){
		"one node":           func(p *Parameters) { p.NumberOfNodes = 1 },
		"zero stretch":       func(p *Parameters) { p.StretchFactor = 0 },
		"nan stretch":        func(p *Parameters) { p.StretchFactor = math.NaN() },
		"negative viscosity": func(p *Parameters) { p.Viscosity = -0.1 },
		"zero density":       func(p *Parameters) { p.Density = 0 },
		"zero cfl":           func(p *Parameters) { p.CFL = 0 },
		"nan cfl":            func(p *Parameters) { p.CFL = math.NaN() },
		"infinite cfl":       func(p *Parameters) { p.CFL = math.Inf(1) },
		"infinite tolerance": func(p *Parameters) { p.Tolerance = math.Inf(1) },
		"negative tolerance": func(p *Parameters) { p.Tolerance = -1e-3 },
		"negative cap":       func(p *Parameters) { p.MaxIterations = -1 },
		"unknown boundary":   func(p *Parameters) { p.Boundary.Type = "periodic" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultParameters()
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidInput)
		})
	}
}

// CFL above one is accepted; the convective bound caps the Courant number.
func TestParameters_LargeCFLIsValid(t *testing.T) {
	p := DefaultParameters()
	p.CFL = 10
	assert.NoError(t, p.Validate())
}

func TestParameters_ZeroViscosityIsValid(t *testing.T) {
	p := DefaultParameters()
	p.Viscosity = 0
	p.Boundary.Type = ""
	assert.NoError(t, p.Validate())
}

func TestNodeTable_Swap(t *testing.T) {
	table := NewNodeTable(3)
	table.TemperatureN[1] = 1
	table.TemperatureNP1[1] = 2
	n, np1 := table.TemperatureN, table.TemperatureNP1

	table.Swap()
	assert.Equal(t, 2.0, table.TemperatureN[1])
	assert.Equal(t, 1.0, table.TemperatureNP1[1])
	assert.Same(t, &np1[0], &table.TemperatureN[0])
	assert.Same(t, &n[0], &table.TemperatureNP1[0])
	assert.Equal(t, 3, table.Size())
}
