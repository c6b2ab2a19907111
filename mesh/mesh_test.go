package mesh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advdiff/model"
)

const eps = 1e-8

func TestComputeInitialNodeSpacing_EquiSpaced(t *testing.T) {
	for _, n := range []int{2, 3, 11, 50} {
		h, err := ComputeInitialNodeSpacing(n, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 1.0/float64(n-1), h, "n=%d", n)
	}
	h, err := ComputeInitialNodeSpacing(11, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0/10.0, h)
}

func TestComputeInitialNodeSpacing_Stretched(t *testing.T) {
	h, err := ComputeInitialNodeSpacing(3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.0/3.0, h)

	h, err = ComputeInitialNodeSpacing(3, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 0.4, h)
}

func TestComputeInitialNodeSpacing_InvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		stretch float64
	}{
		{"one node", 1, 1.0},
		{"no nodes", 0, 1.0},
		{"zero stretch", 5, 0},
		{"negative stretch", 5, -1.2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ComputeInitialNodeSpacing(c.n, c.stretch)
			require.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestGenerateMesh1D_BoundaryFlags(t *testing.T) {
	n := rand.Intn(18) + 3
	table, err := GenerateMesh1D(n, 1.0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.Equal(t, i == 0 || i == n-1, table.IsBoundary[i], "node %d", i)
	}
}

func TestGenerateMesh1D_Volumes(t *testing.T) {
	cases := []struct {
		n       int
		stretch float64
		volume  []float64
	}{
		{3, 1.0, []float64{0.25, 0.5, 0.25}},
		{3, 1.5, []float64{0.2, 0.5, 0.3}},
		{5, 1.0, []float64{0.125, 0.25, 0.25, 0.25, 0.125}},
	}
	for _, c := range cases {
		table, err := GenerateMesh1D(c.n, c.stretch)
		require.NoError(t, err)
		require.Len(t, table.Volume, c.n)
		for i, v := range c.volume {
			assert.InDelta(t, v, table.Volume[i], eps, "n=%d s=%v node %d", c.n, c.stretch, i)
		}
	}
}

func TestGenerateMesh1D_Coordinates(t *testing.T) {
	cases := []struct {
		n          int
		stretch    float64
		coordinate []float64
	}{
		{3, 1.0, []float64{0.0, 0.5, 1.0}},
		{3, 1.5, []float64{0.0, 0.4, 1.0}},
		{5, 0.5, []float64{0.0, 0.53333333, 0.8, 0.93333333, 1.0}},
		{5, 1.0, []float64{0.0, 0.25, 0.5, 0.75, 1.0}},
	}
	for _, c := range cases {
		table, err := GenerateMesh1D(c.n, c.stretch)
		require.NoError(t, err)
		for i, x := range c.coordinate {
			assert.InDelta(t, x, table.Coordinate[i], 1e-7, "n=%d s=%v node %d", c.n, c.stretch, i)
		}
	}
}

func TestGenerateMesh1D_VolumesPartitionDomain(t *testing.T) {
	for _, stretch := range []float64{0.7, 1.0, 1.1, 2.0} {
		for _, n := range []int{2, 3, 8, 41} {
			table, err := GenerateMesh1D(n, stretch)
			require.NoError(t, err)

			sum := 0.0
			for i := 0; i < n; i++ {
				require.Greater(t, table.Volume[i], 0.0)
				if i > 0 {
					require.Greater(t, table.Coordinate[i], table.Coordinate[i-1])
				}
				sum += table.Volume[i]
			}
			assert.InDelta(t, table.Coordinate[n-1]-table.Coordinate[0], sum, 1e-12)
			assert.Equal(t, 0.0, table.Coordinate[0])
			assert.Equal(t, 1.0, table.Coordinate[n-1])
		}
	}
}

func TestGenerateMesh1D_InvalidInputReturnsNoTable(t *testing.T) {
	table, err := GenerateMesh1D(1, 1.0)
	require.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Nil(t, table)

	table, err = GenerateMesh1D(4, 0)
	require.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Nil(t, table)
}

func TestGenerateMesh1D_FieldsAllocated(t *testing.T) {
	table, err := GenerateMesh1D(7, 1.2)
	require.NoError(t, err)
	assert.Equal(t, 7, table.Size())
	assert.Len(t, table.TemperatureN, 7)
	assert.Len(t, table.TemperatureNP1, 7)
	assert.Len(t, table.VelocityN, 7)
	assert.Len(t, table.PressureNP1, 7)
	assert.Len(t, table.TemperatureGradient, 7)
}
