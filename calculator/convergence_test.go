package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConverged(t *testing.T) {
	fieldN := []float64{1, 2, 3, 4}
	fieldNP1 := []float64{1, 2.5, 2.9, 4}

	converged, residual := IsConverged(fieldN, fieldNP1, 1e-3)
	assert.False(t, converged)
	assert.InDelta(t, 0.5, residual, 1e-15)

	converged, residual = IsConverged(fieldN, fieldNP1, 0.6)
	assert.True(t, converged)
	assert.InDelta(t, 0.5, residual, 1e-15)
}

func TestIsConverged_StrictComparison(t *testing.T) {
	converged, residual := IsConverged([]float64{0, 0}, []float64{0, 0.25}, 0.25)
	assert.False(t, converged)
	assert.Equal(t, 0.25, residual)
}

func TestIsConverged_Idempotent(t *testing.T) {
	fieldN := []float64{0.1, 0.2, 0.3}
	fieldNP1 := []float64{0.1, 0.2001, 0.3}
	c1, r1 := IsConverged(fieldN, fieldNP1, 1e-3)
	c2, r2 := IsConverged(fieldN, fieldNP1, 1e-3)
	assert.Equal(t, c1, c2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, []float64{0.1, 0.2001, 0.3}, fieldNP1)
}

func TestIsConverged_IdenticalFields(t *testing.T) {
	field := []float64{5, 5, 5}
	converged, residual := IsConverged(field, field, 1e-12)
	assert.True(t, converged)
	assert.Equal(t, 0.0, residual)
}

func TestIsConverged_NaN(t *testing.T) {
	converged, residual := IsConverged([]float64{0, 0, 0}, []float64{0, math.NaN(), 0}, 1)
	assert.False(t, converged)
	assert.True(t, math.IsNaN(residual))
}
