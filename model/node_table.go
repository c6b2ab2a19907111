package model

// NodeTable holds the mesh and the field values of a 1D run. Fields ending
// in N are the current time level, NP1 the next one.
type NodeTable struct {
	IsBoundary []bool
	Coordinate []float64
	Volume     []float64

	VelocityN    []float64
	PressureN    []float64
	TemperatureN []float64

	VelocityNP1    []float64
	PressureNP1    []float64
	TemperatureNP1 []float64

	// 梯度，目前未使用
	VelocityGradient    []float64
	PressureGradient    []float64
	TemperatureGradient []float64
}

// NewNodeTable allocates a zeroed table for n nodes.
func NewNodeTable(n int) *NodeTable {
	return &NodeTable{
		IsBoundary: make([]bool, n),
		Coordinate: make([]float64, n),
		Volume:     make([]float64, n),

		VelocityN:    make([]float64, n),
		PressureN:    make([]float64, n),
		TemperatureN: make([]float64, n),

		VelocityNP1:    make([]float64, n),
		PressureNP1:    make([]float64, n),
		TemperatureNP1: make([]float64, n),

		VelocityGradient:    make([]float64, n),
		PressureGradient:    make([]float64, n),
		TemperatureGradient: make([]float64, n),
	}
}

func (t *NodeTable) Size() int {
	return len(t.Coordinate)
}

// Swap advances the temperature time level without copying.
func (t *NodeTable) Swap() {
	t.TemperatureN, t.TemperatureNP1 = t.TemperatureNP1, t.TemperatureN
}
