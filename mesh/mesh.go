// Package mesh builds the 1D control-volume mesh on the unit domain.
package mesh

import (
	"fmt"
	"math"

	"advdiff/model"
)

// ComputeInitialNodeSpacing returns the length of the first interval such
// that numberOfNodes-1 intervals, each stretchFactor times the previous one,
// span [0, 1] exactly.
func ComputeInitialNodeSpacing(numberOfNodes int, stretchFactor float64) (float64, error) {
	if err := validate(numberOfNodes, stretchFactor); err != nil {
		return 0, err
	}
	intervals := numberOfNodes - 1
	if stretchFactor == 1.0 {
		return 1.0 / float64(intervals), nil
	}
	// 等比数列首项: h0 * (1 - s^n) / (1 - s) = 1
	return (1.0 - stretchFactor) / (1.0 - math.Pow(stretchFactor, float64(intervals))), nil
}

// GenerateMesh1D builds a node table with geometrically stretched
// coordinates on [0, 1]. Boundary nodes get half of their single adjacent
// interval as volume, interior nodes half of both, so the volumes partition
// the domain.
func GenerateMesh1D(numberOfNodes int, stretchFactor float64) (*model.NodeTable, error) {
	h0, err := ComputeInitialNodeSpacing(numberOfNodes, stretchFactor)
	if err != nil {
		return nil, err
	}
	if !(h0 > 0) || math.IsInf(h0, 0) {
		return nil, fmt.Errorf("%w: stretch factor %v gives first interval %v", model.ErrInvalidInput, stretchFactor, h0)
	}

	last := numberOfNodes - 1
	table := model.NewNodeTable(numberOfNodes)

	h := h0
	for i := 1; i < last; i++ {
		table.Coordinate[i] = table.Coordinate[i-1] + h
		h *= stretchFactor
	}
	table.Coordinate[0] = 0.0
	table.Coordinate[last] = 1.0

	for i := 0; i < last; i++ {
		if !(table.Coordinate[i+1] > table.Coordinate[i]) {
			return nil, fmt.Errorf("%w: coincident nodes %d and %d at %v", model.ErrInvalidInput, i, i+1, table.Coordinate[i])
		}
	}

	table.IsBoundary[0] = true
	table.IsBoundary[last] = true

	for i := 0; i < last; i++ {
		half := 0.5 * (table.Coordinate[i+1] - table.Coordinate[i])
		table.Volume[i] += half
		table.Volume[i+1] += half
	}
	return table, nil
}

func validate(numberOfNodes int, stretchFactor float64) error {
	if numberOfNodes < 2 {
		return fmt.Errorf("%w: number of nodes %d, need at least 2", model.ErrInvalidInput, numberOfNodes)
	}
	if !(stretchFactor > 0) || math.IsInf(stretchFactor, 0) {
		return fmt.Errorf("%w: stretch factor %v must be positive", model.ErrInvalidInput, stretchFactor)
	}
	return nil
}
