package calculator

import "errors"

var (
	// ErrBoundaryNode is returned when a flux operator is asked for a node
	// without two neighbours.
	ErrBoundaryNode = errors.New("flux requested at boundary node")

	// ErrNotConverged is returned by Run when MaxIterations is reached.
	ErrNotConverged = errors.New("did not converge")
)
