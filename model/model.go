package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every parameter or mesh validation failure.
var ErrInvalidInput = errors.New("invalid input")

const (
	BoundaryNone      = "none"
	BoundaryDirichlet = "dirichlet"
)

// Parameters 一次计算的全部参数
type Parameters struct {
	NumberOfNodes int     `json:"number_of_nodes" yaml:"number_of_nodes"`
	StretchFactor float64 `json:"stretch_factor" yaml:"stretch_factor"`
	Viscosity     float64 `json:"viscosity" yaml:"viscosity"`
	Density       float64 `json:"density" yaml:"density"`
	CFL           float64 `json:"cfl" yaml:"cfl"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`

	// 初始条件
	InitialTemperature float64 `json:"initial_temperature" yaml:"initial_temperature"`
	Velocity           float64 `json:"velocity" yaml:"velocity"`

	// 0 means no cap.
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
	ReportEvery   int `json:"report_every" yaml:"report_every"`

	Boundary BoundaryParameters `json:"boundary" yaml:"boundary"`
}

// 边界条件
type BoundaryParameters struct {
	Type  string  `json:"type" yaml:"type"`
	Left  float64 `json:"left" yaml:"left"`
	Right float64 `json:"right" yaml:"right"`
}

func DefaultParameters() Parameters {
	return Parameters{
		NumberOfNodes: 11,
		StretchFactor: 1.0,
		Viscosity:     0.2,
		Density:       1.0,
		CFL:           0.95,
		Tolerance:     1.0e-4,
		ReportEvery:   1,
		Boundary: BoundaryParameters{
			Type: BoundaryNone,
		},
	}
}

func (p Parameters) Validate() error {
	switch {
	case p.NumberOfNodes < 2:
		return fmt.Errorf("%w: number of nodes %d, need at least 2", ErrInvalidInput, p.NumberOfNodes)
	case !(p.StretchFactor > 0) || math.IsInf(p.StretchFactor, 0):
		return fmt.Errorf("%w: stretch factor %v must be positive", ErrInvalidInput, p.StretchFactor)
	case !(p.Viscosity >= 0) || math.IsInf(p.Viscosity, 0):
		return fmt.Errorf("%w: viscosity %v must not be negative", ErrInvalidInput, p.Viscosity)
	case !(p.Density > 0) || math.IsInf(p.Density, 0):
		return fmt.Errorf("%w: density %v must be positive", ErrInvalidInput, p.Density)
	case !(p.CFL > 0) || math.IsInf(p.CFL, 0):
		return fmt.Errorf("%w: CFL %v must be positive", ErrInvalidInput, p.CFL)
	case !(p.Tolerance > 0) || math.IsInf(p.Tolerance, 0):
		return fmt.Errorf("%w: tolerance %v must be positive", ErrInvalidInput, p.Tolerance)
	case p.MaxIterations < 0:
		return fmt.Errorf("%w: max iterations %d must not be negative", ErrInvalidInput, p.MaxIterations)
	case p.ReportEvery < 0:
		return fmt.Errorf("%w: report interval %d must not be negative", ErrInvalidInput, p.ReportEvery)
	}
	switch p.Boundary.Type {
	case "", BoundaryNone, BoundaryDirichlet:
	default:
		return fmt.Errorf("%w: unknown boundary type %q", ErrInvalidInput, p.Boundary.Type)
	}
	return nil
}

// Frame 每个时间步推送给可视化/报告的数据
type Frame struct {
	Step        int       `json:"step"`
	Dt          float64   `json:"dt"`
	Residual    float64   `json:"residual"`
	Converged   bool      `json:"converged"`
	Coordinate  []float64 `json:"coordinate"`
	Temperature []float64 `json:"temperature"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgEnv     = "env"
	MsgEnvSet  = "envSet"
	MsgStart   = "start"
	MsgStarted = "started"
	MsgStop    = "stop"
	MsgStopped = "stopped"
	MsgFrame   = "frame"
	MsgDone    = "done"
	MsgError   = "error"
)
