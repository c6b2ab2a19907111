package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"advdiff/mesh"
	"advdiff/model"
)

// ErrUnstable is returned when the residual stops being a finite number.
var ErrUnstable = errors.New("solution diverged")

// Result 一次计算的结果
type Result struct {
	Steps     int
	Dt        float64
	Residual  float64
	Converged bool
	Elapsed   time.Duration
}

type Option func(c *Calculator)

func WithLogger(logger log.FieldLogger) Option {
	return func(c *Calculator) { c.logger = logger }
}

func WithInitialCondition(ic InitialCondition) Option {
	return func(c *Calculator) { c.initial = ic }
}

func WithBoundaryCondition(bc BoundaryCondition) Option {
	return func(c *Calculator) { c.boundary = bc }
}

func WithListener(l Listener) Option {
	return func(c *Calculator) { c.listeners = append(c.listeners, l) }
}

// Calculator owns the node table of one run and marches it in time.
type Calculator struct {
	params model.Parameters
	table  *model.NodeTable

	initial   InitialCondition
	boundary  BoundaryCondition
	listeners []Listener
	logger    log.FieldLogger

	step int
}

func NewCalculator(params model.Parameters, opts ...Option) (*Calculator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c := &Calculator{
		params:   params,
		initial:  Uniform{Temperature: params.InitialTemperature, Velocity: params.Velocity},
		boundary: boundaryFromParameters(params.Boundary),
		logger:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	table, err := mesh.GenerateMesh1D(params.NumberOfNodes, params.StretchFactor)
	if err != nil {
		return nil, err
	}
	c.table = table
	c.initial.Apply(c.table)
	c.listeners = append([]Listener{newLogReporter(c.logger, params.ReportEvery)}, c.listeners...)

	c.logger.WithFields(log.Fields{
		"nodes":     params.NumberOfNodes,
		"stretch":   params.StretchFactor,
		"viscosity": params.Viscosity,
		"density":   params.Density,
		"cfl":       params.CFL,
		"tolerance": params.Tolerance,
		"boundary":  fmt.Sprintf("%T", c.boundary),
	}).Info("mesh generated")
	return c, nil
}

func (c *Calculator) Table() *model.NodeTable {
	return c.table
}

func (c *Calculator) Parameters() model.Parameters {
	return c.params
}

// Step computes time level N+1 from level N, applies the boundary hook,
// tests convergence and then swaps the two levels.
func (c *Calculator) Step() (model.Frame, error) {
	t := c.table
	dt, err := Stability(t.Coordinate, t.VelocityN, c.params.Viscosity, c.params.CFL)
	if err != nil {
		return model.Frame{}, err
	}

	last := t.Size() - 1
	t.TemperatureNP1[0] = t.TemperatureN[0]
	t.TemperatureNP1[last] = t.TemperatureN[last]
	for i := 1; i < last; i++ {
		d, err := Diffusion1D(t.TemperatureN, t.Coordinate, t.Volume, c.params.Viscosity, dt, i)
		if err != nil {
			return model.Frame{}, err
		}
		a, err := Advection1D(t.TemperatureN, t.VelocityN, t.Volume, c.params.Density, dt, i)
		if err != nil {
			return model.Frame{}, err
		}
		t.TemperatureNP1[i] = t.TemperatureN[i] + d - a
	}
	c.boundary.Apply(t)

	converged, residual := IsConverged(t.TemperatureN, t.TemperatureNP1, c.params.Tolerance)
	c.step++
	if math.IsNaN(residual) || math.IsInf(residual, 0) {
		return model.Frame{}, fmt.Errorf("%w at step %d (dt = %v)", ErrUnstable, c.step, dt)
	}

	frame := model.Frame{
		Step:        c.step,
		Dt:          dt,
		Residual:    residual,
		Converged:   converged,
		Coordinate:  t.Coordinate,
		Temperature: append([]float64(nil), t.TemperatureNP1...),
	}
	for _, l := range c.listeners {
		l.OnFrame(frame)
	}

	t.Swap()
	return frame, nil
}

// Run steps until the convergence test passes. Without MaxIterations the
// loop only ends on convergence, an error or ctx.
func (c *Calculator) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result
LOOP:
	for {
		select {
		case <-ctx.Done():
			res.Elapsed = time.Since(start)
			return res, ctx.Err()
		default:
			if c.params.MaxIterations > 0 && res.Steps >= c.params.MaxIterations {
				break LOOP
			}
			frame, err := c.Step()
			if err != nil {
				res.Elapsed = time.Since(start)
				return res, err
			}
			res.Steps++
			res.Dt = frame.Dt
			res.Residual = frame.Residual
			if frame.Converged {
				res.Converged = true
				break LOOP
			}
		}
	}
	res.Elapsed = time.Since(start)

	entry := c.logger.WithFields(log.Fields{
		"steps":    res.Steps,
		"residual": res.Residual,
		"elapsed":  res.Elapsed,
	})
	if !res.Converged {
		entry.Warn("simulation stopped before converging")
		return res, fmt.Errorf("%w after %d steps (residual %v)", ErrNotConverged, res.Steps, res.Residual)
	}
	entry.Info("simulation completed")
	return res, nil
}
