package calculator

import (
	log "github.com/sirupsen/logrus"

	"advdiff/model"
)

// Listener receives every completed time step. Listeners must not block
// for long, the solver waits for them.
type Listener interface {
	OnFrame(frame model.Frame)
}

type ListenerFunc func(frame model.Frame)

func (f ListenerFunc) OnFrame(frame model.Frame) { f(frame) }

// logReporter 每 every 步打印一次时间步长和残差
type logReporter struct {
	logger log.FieldLogger
	every  int
}

func newLogReporter(logger log.FieldLogger, every int) *logReporter {
	return &logReporter{logger: logger, every: every}
}

func (r *logReporter) OnFrame(frame model.Frame) {
	if r.every <= 0 {
		return
	}
	if frame.Step%r.every != 0 && !frame.Converged {
		return
	}
	r.logger.WithFields(log.Fields{
		"step":     frame.Step,
		"dt":       frame.Dt,
		"residual": frame.Residual,
	}).Info("time step")
}
