package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"advdiff/calculator"
	"advdiff/deque"
	"advdiff/model"
)

type request struct {
	c   *client
	msg model.Msg
}

// Summary is the content of the done message.
type Summary struct {
	Steps     int     `json:"steps"`
	Residual  float64 `json:"residual"`
	Converged bool    `json:"converged"`
	Error     string  `json:"error,omitempty"`
}

// event is either a frame of the active run or, when last is set, its end.
type event struct {
	frame model.Frame
	last  bool
	res   calculator.Result
	err   error
}

// Hub maintains the set of active clients, owns the current run and
// broadcasts its frames to every client.
type Hub struct {
	params  model.Parameters
	history *deque.ArrDeque
	logger  log.FieldLogger

	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	requests   chan request
	events     chan event
	closed     chan struct{}

	cancel   context.CancelFunc // nil when no run is active
	sendWait time.Duration
}

func NewHub(params model.Parameters, historySize int, logger log.FieldLogger) *Hub {
	return &Hub{
		params:     params,
		history:    deque.NewArrDeque(historySize),
		logger:     logger,
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		requests:   make(chan request, 10),
		events:     make(chan event, 10),
		closed:     make(chan struct{}),
		sendWait:   writeWait,
	}
}

// Run serves the hub until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.closed)
		if h.cancel != nil {
			h.cancel()
		}
		for c := range h.clients {
			close(c.send)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = true
			h.replay(c)
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
		case r := <-h.requests:
			h.handleRequest(ctx, r)
		case e := <-h.events:
			if e.last {
				h.cancel = nil
				h.broadcast(h.doneMsg(e.res, e.err))
				continue
			}
			if h.history.IsFull() {
				h.history.RemoveFirst()
			}
			h.history.AddLast(e.frame)
			h.broadcast(h.frameMsg(e.frame))
		}
	}
}

func (h *Hub) handleRequest(ctx context.Context, r request) {
	switch r.msg.Type {
	case model.MsgEnv:
		params := h.params
		if err := json.Unmarshal([]byte(r.msg.Content), &params); err != nil {
			h.reply(r.c, model.Msg{Type: model.MsgError, Content: err.Error()})
			return
		}
		if err := params.Validate(); err != nil {
			h.reply(r.c, model.Msg{Type: model.MsgError, Content: err.Error()})
			return
		}
		h.params = params
		h.logger.WithField("params", params).Info("env is set")
		h.reply(r.c, model.Msg{Type: model.MsgEnvSet, Content: "env is set"})
	case model.MsgStart:
		if h.cancel != nil {
			h.reply(r.c, model.Msg{Type: model.MsgError, Content: "already running"})
			return
		}
		if err := h.start(ctx); err != nil {
			h.reply(r.c, model.Msg{Type: model.MsgError, Content: err.Error()})
			return
		}
		h.broadcast(model.Msg{Type: model.MsgStarted})
	case model.MsgStop:
		if h.cancel != nil {
			h.cancel()
		}
		h.reply(r.c, model.Msg{Type: model.MsgStopped, Content: "stopped"})
	default:
		h.logger.WithField("type", r.msg.Type).Warn("no such type")
		h.reply(r.c, model.Msg{Type: model.MsgError, Content: "no such type: " + r.msg.Type})
	}
}

func (h *Hub) start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	c, err := calculator.NewCalculator(h.params,
		calculator.WithLogger(h.logger),
		calculator.WithListener(calculator.ListenerFunc(func(f model.Frame) {
			select {
			case h.events <- event{frame: f}:
			case <-runCtx.Done():
			}
		})),
	)
	if err != nil {
		cancel()
		return err
	}

	for !h.history.IsEmpty() {
		h.history.RemoveFirst()
	}
	h.cancel = cancel
	go func() {
		res, err := c.Run(runCtx)
		cancel()
		select {
		case h.events <- event{last: true, res: res, err: err}:
		case <-ctx.Done():
		}
	}()
	return nil
}

func (h *Hub) replay(c *client) {
	h.history.Traverse(func(i int, item *model.Frame) {
		h.reply(c, h.frameMsg(*item))
	})
}

func (h *Hub) broadcast(msg model.Msg) {
	for c := range h.clients {
		h.reply(c, msg)
	}
}

// reply blocks up to sendWait on a client with a full buffer, which
// throttles the run to its slowest viewer, then drops that client.
func (h *Hub) reply(c *client, msg model.Msg) {
	if !h.clients[c] {
		return
	}
	select {
	case c.send <- msg:
		return
	default:
	}
	t := time.NewTimer(h.sendWait)
	defer t.Stop()
	select {
	case c.send <- msg:
	case <-t.C:
		h.logger.Warn("client too slow, dropping")
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) frameMsg(f model.Frame) model.Msg {
	// json cannot carry +Inf; an unbounded step goes out as 0
	if math.IsInf(f.Dt, 0) {
		f.Dt = 0
	}
	data, err := json.Marshal(f)
	if err != nil {
		h.logger.WithError(err).WithField("step", f.Step).Error("marshal frame")
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	return model.Msg{Type: model.MsgFrame, Content: string(data)}
}

func (h *Hub) doneMsg(res calculator.Result, err error) model.Msg {
	s := Summary{
		Steps:     res.Steps,
		Residual:  res.Residual,
		Converged: res.Converged,
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		s.Error = err.Error()
	}
	data, err := json.Marshal(s)
	if err != nil {
		h.logger.WithError(err).Error("marshal summary")
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	return model.Msg{Type: model.MsgDone, Content: string(data)}
}
