package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"advdiff/model"
)

const defaultHistory = 64

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	hub      *Hub
	logger   log.FieldLogger
}

func NewServer(addr string, upgrader websocket.Upgrader, params model.Parameters, logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		hub:      NewHub(params, defaultHistory, logger),
		logger:   logger,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("upgrade")
		return
	}
	c := newClient(s.hub, conn)
	select {
	case s.hub.register <- c:
	case <-s.hub.closed:
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// Serve runs the hub and the http listener until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	go s.hub.Run(ctx)

	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.WithField("addr", s.addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
