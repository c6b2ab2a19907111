package server

import (
	"time"

	"github.com/gorilla/websocket"

	"advdiff/model"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 256
)

// client is the middleman between one websocket connection and the hub.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan model.Msg
}

func newClient(hub *Hub, conn *websocket.Conn) *client {
	return &client{hub: hub, conn: conn, send: make(chan model.Msg, sendBuffer)}
}

// readPump forwards requests to the hub until the connection fails.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.closed:
		}
		c.conn.Close()
	}()
	for {
		var msg model.Msg
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.WithError(err).Warn("read message")
			}
			return
		}
		select {
		case c.hub.requests <- request{c: c, msg: msg}:
		case <-c.hub.closed:
			return
		}
	}
}

// writePump writes hub messages to the connection in order.
func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			c.hub.logger.WithError(err).Warn("set write deadline")
			return
		}
		if err := c.conn.WriteJSON(&msg); err != nil {
			c.hub.logger.WithError(err).Warn("write message")
			return
		}
	}
	if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
		c.hub.logger.WithError(err).Debug("write close message")
	}
}
