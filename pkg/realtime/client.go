package realtime

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is one WebSocket connection watching one tasting.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	tastingID uint
	send      chan Event
	logger    *zap.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, tastingID uint, logger *zap.Logger) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		tastingID: tastingID,
		send:      make(chan Event, 16),
		logger:    logger,
	}
}

// Serve registers the client and runs its pumps until the connection dies.
func (c *Client) Serve() {
	c.hub.Register(c)

	go c.writePump()
	c.readPump()
}

// readPump discards inbound frames; the live endpoint is one-way. Its real
// job is servicing pongs so dead connections get reaped.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info("websocket closed unexpectedly", zap.Error(err))
			}

			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, open := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !open {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				c.logger.Info("error writing event", zap.Error(err))

				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
