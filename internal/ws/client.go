package ws

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"crypto_webapp/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second

	sendBuffer = 64
)

// Client wraps one websocket connection. A fresh connection is
// unassociated and receives nothing; the first client message must be
// {"type":"auth","user_id":N}, after which the current user row is
// pushed once and further pushes become deliverable.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte

	// userID is 0 until authenticated. Written on the read pump,
	// read by the write pump for log fields, hence atomic.
	userID    atomic.Int64
	hub       *Hub
	closeOnce sync.Once
}

func NewClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
		hub:  hub,
	}
}

// UserID returns the authenticated user id, 0 if none yet.
func (c *Client) UserID() int64 {
	return c.userID.Load()
}

// Run starts the writer and blocks in the read loop until the
// connection drops.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
	})
}

func (c *Client) readPump() {
	defer func() {
		if c.UserID() != 0 {
			c.hub.Unregister(c)
		}
		c.Close()
	}()

	c.Conn.SetReadLimit(4096)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			logger.Debug("ws: read loop done", "user_id", c.UserID(), "error", err)
			return
		}
		c.handleMessage(raw)
	}
}

// handleMessage parses one client frame. Malformed JSON is logged and
// skipped; the connection stays open.
func (c *Client) handleMessage(raw []byte) {
	var msg AuthPayload
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Warn("ws: malformed client message", "error", err)
		return
	}

	switch msg.Type {
	case MsgAuth:
		c.authenticate(msg.UserID)
	default:
		logger.Debug("ws: ignoring client message", "type", msg.Type, "user_id", c.UserID())
	}
}

func (c *Client) authenticate(userID int64) {
	if userID <= 0 {
		c.enqueue(Error("invalid user id"))
		return
	}

	user, err := c.hub.users.GetUser(userID)
	if err != nil {
		c.enqueue(Error("unknown user"))
		return
	}

	// re-auth under a different id releases the old registry slot
	if old := c.UserID(); old != 0 && old != userID {
		c.hub.Unregister(c)
	}

	c.userID.Store(userID)
	c.hub.Register(c)
	c.enqueue(UserUpdate(user))
	logger.Info("ws: client authenticated", "user_id", userID)
}

func (c *Client) enqueue(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("ws: marshal failed", "error", err)
		return
	}
	select {
	case c.Send <- data:
	default:
		logger.Warn("ws: send buffer full", "user_id", c.UserID())
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("ws: write failed", "user_id", c.UserID(), "error", err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
