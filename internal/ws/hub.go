package ws

import (
	"encoding/json"
	"sync"

	"crypto_webapp/internal/domain"
	"crypto_webapp/internal/logger"
)

// UserSource resolves an authenticated user id to its current row for
// the initial snapshot push.
type UserSource interface {
	GetUser(id int64) (*domain.User, error)
}

// Hub maps authenticated user ids to their single open connection. It
// is injected into handlers and services; there is no package-level
// instance.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]*Client
	users   UserSource
}

func NewHub(users UserSource) *Hub {
	return &Hub{
		clients: make(map[int64]*Client),
		users:   users,
	}
}

// Register associates a client with its user id. A second connection
// for the same user replaces the first; the old one is closed.
func (h *Hub) Register(c *Client) {
	userID := c.UserID()

	h.mu.Lock()
	old := h.clients[userID]
	h.clients[userID] = c
	h.mu.Unlock()

	if old != nil && old != c {
		old.Close()
	}
}

// Unregister removes the client's registry entry unless the entry was
// already replaced by a newer connection.
func (h *Hub) Unregister(c *Client) {
	userID := c.UserID()

	h.mu.Lock()
	if cur, ok := h.clients[userID]; ok && cur == c {
		delete(h.clients, userID)
	}
	h.mu.Unlock()
}

// SendToUser pushes a payload to the user's connection if one is open.
// Fire-and-forget: the returned bool reports whether the payload was
// handed to a live connection, and false (no connection, or its send
// buffer is full) means the message is dropped, never queued or
// retried. A client that misses a push re-fetches over HTTP.
func (h *Hub) SendToUser(userID int64, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("ws: marshal push failed", "error", err, "user_id", userID)
		return false
	}

	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case c.Send <- data:
		return true
	default:
		logger.Warn("ws: send buffer full, dropping push", "user_id", userID)
		return false
	}
}

// Broadcast pushes a payload to every registered connection.
func (h *Hub) Broadcast(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("ws: marshal broadcast failed", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for userID, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			logger.Warn("ws: send buffer full, dropping broadcast", "user_id", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
