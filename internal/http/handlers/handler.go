package handlers

import (
	"net/http"
	"strconv"

	"crypto_webapp/internal/service"
	"crypto_webapp/internal/store"
	"crypto_webapp/internal/ws"

	"github.com/gin-gonic/gin"
)

// HandlerConfig holds configuration for handler
type HandlerConfig struct {
	MaxPostLength int
}

type Handler struct {
	Store    *store.Store
	Hub      *ws.Hub
	Accounts *service.Accounts
	Rewards  *service.Rewards
	Audit    *service.AuditService

	MaxPostLength int
}

func NewHandler(st *store.Store, hub *ws.Hub, audit *service.AuditService) *Handler {
	return NewHandlerWithConfig(st, hub, audit, HandlerConfig{MaxPostLength: 500})
}

// NewHandlerWithConfig creates a handler with custom configuration
func NewHandlerWithConfig(st *store.Store, hub *ws.Hub, audit *service.AuditService, cfg HandlerConfig) *Handler {
	return &Handler{
		Store:         st,
		Hub:           hub,
		Accounts:      service.NewAccounts(st),
		Rewards:       service.NewRewards(st, hub),
		Audit:         audit,
		MaxPostLength: cfg.MaxPostLength,
	}
}

// getUserID извлекает user_id из контекста Gin
func getUserID(c *gin.Context) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// parseID reads a positive int64 route param, answering 400 itself on
// a bad value.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
