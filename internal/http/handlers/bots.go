package handlers

import (
	"net/http"
	"strings"

	"crypto_webapp/internal/domain"

	"github.com/gin-gonic/gin"
)

type CreateBotRequest struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

// ListBots returns the bots owned by the user; the :id segment is the
// owner's user id here (the toggle route reuses it as a bot id).
func (h *Handler) ListBots(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"bots": h.Store.ListBotsByUser(userID)})
}

// CreateBot creates a disabled bot with zeroed stats; the store
// enforces the zeroing whatever the input claimed.
func (h *Handler) CreateBot(c *gin.Context) {
	var req CreateBotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	fields := gin.H{}
	if req.UserID <= 0 {
		fields["user_id"] = "required"
	}
	if req.Name == "" {
		fields["name"] = "required"
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	if _, err := h.Store.GetUser(req.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	bot := &domain.TradingBot{
		UserID:   req.UserID,
		Name:     req.Name,
		Strategy: req.Strategy,
	}
	h.Store.CreateBot(bot)

	c.JSON(http.StatusCreated, gin.H{"bot": bot})
}

func (h *Handler) ToggleBot(c *gin.Context) {
	botID, ok := parseID(c, "id")
	if !ok {
		return
	}

	bot, err := h.Store.UpdateBot(botID, func(b *domain.TradingBot) {
		b.Enabled = !b.Enabled
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bot not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bot": bot})
}
