package handlers

import (
	"errors"
	"net/http"

	"crypto_webapp/internal/domain"
	"crypto_webapp/internal/service"
	"crypto_webapp/internal/store"

	"github.com/gin-gonic/gin"
)

type TradeRequest struct {
	UserID   int64  `json:"user_id"`
	CryptoID int64  `json:"crypto_id"`
	Action   string `json:"action"`
	Amount   int64  `json:"amount"`
}

func (h *Handler) Trade(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	fields := gin.H{}
	if req.UserID <= 0 {
		fields["user_id"] = "required"
	}
	if req.CryptoID <= 0 {
		fields["crypto_id"] = "required"
	}
	if req.Action != service.TradeActionBuy && req.Action != service.TradeActionSell {
		fields["action"] = "must be buy or sell"
	}
	if req.Amount <= 0 {
		fields["amount"] = "must be positive"
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	holding, err := h.Rewards.Trade(service.TradeInput{
		UserID:   req.UserID,
		CryptoID: req.CryptoID,
		Action:   req.Action,
		Amount:   req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user or crypto not found"})
		case errors.Is(err, service.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient funds"})
		case errors.Is(err, service.ErrUnknownTradeAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown trade action"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "trade failed"})
		}
		return
	}

	if crypto, err := h.Store.GetCrypto(req.CryptoID); err == nil {
		cost := service.TradeCost(req.Amount, crypto.CurrentPrice)
		h.Audit.LogTrade(c.Request.Context(), req.UserID, req.Action, req.CryptoID, req.Amount, cost)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "holding": holding})
}

// GetHoldings returns the user's holdings denormalized with catalog
// data. Zero-amount rows left over from full sells are included.
func (h *Handler) GetHoldings(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	holdings := h.Store.ListHoldingsByUser(userID)
	res := make([]domain.HoldingWithCrypto, 0, len(holdings))
	for _, hd := range holdings {
		crypto, err := h.Store.GetCrypto(hd.CryptoID)
		if err != nil {
			continue
		}
		res = append(res, domain.HoldingWithCrypto{Holding: *hd, Crypto: *crypto})
	}

	c.JSON(http.StatusOK, gin.H{"holdings": res})
}
