package handlers

import (
	"errors"
	"net/http"

	"crypto_webapp/internal/service"
	"crypto_webapp/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStation(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	station, err := h.Store.GetStationByUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"station": station})
}

func (h *Handler) CollectMining(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	res, err := h.Rewards.CollectMining(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect"})
		return
	}

	h.Audit.LogMiningCollect(c.Request.Context(), userID, res.TokensMined)

	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpgradeStation(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	station, err := h.Rewards.UpgradeStation(userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
		case errors.Is(err, service.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient funds"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade"})
		}
		return
	}

	h.Audit.LogMiningUpgrade(c.Request.Context(), userID, station.Level)

	c.JSON(http.StatusOK, gin.H{"success": true, "station": station})
}
