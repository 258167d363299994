package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCryptos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cryptos": h.Store.ListCryptos()})
}

func (h *Handler) GetCrypto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	crypto, err := h.Store.GetCrypto(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "crypto not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"crypto": crypto})
}
