package handlers

import (
	"net/http"
	"strconv"

	"crypto_webapp/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetAuditLog returns the caller's audit trail, newest first. With no
// database configured the trail is empty.
func (h *Handler) GetAuditLog(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	logs, err := h.Audit.GetUserAuditLogs(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read audit log"})
		return
	}
	if logs == nil {
		logs = []*domain.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "enabled": h.Audit.Enabled()})
}
