package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
)

// LeaderboardEntry represents a user in the leaderboard
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	Level        int    `json:"level"`
	GameTokens   int64  `json:"game_tokens"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// GetLeaderboard returns the top users by game tokens.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	users := h.Store.ListUsers()
	sort.Slice(users, func(i, j int) bool {
		if users[i].GameTokens != users[j].GameTokens {
			return users[i].GameTokens > users[j].GameTokens
		}
		return users[i].ID < users[j].ID
	})
	if len(users) > limit {
		users = users[:limit]
	}

	res := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		res = append(res, LeaderboardEntry{
			Rank:         i + 1,
			UserID:       u.ID,
			Username:     u.Username,
			Level:        u.Level,
			GameTokens:   u.GameTokens,
			ProfileImage: u.ProfileImage,
		})
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": res})
}
