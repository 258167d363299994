package handlers

import (
	"net/http"

	"crypto_webapp/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetAchievements returns the catalog with per-user unlock state.
func (h *Handler) GetAchievements(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	unlocks := make(map[int64]*domain.UserAchievement)
	for _, ua := range h.Store.ListUserAchievements(userID) {
		unlocks[ua.AchievementID] = ua
	}

	catalog := h.Store.ListAchievements()
	res := make([]domain.AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		status := domain.AchievementStatus{Achievement: *a}
		if ua, found := unlocks[a.ID]; found {
			status.Unlocked = true
			t := ua.UnlockedAt
			status.UnlockedAt = &t
		}
		res = append(res, status)
	}

	c.JSON(http.StatusOK, gin.H{"achievements": res})
}

// GetChallenges returns the user's challenge progress with catalog
// details.
func (h *Handler) GetChallenges(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	ucs := h.Store.ListUserChallenges(userID)
	res := make([]domain.ChallengeProgress, 0, len(ucs))
	for _, uc := range ucs {
		ch, err := h.Store.GetChallenge(uc.ChallengeID)
		if err != nil {
			continue
		}
		res = append(res, domain.ChallengeProgress{
			Challenge:   *ch,
			Progress:    uc.Progress,
			MaxProgress: uc.MaxProgress,
			Completed:   uc.Completed,
		})
	}

	c.JSON(http.StatusOK, gin.H{"challenges": res})
}
