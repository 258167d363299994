package domain

import "time"

// Titles of the achievements the updater can unlock.
const (
	AchievementFirstTrade = "First Trade"
	AchievementMiningPro  = "Mining Pro"
)

type Achievement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// UserAchievement - запись о разблокировке. Существование записи =
// достижение открыто; повторная разблокировка невозможна.
type UserAchievement struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	AchievementID int64     `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// AchievementStatus - достижение со статусом для конкретного пользователя
type AchievementStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
