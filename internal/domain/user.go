package domain

import "time"

type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	Level         int       `json:"level"`
	LevelProgress int       `json:"level_progress"`
	GameTokens    int64     `json:"game_tokens"`
	TradeTokens   float64   `json:"trade_tokens"`
	ProfileImage  string    `json:"profile_image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
