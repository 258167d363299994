package domain

import "time"

// TradingBot is a simulated auto-trader. Performance is in basis
// points. All stats start at zero on creation regardless of input.
type TradingBot struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Enabled     bool      `json:"enabled"`
	Strategy    string    `json:"strategy"`
	Performance int64     `json:"performance"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	CreatedAt   time.Time `json:"created_at"`
}
