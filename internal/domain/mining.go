package domain

import "time"

// MiningStation is the per-user token generator. Tokens accrue linearly
// at Power tokens per hour and are credited only at collection time.
type MiningStation struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Level           int       `json:"level"`
	Power           int64     `json:"power"`
	LastCollectedAt time.Time `json:"last_collected_at"`
}
