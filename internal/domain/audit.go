package domain

import "time"

// AuditLog is the only durable artifact of the service; entity state
// itself lives in memory and dies with the process.
type AuditLog struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Action    string         `json:"action"`
	Category  string         `json:"category"`
	Details   map[string]any `json:"details,omitempty"`
	IP        string         `json:"ip,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Audit actions
const (
	AuditActionRegister      = "register"
	AuditActionLogin         = "login"
	AuditActionTradeBuy      = "trade_buy"
	AuditActionTradeSell     = "trade_sell"
	AuditActionMiningCollect = "mining_collect"
	AuditActionMiningUpgrade = "mining_upgrade"
	AuditActionPostCreate    = "post_create"
	AuditActionPostLike      = "post_like"
)

// Audit categories
const (
	AuditCategoryAuth   = "auth"
	AuditCategoryTrade  = "trade"
	AuditCategoryMining = "mining"
	AuditCategorySocial = "social"
)
