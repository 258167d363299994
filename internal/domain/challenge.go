package domain

// ChallengeKind - тип действия, которое продвигает челлендж
type ChallengeKind string

const (
	ChallengeKindTrade  ChallengeKind = "trade"
	ChallengeKindMining ChallengeKind = "mining"
	ChallengeKindSocial ChallengeKind = "social"
)

// Challenge - шаблон задания из каталога
type Challenge struct {
	ID                int64         `json:"id"`
	Kind              ChallengeKind `json:"kind"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	RewardGameTokens  int64         `json:"reward_game_tokens"`
	RewardTradeTokens float64       `json:"reward_trade_tokens"`
}

// UserChallenge - прогресс пользователя по заданию. Completed
// выставляется один раз и не сбрасывается.
type UserChallenge struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"user_id"`
	ChallengeID int64 `json:"challenge_id"`
	Progress    int   `json:"progress"`
	MaxProgress int   `json:"max_progress"`
	Completed   bool  `json:"completed"`
}

// ChallengeProgress - прогресс с деталями челленджа (для API ответов)
type ChallengeProgress struct {
	Challenge   Challenge `json:"challenge"`
	Progress    int       `json:"progress"`
	MaxProgress int       `json:"max_progress"`
	Completed   bool      `json:"completed"`
}
