package ws

import "crypto_webapp/internal/domain"

// client → server
type AuthPayload struct {
	Type   string `json:"type"`
	UserID int64  `json:"user_id"`
}

// server → client
type UserUpdatePayload struct {
	Type string       `json:"type"`
	User *domain.User `json:"user"`
}

type MiningUpdatePayload struct {
	Type        string                `json:"type"`
	Station     *domain.MiningStation `json:"station"`
	TokensMined int64                 `json:"tokens_mined"`
}

type HoldingUpdatePayload struct {
	Type    string          `json:"type"`
	Holding *domain.Holding `json:"holding"`
}

type AchievementUnlockedPayload struct {
	Type        string              `json:"type"`
	Achievement *domain.Achievement `json:"achievement"`
}

type NewPostPayload struct {
	Type string                 `json:"type"`
	Post *domain.PostWithAuthor `json:"post"`
}

type PostUpdatePayload struct {
	Type string       `json:"type"`
	Post *domain.Post `json:"post"`
}

type ErrorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Constructors keep the type tag consistent with the payload shape.

func UserUpdate(u *domain.User) UserUpdatePayload {
	return UserUpdatePayload{Type: MsgUserUpdate, User: u}
}

func MiningUpdate(st *domain.MiningStation, mined int64) MiningUpdatePayload {
	return MiningUpdatePayload{Type: MsgMiningUpdate, Station: st, TokensMined: mined}
}

func HoldingUpdate(h *domain.Holding) HoldingUpdatePayload {
	return HoldingUpdatePayload{Type: MsgHoldingUpdate, Holding: h}
}

func AchievementUnlocked(a *domain.Achievement) AchievementUnlockedPayload {
	return AchievementUnlockedPayload{Type: MsgAchievementUnlocked, Achievement: a}
}

func NewPost(p *domain.PostWithAuthor) NewPostPayload {
	return NewPostPayload{Type: MsgNewPost, Post: p}
}

func PostUpdate(p *domain.Post) PostUpdatePayload {
	return PostUpdatePayload{Type: MsgPostUpdate, Post: p}
}

func Error(msg string) ErrorPayload {
	return ErrorPayload{Type: MsgError, Message: msg}
}
