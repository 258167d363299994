package service

import (
	"errors"
	"time"

	"crypto_webapp/internal/domain"
	"crypto_webapp/internal/logger"
	"crypto_webapp/internal/store"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Стартовые балансы новых пользователей
const (
	initialGameTokens  = 100
	initialTradeTokens = 1000
	initialMiningPower = 5
)

// challengeMaxProgress is fixed at 100 for every challenge regardless
// of its semantics.
const challengeMaxProgress = 100

var defaultBots = []domain.TradingBot{
	{Name: "Momentum Bot", Strategy: "momentum"},
	{Name: "DCA Bot", Strategy: "dca"},
}

type Accounts struct {
	store *store.Store
}

func NewAccounts(st *store.Store) *Accounts {
	return &Accounts{store: st}
}

// Register creates the user and, atomically with it, the per-user
// seed: one mining station, one UserChallenge per catalog challenge
// and two default trading bots. The seeding is part of the observable
// contract of "create user".
func (a *Accounts) Register(username, password string) (*domain.User, error) {
	a.store.LockActions()
	defer a.store.UnlockActions()

	// uniqueness by lookup-before-create; the action lock makes the
	// check-then-insert atomic
	if _, err := a.store.GetUserByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Level:        1,
		GameTokens:   initialGameTokens,
		TradeTokens:  initialTradeTokens,
	}
	a.store.CreateUser(user)

	a.store.CreateStation(&domain.MiningStation{
		UserID:          user.ID,
		Level:           1,
		Power:           initialMiningPower,
		LastCollectedAt: time.Now(),
	})

	for _, ch := range a.store.ListChallenges() {
		a.store.CreateUserChallenge(&domain.UserChallenge{
			UserID:      user.ID,
			ChallengeID: ch.ID,
			MaxProgress: challengeMaxProgress,
		})
	}

	for _, tmpl := range defaultBots {
		bot := tmpl
		bot.UserID = user.ID
		a.store.CreateBot(&bot)
	}

	logger.Info("user registered", "user_id", user.ID, "username", username)
	return user, nil
}

func (a *Accounts) Login(username, password string) (*domain.User, error) {
	user, err := a.store.GetUserByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
