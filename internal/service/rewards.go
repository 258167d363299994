package service

import (
	"errors"
	"math"
	"time"

	"crypto_webapp/internal/domain"
	"crypto_webapp/internal/logger"
	"crypto_webapp/internal/store"
	"crypto_webapp/internal/ws"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrUnknownTradeAction = errors.New("unknown trade action")
)

const (
	TradeActionBuy  = "buy"
	TradeActionSell = "sell"
)

const (
	upgradeCostPerLevel = 50
	upgradePowerStep    = 2
	miningProLevel      = 5
)

// Notifier is the push side of the realtime hub; satisfied by *ws.Hub.
type Notifier interface {
	SendToUser(userID int64, payload any) bool
	Broadcast(payload any)
}

// Rewards applies one user action at a time to user, station, holding
// and challenge state, then pushes the deltas to the owning
// connection. Each public method holds the store action lock for its
// whole read-compute-write sequence.
type Rewards struct {
	store    *store.Store
	notifier Notifier
}

func NewRewards(st *store.Store, n Notifier) *Rewards {
	return &Rewards{store: st, notifier: n}
}

type MiningResult struct {
	TokensMined int64                 `json:"tokens_mined"`
	Station     *domain.MiningStation `json:"station"`
}

// CollectMining credits floor(elapsed_hours * power) game tokens and
// resets the accrual clock. The fractional remainder is discarded:
// tokens exist only at collection time.
func (r *Rewards) CollectMining(userID int64) (*MiningResult, error) {
	r.store.LockActions()
	defer r.store.UnlockActions()

	station, err := r.store.GetStationByUser(userID)
	if err != nil {
		return nil, err
	}
	user, err := r.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hours := now.Sub(station.LastCollectedAt).Hours()
	mined := int64(math.Floor(hours * float64(station.Power)))
	if mined < 0 {
		mined = 0
	}

	user, err = r.store.UpdateUser(userID, func(u *domain.User) {
		u.GameTokens += mined
	})
	if err != nil {
		return nil, err
	}
	station, err = r.store.UpdateStation(station.ID, func(st *domain.MiningStation) {
		st.LastCollectedAt = now
	})
	if err != nil {
		return nil, err
	}

	user = r.advanceChallenge(user, domain.ChallengeKindMining, int(mined))

	r.notifier.SendToUser(userID, ws.UserUpdate(user))
	r.notifier.SendToUser(userID, ws.MiningUpdate(station, mined))

	return &MiningResult{TokensMined: mined, Station: station}, nil
}

// UpgradeStation charges 50 * level game tokens, then bumps level by
// one and power by two. Reaching level 5 unlocks "Mining Pro" once.
func (r *Rewards) UpgradeStation(userID int64) (*domain.MiningStation, error) {
	r.store.LockActions()
	defer r.store.UnlockActions()

	station, err := r.store.GetStationByUser(userID)
	if err != nil {
		return nil, err
	}
	user, err := r.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	cost := int64(upgradeCostPerLevel * station.Level)
	if user.GameTokens < cost {
		return nil, ErrInsufficientFunds
	}

	user, err = r.store.UpdateUser(userID, func(u *domain.User) {
		u.GameTokens -= cost
	})
	if err != nil {
		return nil, err
	}
	station, err = r.store.UpdateStation(station.ID, func(st *domain.MiningStation) {
		st.Level++
		st.Power += upgradePowerStep
	})
	if err != nil {
		return nil, err
	}

	if station.Level >= miningProLevel {
		r.unlockAchievement(userID, domain.AchievementMiningPro)
	}

	r.notifier.SendToUser(userID, ws.UserUpdate(user))
	r.notifier.SendToUser(userID, ws.MiningUpdate(station, 0))

	return station, nil
}

type TradeInput struct {
	UserID   int64
	CryptoID int64
	Action   string
	Amount   int64
}

// TradeCost is ceil(amount*price/10000)/10: a one-decimal trade-token
// cost derived from an integer-cents price. The exact rounding is
// load-bearing for numeric equivalence.
func TradeCost(amount, price int64) float64 {
	return math.Ceil(float64(amount)*float64(price)/10000) / 10
}

// Trade executes a buy or sell against the crypto catalog. At most one
// holding row exists per (user, crypto) pair, enforced by looking the
// row up before creating it; selling down to zero leaves the row in
// place.
func (r *Rewards) Trade(in TradeInput) (*domain.Holding, error) {
	r.store.LockActions()
	defer r.store.UnlockActions()

	user, err := r.store.GetUser(in.UserID)
	if err != nil {
		return nil, err
	}
	crypto, err := r.store.GetCrypto(in.CryptoID)
	if err != nil {
		return nil, err
	}

	cost := TradeCost(in.Amount, crypto.CurrentPrice)

	var holding *domain.Holding
	switch in.Action {
	case TradeActionBuy:
		if user.TradeTokens < cost {
			return nil, ErrInsufficientFunds
		}
		if existing, err := r.store.GetHoldingByUserAndCrypto(in.UserID, in.CryptoID); err == nil {
			holding, err = r.store.UpdateHolding(existing.ID, func(h *domain.Holding) {
				h.Amount += in.Amount
			})
			if err != nil {
				return nil, err
			}
		} else {
			holding = &domain.Holding{UserID: in.UserID, CryptoID: in.CryptoID, Amount: in.Amount}
			r.store.CreateHolding(holding)
		}
		user, err = r.store.UpdateUser(in.UserID, func(u *domain.User) {
			u.TradeTokens -= cost
		})
		if err != nil {
			return nil, err
		}
		r.unlockAchievement(in.UserID, domain.AchievementFirstTrade)

	case TradeActionSell:
		existing, err := r.store.GetHoldingByUserAndCrypto(in.UserID, in.CryptoID)
		if err != nil || existing.Amount < in.Amount {
			return nil, ErrInsufficientFunds
		}
		// amount может дойти до нуля - строка остаётся
		holding, err = r.store.UpdateHolding(existing.ID, func(h *domain.Holding) {
			h.Amount -= in.Amount
		})
		if err != nil {
			return nil, err
		}
		user, err = r.store.UpdateUser(in.UserID, func(u *domain.User) {
			u.TradeTokens += cost
		})
		if err != nil {
			return nil, err
		}

	default:
		return nil, ErrUnknownTradeAction
	}

	user = r.advanceChallenge(user, domain.ChallengeKindTrade, 1)

	r.notifier.SendToUser(in.UserID, ws.UserUpdate(user))
	r.notifier.SendToUser(in.UserID, ws.HoldingUpdate(holding))

	return holding, nil
}

// CreatePost stores the post, advances the social challenge and
// broadcasts the post with its denormalized author to every open
// connection, not just the author's.
func (r *Rewards) CreatePost(userID int64, content, imageURL string) (*domain.PostWithAuthor, error) {
	r.store.LockActions()
	defer r.store.UnlockActions()

	user, err := r.store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{UserID: userID, Content: content, ImageURL: imageURL}
	r.store.CreatePost(post)

	r.advanceChallenge(user, domain.ChallengeKindSocial, 1)

	withAuthor := &domain.PostWithAuthor{
		Post:         *post,
		Username:     user.Username,
		ProfileImage: user.ProfileImage,
	}
	r.notifier.Broadcast(ws.NewPost(withAuthor))

	return withAuthor, nil
}

// LikePost bumps the counter by exactly one. No per-user dedup and no
// upper bound; any caller can like repeatedly.
func (r *Rewards) LikePost(postID int64) (*domain.Post, error) {
	r.store.LockActions()
	defer r.store.UnlockActions()

	post, err := r.store.UpdatePost(postID, func(p *domain.Post) {
		p.Likes++
	})
	if err != nil {
		return nil, err
	}

	r.notifier.Broadcast(ws.PostUpdate(post))
	return post, nil
}

// advanceChallenge moves the user's challenge of the given kind
// forward, clamped to MaxProgress. The catalog reward is credited
// exactly once, on the transition into completed. Returns the user row
// with any reward applied.
func (r *Rewards) advanceChallenge(user *domain.User, kind domain.ChallengeKind, delta int) *domain.User {
	ch, err := r.store.ChallengeByKind(kind)
	if err != nil {
		return user
	}
	uc, err := r.store.GetUserChallenge(user.ID, ch.ID)
	if err != nil || uc.Completed {
		return user
	}

	completed := false
	if _, err := r.store.UpdateUserChallenge(uc.ID, func(u *domain.UserChallenge) {
		u.Progress += delta
		if u.Progress >= u.MaxProgress {
			u.Progress = u.MaxProgress
			u.Completed = true
			completed = true
		}
	}); err != nil {
		return user
	}
	if !completed {
		return user
	}

	updated, err := r.store.UpdateUser(user.ID, func(u *domain.User) {
		u.GameTokens += ch.RewardGameTokens
		u.TradeTokens += ch.RewardTradeTokens
	})
	if err != nil {
		return user
	}
	logger.Info("challenge completed", "user_id", user.ID, "challenge", ch.Title)
	return updated
}

// unlockAchievement creates the unlock record if it does not exist yet
// and pushes the unlock to the owner. Existence of the record is the
// unlock; there is no re-lock.
func (r *Rewards) unlockAchievement(userID int64, title string) {
	a, err := r.store.AchievementByTitle(title)
	if err != nil {
		return
	}
	if _, err := r.store.GetUserAchievement(userID, a.ID); err == nil {
		return
	}

	r.store.CreateUserAchievement(&domain.UserAchievement{UserID: userID, AchievementID: a.ID})
	r.notifier.SendToUser(userID, ws.AchievementUnlocked(a))
	logger.Info("achievement unlocked", "user_id", userID, "achievement", title)
}
