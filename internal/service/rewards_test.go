package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"crypto_webapp/internal/domain"
	"crypto_webapp/internal/store"
)

type fakeNotifier struct {
	sends      []any
	broadcasts []any
}

func (f *fakeNotifier) SendToUser(userID int64, payload any) bool {
	f.sends = append(f.sends, payload)
	return true
}

func (f *fakeNotifier) Broadcast(payload any) {
	f.broadcasts = append(f.broadcasts, payload)
}

func newTestRewards(t *testing.T) (*store.Store, *Rewards, *fakeNotifier, *domain.User) {
	t.Helper()
	st := store.New()
	store.SeedCatalogs(st)

	accounts := NewAccounts(st)
	user, err := accounts.Register("alice", "password")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	n := &fakeNotifier{}
	return st, NewRewards(st, n), n, user
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTradeCost(t *testing.T) {
	cases := []struct {
		amount, price int64
		want          float64
	}{
		{1, 2824763, 28.3},
		{10, 100, 0.1},
		{1, 7, 0.1},
		{10, 7, 0.1},
		{100, 31, 0.1},
		{1000, 184215, 1842.2},
		{1, 10000, 0.1},
		{2, 10000, 0.2},
	}

	for _, tc := range cases {
		if got := TradeCost(tc.amount, tc.price); !almostEqual(got, tc.want) {
			t.Fatalf("TradeCost(%d, %d) = %v; want %v", tc.amount, tc.price, got, tc.want)
		}
	}
}

func TestTradeBuyCreatesHolding(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	// DOGE is crypto id 4 at price 7
	holding, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 4, Action: TradeActionBuy, Amount: 10})
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if holding.Amount != 10 {
		t.Fatalf("amount = %d; want 10", holding.Amount)
	}

	got, _ := st.GetUser(user.ID)
	if !almostEqual(got.TradeTokens, 999.9) {
		t.Fatalf("trade tokens = %v; want 999.9", got.TradeTokens)
	}
}

func TestTradeRepeatedBuysSingleRow(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	for i := 0; i < 3; i++ {
		if _, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 4, Action: TradeActionBuy, Amount: 5}); err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
	}

	holdings := st.ListHoldingsByUser(user.ID)
	if len(holdings) != 1 {
		t.Fatalf("holdings = %d rows; want 1", len(holdings))
	}
	if holdings[0].Amount != 15 {
		t.Fatalf("amount = %d; want 15", holdings[0].Amount)
	}
}

func TestTradeSellToZeroKeepsRow(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	if _, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 4, Action: TradeActionBuy, Amount: 10}); err != nil {
		t.Fatalf("buy: %v", err)
	}
	holding, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 4, Action: TradeActionSell, Amount: 10})
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if holding.Amount != 0 {
		t.Fatalf("amount = %d; want 0", holding.Amount)
	}

	// the zero row survives and sell credits exactly what buy charged
	if got := st.ListHoldingsByUser(user.ID); len(got) != 1 {
		t.Fatalf("holdings = %d rows; want the zero row to remain", len(got))
	}
	u, _ := st.GetUser(user.ID)
	if !almostEqual(u.TradeTokens, 1000) {
		t.Fatalf("trade tokens = %v; want 1000 after round trip", u.TradeTokens)
	}
}

func TestTradeSellMoreThanHeld(t *testing.T) {
	_, rewards, _, user := newTestRewards(t)

	if _, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 4, Action: TradeActionBuy, Amount: 5}); err != nil {
		t.Fatalf("buy: %v", err)
	}
	_, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 4, Action: TradeActionSell, Amount: 6})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v; want ErrInsufficientFunds", err)
	}
}

func TestTradeBuyInsufficientFunds(t *testing.T) {
	_, rewards, _, user := newTestRewards(t)

	// 40 BTC at 2824763 costs 1130.0, over the starting 1000
	_, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 1, Action: TradeActionBuy, Amount: 40})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v; want ErrInsufficientFunds", err)
	}
}

func TestTradeUnknownAction(t *testing.T) {
	_, rewards, _, user := newTestRewards(t)

	_, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 1, Action: "short", Amount: 1})
	if !errors.Is(err, ErrUnknownTradeAction) {
		t.Fatalf("err = %v; want ErrUnknownTradeAction", err)
	}
}

func TestFirstTradeUnlockedOnce(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	for i := 0; i < 2; i++ {
		if _, err := rewards.Trade(TradeInput{UserID: user.ID, CryptoID: 4, Action: TradeActionBuy, Amount: 1}); err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
	}

	a, err := st.AchievementByTitle(domain.AchievementFirstTrade)
	if err != nil {
		t.Fatalf("achievement catalog: %v", err)
	}
	if _, err := st.GetUserAchievement(user.ID, a.ID); err != nil {
		t.Fatalf("First Trade not unlocked: %v", err)
	}
	if got := len(st.ListUserAchievements(user.ID)); got != 1 {
		t.Fatalf("unlocks = %d; want exactly 1", got)
	}
}

func TestCollectMining(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	station, _ := st.GetStationByUser(user.ID)
	st.UpdateStation(station.ID, func(s *domain.MiningStation) {
		s.LastCollectedAt = time.Now().Add(-2 * time.Hour)
	})

	res, err := rewards.CollectMining(user.ID)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	// 2 hours at power 5
	if res.TokensMined != 10 {
		t.Fatalf("mined = %d; want 10", res.TokensMined)
	}

	got, _ := st.GetUser(user.ID)
	if got.GameTokens != 110 {
		t.Fatalf("game tokens = %d; want 110", got.GameTokens)
	}

	// the clock was reset, an immediate second collect yields nothing
	res, err = rewards.CollectMining(user.ID)
	if err != nil {
		t.Fatalf("second collect: %v", err)
	}
	if res.TokensMined != 0 {
		t.Fatalf("second collect mined = %d; want 0", res.TokensMined)
	}
}

func TestCollectMiningDiscardsFraction(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	station, _ := st.GetStationByUser(user.ID)
	st.UpdateStation(station.ID, func(s *domain.MiningStation) {
		s.LastCollectedAt = time.Now().Add(-90 * time.Minute)
	})

	res, err := rewards.CollectMining(user.ID)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	// 1.5 hours at power 5 is 7.5, floored
	if res.TokensMined != 7 {
		t.Fatalf("mined = %d; want 7", res.TokensMined)
	}
}

func TestUpgradeStation(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	station, err := rewards.UpgradeStation(user.ID)
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if station.Level != 2 || station.Power != 7 {
		t.Fatalf("station = level %d power %d; want level 2 power 7", station.Level, station.Power)
	}

	got, _ := st.GetUser(user.ID)
	if got.GameTokens != 50 {
		t.Fatalf("game tokens = %d; want 50 after paying 50", got.GameTokens)
	}

	// next upgrade costs 100, only 50 left
	if _, err := rewards.UpgradeStation(user.ID); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v; want ErrInsufficientFunds", err)
	}
}

func TestMiningProAtLevelFive(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	st.UpdateUser(user.ID, func(u *domain.User) {
		u.GameTokens = 1000
	})

	// levels 1→5 cost 50+100+150+200
	for i := 0; i < 4; i++ {
		if _, err := rewards.UpgradeStation(user.ID); err != nil {
			t.Fatalf("upgrade %d: %v", i, err)
		}
	}

	a, _ := st.AchievementByTitle(domain.AchievementMiningPro)
	if _, err := st.GetUserAchievement(user.ID, a.ID); err != nil {
		t.Fatalf("Mining Pro not unlocked: %v", err)
	}
}

func TestMiningChallengeRewardOnce(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	station, _ := st.GetStationByUser(user.ID)
	st.UpdateStation(station.ID, func(s *domain.MiningStation) {
		s.LastCollectedAt = time.Now().Add(-30 * time.Hour)
	})

	// 30h at power 5 mines 150; the challenge clamps at 100 and pays
	// Token Miner's 25 game tokens exactly once
	res, err := rewards.CollectMining(user.ID)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if res.TokensMined != 150 {
		t.Fatalf("mined = %d; want 150", res.TokensMined)
	}

	ch, _ := st.ChallengeByKind(domain.ChallengeKindMining)
	uc, err := st.GetUserChallenge(user.ID, ch.ID)
	if err != nil {
		t.Fatalf("user challenge: %v", err)
	}
	if !uc.Completed || uc.Progress != uc.MaxProgress {
		t.Fatalf("challenge = %+v; want completed at max progress", uc)
	}

	u, _ := st.GetUser(user.ID)
	if u.GameTokens != 100+150+25 {
		t.Fatalf("game tokens = %d; want 275", u.GameTokens)
	}

	// a second completion-sized collect must not pay again
	st.UpdateStation(station.ID, func(s *domain.MiningStation) {
		s.LastCollectedAt = time.Now().Add(-30 * time.Hour)
	})
	if _, err := rewards.CollectMining(user.ID); err != nil {
		t.Fatalf("second collect: %v", err)
	}
	u, _ = st.GetUser(user.ID)
	if u.GameTokens != 275+150 {
		t.Fatalf("game tokens = %d; want 425 with no second reward", u.GameTokens)
	}
}

func TestCreatePostBroadcasts(t *testing.T) {
	_, rewards, n, user := newTestRewards(t)

	post, err := rewards.CreatePost(user.ID, "hello world", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Username != "alice" {
		t.Fatalf("username = %q; want alice", post.Username)
	}

	// the feed is broadcast to everyone, not pushed per-user
	if len(n.broadcasts) != 1 {
		t.Fatalf("broadcasts = %d; want 1", len(n.broadcasts))
	}
	if len(n.sends) != 0 {
		t.Fatalf("per-user sends = %d; want 0", len(n.sends))
	}
}

func TestSocialChallengeRewardOnCompletion(t *testing.T) {
	st, rewards, _, user := newTestRewards(t)

	ch, _ := st.ChallengeByKind(domain.ChallengeKindSocial)
	uc, _ := st.GetUserChallenge(user.ID, ch.ID)
	st.UpdateUserChallenge(uc.ID, func(u *domain.UserChallenge) {
		u.Progress = u.MaxProgress - 1
	})

	if _, err := rewards.CreatePost(user.ID, "one more post", ""); err != nil {
		t.Fatalf("create post: %v", err)
	}

	u, _ := st.GetUser(user.ID)
	if u.GameTokens != 100+100 {
		t.Fatalf("game tokens = %d; want 200 with Community Voice reward", u.GameTokens)
	}
	if !almostEqual(u.TradeTokens, 1010) {
		t.Fatalf("trade tokens = %v; want 1010", u.TradeTokens)
	}
}

func TestLikePost(t *testing.T) {
	_, rewards, n, user := newTestRewards(t)

	post, err := rewards.CreatePost(user.ID, "like me", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := rewards.LikePost(post.ID); err != nil {
			t.Fatalf("like %d: %v", i, err)
		}
	}

	updated, err := rewards.LikePost(post.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if updated.Likes != 4 {
		t.Fatalf("likes = %d; want 4", updated.Likes)
	}

	// new_post plus four post_update broadcasts
	if len(n.broadcasts) != 5 {
		t.Fatalf("broadcasts = %d; want 5", len(n.broadcasts))
	}

	if _, err := rewards.LikePost(9999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("missing post: err = %v; want ErrNotFound", err)
	}
}
