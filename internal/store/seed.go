package store

import "crypto_webapp/internal/domain"

// SeedCatalogs loads the demo crypto, achievement and challenge
// catalogs. Called once at startup; per-user rows are created at
// registration.
func SeedCatalogs(s *Store) {
	cryptos := []*domain.Crypto{
		{Symbol: "BTC", Name: "Bitcoin", CurrentPrice: 2824763, Change24h: 245, Icon: "btc.svg"},
		{Symbol: "ETH", Name: "Ethereum", CurrentPrice: 184215, Change24h: -112, Icon: "eth.svg"},
		{Symbol: "SOL", Name: "Solana", CurrentPrice: 2418, Change24h: 530, Icon: "sol.svg"},
		{Symbol: "DOGE", Name: "Dogecoin", CurrentPrice: 7, Change24h: -38, Icon: "doge.svg"},
		{Symbol: "ADA", Name: "Cardano", CurrentPrice: 31, Change24h: 91, Icon: "ada.svg"},
	}
	for _, c := range cryptos {
		s.CreateCrypto(c)
	}

	achievements := []*domain.Achievement{
		{Title: domain.AchievementFirstTrade, Description: "Complete your first buy", Icon: "trade.svg"},
		{Title: domain.AchievementMiningPro, Description: "Upgrade your station to level 5", Icon: "pickaxe.svg"},
		{Title: "Early Adopter", Description: "Joined during the beta", Icon: "star.svg"},
	}
	for _, a := range achievements {
		s.CreateAchievement(a)
	}

	challenges := []*domain.Challenge{
		{Kind: domain.ChallengeKindTrade, Title: "Market Maker", Description: "Execute trades on the simulator", RewardGameTokens: 50, RewardTradeTokens: 5},
		{Kind: domain.ChallengeKindMining, Title: "Token Miner", Description: "Mine game tokens with your station", RewardGameTokens: 25},
		{Kind: domain.ChallengeKindSocial, Title: "Community Voice", Description: "Share posts with the community", RewardGameTokens: 100, RewardTradeTokens: 10},
	}
	for _, c := range challenges {
		s.CreateChallenge(c)
	}
}
