package ws

const (
	// client - server
	MsgAuth = "auth"

	// server - client
	MsgUserUpdate          = "user_update"
	MsgMiningUpdate        = "mining_update"
	MsgHoldingUpdate       = "holding_update"
	MsgAchievementUnlocked = "achievement_unlocked"
	MsgNewPost             = "new_post"
	MsgPostUpdate          = "post_update"
	MsgError               = "error"
)
