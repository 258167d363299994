package store

import (
	"errors"
	"sync"

	"crypto_webapp/internal/domain"
)

var ErrNotFound = errors.New("not found")

// Store keeps the whole entity state in process memory. Every entity
// kind gets its own map keyed by a monotonically increasing int64 id.
// Individual operations are atomic under the store mutex; multi-step
// read-compute-write sequences additionally take the action lock so
// that no two actions interleave (see LockActions).
//
// Lookups are linear scans. The catalogs are demo-sized, and scan
// semantics are part of the observable contract here, so no indices.
type Store struct {
	mu       sync.RWMutex
	actionMu sync.Mutex

	users            map[int64]*domain.User
	stations         map[int64]*domain.MiningStation
	cryptos          map[int64]*domain.Crypto
	holdings         map[int64]*domain.Holding
	posts            map[int64]*domain.Post
	achievements     map[int64]*domain.Achievement
	userAchievements map[int64]*domain.UserAchievement
	bots             map[int64]*domain.TradingBot
	challenges       map[int64]*domain.Challenge
	userChallenges   map[int64]*domain.UserChallenge

	userSeq            int64
	stationSeq         int64
	cryptoSeq          int64
	holdingSeq         int64
	postSeq            int64
	achievementSeq     int64
	userAchievementSeq int64
	botSeq             int64
	challengeSeq       int64
	userChallengeSeq   int64
}

func New() *Store {
	return &Store{
		users:            make(map[int64]*domain.User),
		stations:         make(map[int64]*domain.MiningStation),
		cryptos:          make(map[int64]*domain.Crypto),
		holdings:         make(map[int64]*domain.Holding),
		posts:            make(map[int64]*domain.Post),
		achievements:     make(map[int64]*domain.Achievement),
		userAchievements: make(map[int64]*domain.UserAchievement),
		bots:             make(map[int64]*domain.TradingBot),
		challenges:       make(map[int64]*domain.Challenge),
		userChallenges:   make(map[int64]*domain.UserChallenge),
	}
}

// LockActions serializes whole user actions. Single store calls are
// atomic on their own; a caller doing read-compute-write across several
// calls holds this for the duration so concurrent requests cannot see
// half-applied state.
func (s *Store) LockActions() {
	s.actionMu.Lock()
}

func (s *Store) UnlockActions() {
	s.actionMu.Unlock()
}
