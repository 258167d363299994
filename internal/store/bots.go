package store

import (
	"time"

	"crypto_webapp/internal/domain"
)

// CreateBot stores the bot disabled with performance and win/loss
// stats forced to zero, whatever the caller passed in.
func (s *Store) CreateBot(b *domain.TradingBot) *domain.TradingBot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.botSeq++
	b.ID = s.botSeq
	b.Enabled = false
	b.Performance = 0
	b.Wins = 0
	b.Losses = 0
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	cp := *b
	s.bots[cp.ID] = &cp
	return b
}

func (s *Store) GetBot(id int64) (*domain.TradingBot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bots[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *Store) UpdateBot(id int64, mutate func(*domain.TradingBot)) (*domain.TradingBot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bots[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(b)
	cp := *b
	return &cp, nil
}

func (s *Store) ListBotsByUser(userID int64) []*domain.TradingBot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.TradingBot
	for id := int64(1); id <= s.botSeq; id++ {
		if b, ok := s.bots[id]; ok && b.UserID == userID {
			cp := *b
			res = append(res, &cp)
		}
	}
	return res
}
