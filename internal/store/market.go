package store

import "crypto_webapp/internal/domain"

func (s *Store) CreateCrypto(c *domain.Crypto) *domain.Crypto {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cryptoSeq++
	c.ID = s.cryptoSeq
	cp := *c
	s.cryptos[cp.ID] = &cp
	return c
}

func (s *Store) GetCrypto(id int64) (*domain.Crypto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cryptos[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) ListCryptos() []*domain.Crypto {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Crypto, 0, len(s.cryptos))
	for id := int64(1); id <= s.cryptoSeq; id++ {
		if c, ok := s.cryptos[id]; ok {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res
}

func (s *Store) CreateHolding(h *domain.Holding) *domain.Holding {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holdingSeq++
	h.ID = s.holdingSeq
	cp := *h
	s.holdings[cp.ID] = &cp
	return h
}

// GetHoldingByUserAndCrypto backs the lookup-before-create rule that
// keeps at most one holding row per (user, crypto) pair.
func (s *Store) GetHoldingByUserAndCrypto(userID, cryptoID int64) (*domain.Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.holdings {
		if h.UserID == userID && h.CryptoID == cryptoID {
			cp := *h
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) UpdateHolding(id int64, mutate func(*domain.Holding)) (*domain.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holdings[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(h)
	cp := *h
	return &cp, nil
}

func (s *Store) ListHoldingsByUser(userID int64) []*domain.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Holding
	for id := int64(1); id <= s.holdingSeq; id++ {
		if h, ok := s.holdings[id]; ok && h.UserID == userID {
			cp := *h
			res = append(res, &cp)
		}
	}
	return res
}
