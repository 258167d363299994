package store

import "crypto_webapp/internal/domain"

func (s *Store) CreateStation(st *domain.MiningStation) *domain.MiningStation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stationSeq++
	st.ID = s.stationSeq
	cp := *st
	s.stations[cp.ID] = &cp
	return st
}

// GetStationByUser returns the user's station. Exactly one station per
// user exists, created together with the user at registration.
func (s *Store) GetStationByUser(userID int64) (*domain.MiningStation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.stations {
		if st.UserID == userID {
			cp := *st
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) UpdateStation(id int64, mutate func(*domain.MiningStation)) (*domain.MiningStation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stations[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(st)
	cp := *st
	return &cp, nil
}
