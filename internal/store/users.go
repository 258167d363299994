package store

import (
	"time"

	"crypto_webapp/internal/domain"
)

// CreateUser assigns the next id and stores a copy of the record.
func (s *Store) CreateUser(u *domain.User) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	u.ID = s.userSeq
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	cp := *u
	s.users[cp.ID] = &cp
	return u
}

func (s *Store) GetUser(id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// GetUserByUsername scans the table; usernames are unique only because
// registration looks up before creating.
func (s *Store) GetUserByUsername(username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateUser applies mutate to the stored record and returns a copy of
// the result.
func (s *Store) UpdateUser(id int64, mutate func(*domain.User)) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(u)
	cp := *u
	return &cp, nil
}

func (s *Store) ListUsers() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		res = append(res, &cp)
	}
	return res
}
