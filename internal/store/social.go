package store

import (
	"time"

	"crypto_webapp/internal/domain"
)

// CreatePost stores the post with all counters at zero.
func (s *Store) CreatePost(p *domain.Post) *domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postSeq++
	p.ID = s.postSeq
	p.Likes = 0
	p.Comments = 0
	p.Shares = 0
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	cp := *p
	s.posts[cp.ID] = &cp
	return p
}

func (s *Store) GetPost(id int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) UpdatePost(id int64, mutate func(*domain.Post)) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(p)
	cp := *p
	return &cp, nil
}

// ListPosts returns posts newest first.
func (s *Store) ListPosts() []*domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Post, 0, len(s.posts))
	for id := s.postSeq; id >= 1; id-- {
		if p, ok := s.posts[id]; ok {
			cp := *p
			res = append(res, &cp)
		}
	}
	return res
}
