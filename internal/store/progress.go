package store

import (
	"time"

	"crypto_webapp/internal/domain"
)

func (s *Store) CreateAchievement(a *domain.Achievement) *domain.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.achievementSeq++
	a.ID = s.achievementSeq
	cp := *a
	s.achievements[cp.ID] = &cp
	return a
}

func (s *Store) ListAchievements() []*domain.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Achievement, 0, len(s.achievements))
	for id := int64(1); id <= s.achievementSeq; id++ {
		if a, ok := s.achievements[id]; ok {
			cp := *a
			res = append(res, &cp)
		}
	}
	return res
}

func (s *Store) AchievementByTitle(title string) (*domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.achievements {
		if a.Title == title {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) CreateUserAchievement(ua *domain.UserAchievement) *domain.UserAchievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userAchievementSeq++
	ua.ID = s.userAchievementSeq
	if ua.UnlockedAt.IsZero() {
		ua.UnlockedAt = time.Now()
	}
	cp := *ua
	s.userAchievements[cp.ID] = &cp
	return ua
}

// GetUserAchievement reports whether the user already unlocked the
// achievement; existence of the row is the unlock.
func (s *Store) GetUserAchievement(userID, achievementID int64) (*domain.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ua := range s.userAchievements {
		if ua.UserID == userID && ua.AchievementID == achievementID {
			cp := *ua
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) ListUserAchievements(userID int64) []*domain.UserAchievement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.UserAchievement
	for id := int64(1); id <= s.userAchievementSeq; id++ {
		if ua, ok := s.userAchievements[id]; ok && ua.UserID == userID {
			cp := *ua
			res = append(res, &cp)
		}
	}
	return res
}

func (s *Store) CreateChallenge(c *domain.Challenge) *domain.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challengeSeq++
	c.ID = s.challengeSeq
	cp := *c
	s.challenges[cp.ID] = &cp
	return c
}

func (s *Store) GetChallenge(id int64) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) ListChallenges() []*domain.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Challenge, 0, len(s.challenges))
	for id := int64(1); id <= s.challengeSeq; id++ {
		if c, ok := s.challenges[id]; ok {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res
}

// ChallengeByKind finds the catalog entry for an action kind. The kind
// tag replaces positional challenge ids, so a re-ordered catalog keeps
// working.
func (s *Store) ChallengeByKind(kind domain.ChallengeKind) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := int64(1); id <= s.challengeSeq; id++ {
		if c, ok := s.challenges[id]; ok && c.Kind == kind {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) CreateUserChallenge(uc *domain.UserChallenge) *domain.UserChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userChallengeSeq++
	uc.ID = s.userChallengeSeq
	cp := *uc
	s.userChallenges[cp.ID] = &cp
	return uc
}

func (s *Store) GetUserChallenge(userID, challengeID int64) (*domain.UserChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, uc := range s.userChallenges {
		if uc.UserID == userID && uc.ChallengeID == challengeID {
			cp := *uc
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) ListUserChallenges(userID int64) []*domain.UserChallenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.UserChallenge
	for id := int64(1); id <= s.userChallengeSeq; id++ {
		if uc, ok := s.userChallenges[id]; ok && uc.UserID == userID {
			cp := *uc
			res = append(res, &cp)
		}
	}
	return res
}

func (s *Store) UpdateUserChallenge(id int64, mutate func(*domain.UserChallenge)) (*domain.UserChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uc, ok := s.userChallenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(uc)
	cp := *uc
	return &cp, nil
}
