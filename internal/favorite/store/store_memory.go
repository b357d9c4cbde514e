package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"promptserver/internal/favorite/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
)

type key struct {
	user   id.UserID
	prompt id.PromptID
}

// InMemory keeps favorites in memory for tests and local runs.
type InMemory struct {
	mu        sync.RWMutex
	nextID    int64
	favorites map[key]*models.Favorite
}

func NewInMemory() *InMemory {
	return &InMemory{favorites: make(map[key]*models.Favorite)}
}

// Create returns ErrConflict when the user already favorited the prompt.
func (s *InMemory) Create(_ context.Context, f *models.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{f.UserID, f.PromptID}
	if _, ok := s.favorites[k]; ok {
		return fmt.Errorf("favorite user %s prompt %s: %w", f.UserID, f.PromptID, sentinel.ErrConflict)
	}
	s.nextID++
	f.ID = s.nextID
	stored := *f
	s.favorites[k] = &stored
	return nil
}

func (s *InMemory) Delete(_ context.Context, userID id.UserID, promptID id.PromptID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{userID, promptID}
	if _, ok := s.favorites[k]; !ok {
		return fmt.Errorf("favorite user %s prompt %s: %w", userID, promptID, sentinel.ErrNotFound)
	}
	delete(s.favorites, k)
	return nil
}

func (s *InMemory) Exists(_ context.Context, userID id.UserID, promptID id.PromptID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[key{userID, promptID}]
	return ok, nil
}

// ListByUser returns the user's favorites, newest first.
func (s *InMemory) ListByUser(_ context.Context, userID id.UserID) ([]*models.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Favorite
	for k, f := range s.favorites {
		if k.user == userID {
			c := *f
			out = append(out, &c)
		}
	}
	slices.SortFunc(out, func(a, b *models.Favorite) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return out, nil
}

func (s *InMemory) CountByUser(_ context.Context, userID id.UserID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for k := range s.favorites {
		if k.user == userID {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.favorites), nil
}

// CountCreatedBetween counts favorites created in [start, end).
func (s *InMemory) CountCreatedBetween(_ context.Context, start, end time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, f := range s.favorites {
		if !f.CreatedAt.Before(start) && f.CreatedAt.Before(end) {
			n++
		}
	}
	return n, nil
}
