package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"promptserver/internal/like/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
)

type key struct {
	user   id.UserID
	prompt id.PromptID
}

// InMemory keeps likes in memory for tests and local runs.
type InMemory struct {
	mu     sync.RWMutex
	nextID int64
	likes  map[key]*models.Like
}

func NewInMemory() *InMemory {
	return &InMemory{likes: make(map[key]*models.Like)}
}

func (s *InMemory) Create(_ context.Context, l *models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{l.UserID, l.PromptID}
	if _, ok := s.likes[k]; ok {
		return fmt.Errorf("like user %s prompt %s: %w", l.UserID, l.PromptID, sentinel.ErrConflict)
	}
	s.nextID++
	l.ID = s.nextID
	stored := *l
	s.likes[k] = &stored
	return nil
}

func (s *InMemory) Delete(_ context.Context, userID id.UserID, promptID id.PromptID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{userID, promptID}
	if _, ok := s.likes[k]; !ok {
		return fmt.Errorf("like user %s prompt %s: %w", userID, promptID, sentinel.ErrNotFound)
	}
	delete(s.likes, k)
	return nil
}

func (s *InMemory) Exists(_ context.Context, userID id.UserID, promptID id.PromptID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.likes[key{userID, promptID}]
	return ok, nil
}

// ListByUser returns the user's likes, newest first.
func (s *InMemory) ListByUser(_ context.Context, userID id.UserID) ([]*models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Like
	for k, l := range s.likes {
		if k.user == userID {
			c := *l
			out = append(out, &c)
		}
	}
	slices.SortFunc(out, func(a, b *models.Like) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return out, nil
}
