package loginhistory

import (
	"context"
	"slices"
	"sync"

	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/page"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	entries []models.LoginHistory
}

func New() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, entry *models.LoginHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	entry.ID = s.nextID
	s.entries = append(s.entries, *entry)
	return nil
}

// ListByUser returns the user's entries newest first, plus the total count.
func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID, req page.Request) ([]*models.LoginHistory, int, error) {
	s.mu.RLock()
	var mine []*models.LoginHistory
	for i := range s.entries {
		if s.entries[i].UserID == userID {
			e := s.entries[i]
			mine = append(mine, &e)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(mine, func(a, b *models.LoginHistory) int {
		if c := b.LoginAt.Compare(a.LoginAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	result := page.Slice(mine, req)
	return result.Content, result.TotalElements, nil
}
