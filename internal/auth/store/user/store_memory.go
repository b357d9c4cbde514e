package user

import (
	"context"
	"fmt"
	"sync"
	"time"

	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
)

// InMemoryUserStore keeps users in memory for tests and local runs.
type InMemoryUserStore struct {
	mu      sync.RWMutex
	nextID  id.UserID
	users   map[id.UserID]*models.User
	byEmail map[models.Email]id.UserID
}

func New() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:   make(map[id.UserID]*models.User),
		byEmail: make(map[models.Email]id.UserID),
	}
}

// Create assigns the next id. Returns ErrConflict when the email is taken.
func (s *InMemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[user.Email]; taken {
		return fmt.Errorf("email %s: %w", user.Email, sentinel.ErrConflict)
	}
	s.nextID++
	user.ID = s.nextID
	stored := *user
	s.users[user.ID] = &stored
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, sentinel.ErrNotFound)
	}
	found := *u
	return &found, nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email models.Email) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user by email: %w", sentinel.ErrNotFound)
	}
	found := *s.users[userID]
	return &found, nil
}

// Count returns the number of non-deleted users.
func (s *InMemoryUserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if u.Status != models.UserStatusDeleted {
			n++
		}
	}
	return n, nil
}

// CountCreatedBetween counts non-deleted users created in [start, end).
func (s *InMemoryUserStore) CountCreatedBetween(_ context.Context, start, end time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if u.Status == models.UserStatusDeleted {
			continue
		}
		if !u.CreatedAt.Before(start) && u.CreatedAt.Before(end) {
			n++
		}
	}
	return n, nil
}
