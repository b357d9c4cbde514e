package refreshtoken

import (
	"context"
	"fmt"
	"sync"

	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
)

// InMemoryRefreshTokenStore keeps one refresh token per user.
type InMemoryRefreshTokenStore struct {
	mu     sync.RWMutex
	tokens map[id.UserID]models.RefreshToken
}

func New() *InMemoryRefreshTokenStore {
	return &InMemoryRefreshTokenStore{tokens: make(map[id.UserID]models.RefreshToken)}
}

// Save replaces the user's current token.
func (s *InMemoryRefreshTokenStore) Save(_ context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.UserID] = *token
	return nil
}

func (s *InMemoryRefreshTokenStore) FindByUserID(_ context.Context, userID id.UserID) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[userID]
	if !ok {
		return nil, fmt.Errorf("refresh token for user %s: %w", userID, sentinel.ErrNotFound)
	}
	return &token, nil
}

// DeleteByUserID is a no-op when the user has no token.
func (s *InMemoryRefreshTokenStore) DeleteByUserID(_ context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}
