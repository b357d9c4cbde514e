package adapters

import (
	"context"

	authModels "promptserver/internal/auth/models"
	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
)

// AuthUserStore is the subset of the auth user store the prompt context reads.
type AuthUserStore interface {
	FindByID(ctx context.Context, userID id.UserID) (*authModels.User, error)
}

// UserDirectoryAdapter adapts an auth user store to the prompt UserDirectory.
type UserDirectoryAdapter struct {
	store AuthUserStore
}

func NewUserDirectoryAdapter(store AuthUserStore) *UserDirectoryAdapter {
	return &UserDirectoryAdapter{store: store}
}

// FindAuthor returns the store error unchanged so sentinel.ErrNotFound stays matchable.
func (a *UserDirectoryAdapter) FindAuthor(ctx context.Context, userID id.UserID) (models.Author, error) {
	user, err := a.store.FindByID(ctx, userID)
	if err != nil {
		return models.Author{}, err
	}
	return mapAuthor(user), nil
}

func mapAuthor(u *authModels.User) models.Author {
	return models.Author{
		ID:     u.ID,
		Name:   u.Name,
		Email:  string(u.Email),
		TeamID: u.TeamID,
	}
}
