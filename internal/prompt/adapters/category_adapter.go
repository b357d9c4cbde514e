package adapters

import (
	"context"

	categoryModels "promptserver/internal/category/models"
	id "promptserver/pkg/domain"
)

// CategoryStore is the subset of the category store the prompt context reads.
type CategoryStore interface {
	FindByID(ctx context.Context, categoryID id.CategoryID) (*categoryModels.Category, error)
}

// CategoryDirectoryAdapter resolves category display names for prompt responses.
type CategoryDirectoryAdapter struct {
	store CategoryStore
}

func NewCategoryDirectoryAdapter(store CategoryStore) *CategoryDirectoryAdapter {
	return &CategoryDirectoryAdapter{store: store}
}

func (a *CategoryDirectoryAdapter) CategoryName(ctx context.Context, categoryID id.CategoryID) (string, error) {
	c, err := a.store.FindByID(ctx, categoryID)
	if err != nil {
		return "", err
	}
	if c.DisplayName != "" {
		return c.DisplayName, nil
	}
	return c.Name, nil
}
