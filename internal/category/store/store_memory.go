package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"promptserver/internal/category/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
)

// InMemory keeps categories in memory for tests and local runs.
type InMemory struct {
	mu         sync.RWMutex
	nextID     id.CategoryID
	categories map[id.CategoryID]*models.Category
}

func NewInMemory() *InMemory {
	return &InMemory{categories: make(map[id.CategoryID]*models.Category)}
}

func (s *InMemory) Create(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.Name == c.Name {
			return fmt.Errorf("category name %q: %w", c.Name, sentinel.ErrConflict)
		}
	}
	s.nextID++
	c.ID = s.nextID
	stored := *c
	s.categories[c.ID] = &stored
	return nil
}

func (s *InMemory) Update(_ context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[c.ID]; !ok {
		return fmt.Errorf("category %s: %w", c.ID, sentinel.ErrNotFound)
	}
	stored := *c
	s.categories[c.ID] = &stored
	return nil
}

func (s *InMemory) Delete(_ context.Context, categoryID id.CategoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[categoryID]; !ok {
		return fmt.Errorf("category %s: %w", categoryID, sentinel.ErrNotFound)
	}
	delete(s.categories, categoryID)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, categoryID id.CategoryID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[categoryID]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", categoryID, sentinel.ErrNotFound)
	}
	found := *c
	return &found, nil
}

func (s *InMemory) FindByName(_ context.Context, name string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			found := *c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("category %q: %w", name, sentinel.ErrNotFound)
}

// List returns all categories ordered by id, optionally filtered by IsSystem.
func (s *InMemory) List(_ context.Context, isSystem *bool) ([]*models.Category, error) {
	return s.filter(func(c *models.Category) bool {
		return isSystem == nil || c.IsSystem == *isSystem
	}), nil
}

func (s *InMemory) ListRoots(_ context.Context) ([]*models.Category, error) {
	return s.filter(func(c *models.Category) bool { return c.IsRoot() }), nil
}

func (s *InMemory) ListChildren(_ context.Context, parentID id.CategoryID) ([]*models.Category, error) {
	return s.filter(func(c *models.Category) bool {
		return c.ParentCategoryID != nil && *c.ParentCategoryID == parentID
	}), nil
}

func (s *InMemory) HasChildren(ctx context.Context, parentID id.CategoryID) (bool, error) {
	children, err := s.ListChildren(ctx, parentID)
	return len(children) > 0, err
}

func (s *InMemory) filter(keep func(*models.Category) bool) []*models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Category
	for _, c := range s.categories {
		if keep(c) {
			found := *c
			out = append(out, &found)
		}
	}
	slices.SortFunc(out, func(a, b *models.Category) int { return int(a.ID - b.ID) })
	return out
}
