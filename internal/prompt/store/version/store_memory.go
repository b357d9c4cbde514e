package version

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/sentinel"
)

type InMemory struct {
	mu       sync.RWMutex
	nextID   int64
	versions map[int64]*models.PromptVersion
}

func NewInMemory() *InMemory {
	return &InMemory{versions: make(map[int64]*models.PromptVersion)}
}

func clone(v *models.PromptVersion) *models.PromptVersion {
	c := *v
	c.InputVariables = slices.Clone(v.InputVariables)
	return &c
}

func (s *InMemory) Create(_ context.Context, v *models.PromptVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.versions {
		if existing.PromptTemplateID == v.PromptTemplateID && existing.VersionNumber == v.VersionNumber {
			return fmt.Errorf("version %d of prompt %s: %w", v.VersionNumber, v.PromptTemplateID, sentinel.ErrConflict)
		}
	}
	s.nextID++
	v.ID = s.nextID
	s.versions[v.ID] = clone(v)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, versionID int64) (*models.PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.versions[versionID]
	if !ok {
		return nil, fmt.Errorf("version %d: %w", versionID, sentinel.ErrNotFound)
	}
	return clone(v), nil
}

func (s *InMemory) FindByNumber(_ context.Context, templateID id.PromptID, number int) (*models.PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.versions {
		if v.PromptTemplateID == templateID && v.VersionNumber == number {
			return clone(v), nil
		}
	}
	return nil, fmt.Errorf("version %d of prompt %s: %w", number, templateID, sentinel.ErrNotFound)
}

// ListByTemplate returns versions newest first.
func (s *InMemory) ListByTemplate(_ context.Context, templateID id.PromptID) ([]*models.PromptVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.PromptVersion{}
	for _, v := range s.versions {
		if v.PromptTemplateID == templateID {
			out = append(out, clone(v))
		}
	}
	slices.SortFunc(out, func(a, b *models.PromptVersion) int { return b.VersionNumber - a.VersionNumber })
	return out, nil
}

// LatestNumber returns 0 when the template has no versions.
func (s *InMemory) LatestNumber(_ context.Context, templateID id.PromptID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	latest := 0
	for _, v := range s.versions {
		if v.PromptTemplateID == templateID && v.VersionNumber > latest {
			latest = v.VersionNumber
		}
	}
	return latest, nil
}

func (s *InMemory) Delete(_ context.Context, versionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.versions[versionID]; !ok {
		return fmt.Errorf("version %d: %w", versionID, sentinel.ErrNotFound)
	}
	delete(s.versions, versionID)
	return nil
}
