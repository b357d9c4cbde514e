package template

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/platform/sentinel"
)

// InMemory stores templates in a map. Tags are stored inline on the template.
type InMemory struct {
	mu        sync.RWMutex
	nextID    id.PromptID
	templates map[id.PromptID]*models.PromptTemplate
}

func NewInMemory() *InMemory {
	return &InMemory{templates: make(map[id.PromptID]*models.PromptTemplate)}
}

func clone(t *models.PromptTemplate) *models.PromptTemplate {
	c := *t
	c.Tags = slices.Clone(t.Tags)
	return &c
}

func (s *InMemory) Create(_ context.Context, t *models.PromptTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.templates {
		if existing.UUID == t.UUID {
			return fmt.Errorf("prompt %s: %w", t.UUID, sentinel.ErrConflict)
		}
	}
	s.nextID++
	t.ID = s.nextID
	s.templates[t.ID] = clone(t)
	return nil
}

// Update writes metadata and tags. Counters are owned by the Adjust methods.
func (s *InMemory) Update(_ context.Context, t *models.PromptTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.templates[t.ID]
	if !ok {
		return fmt.Errorf("prompt %s: %w", t.ID, sentinel.ErrNotFound)
	}
	updated := clone(t)
	updated.Stats = existing.Stats
	s.templates[t.ID] = updated
	return nil
}

func (s *InMemory) FindByID(_ context.Context, promptID id.PromptID) (*models.PromptTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[promptID]
	if !ok {
		return nil, fmt.Errorf("prompt %s: %w", promptID, sentinel.ErrNotFound)
	}
	return clone(t), nil
}

func (s *InMemory) FindByUUID(_ context.Context, promptUUID uuid.UUID) (*models.PromptTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.templates {
		if t.UUID == promptUUID {
			return clone(t), nil
		}
	}
	return nil, fmt.Errorf("prompt %s: %w", promptUUID, sentinel.ErrNotFound)
}

// FindByIDs returns the templates that exist, in the order of ids.
func (s *InMemory) FindByIDs(_ context.Context, ids []id.PromptID) ([]*models.PromptTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PromptTemplate, 0, len(ids))
	for _, promptID := range ids {
		if t, ok := s.templates[promptID]; ok {
			out = append(out, clone(t))
		}
	}
	return out, nil
}

func (s *InMemory) List(_ context.Context, f models.Filter, req page.Request) ([]*models.PromptTemplate, int, error) {
	matched := s.matching(f.Matches)
	slices.SortStableFunc(matched, func(a, b *models.PromptTemplate) int {
		switch {
		case f.Less(a, b):
			return -1
		case f.Less(b, a):
			return 1
		}
		return int(b.ID - a.ID)
	})
	result := page.Slice(matched, req)
	return result.Content, result.TotalElements, nil
}

// CountByStatus counts templates per status, optionally for one author.
func (s *InMemory) CountByStatus(_ context.Context, authorID *id.UserID) (map[models.Status]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.Status]int)
	for _, t := range s.templates {
		if authorID != nil && t.CreatedByID != *authorID {
			continue
		}
		counts[t.Status]++
	}
	return counts, nil
}

// CountCreatedBetween counts non-deleted templates created in [start, end).
func (s *InMemory) CountCreatedBetween(_ context.Context, start, end time.Time) (int, error) {
	matched := s.matching(func(t *models.PromptTemplate) bool {
		return !t.IsDeleted() && !t.CreatedAt.Before(start) && t.CreatedAt.Before(end)
	})
	return len(matched), nil
}

func (s *InMemory) CountByCategories(_ context.Context, categoryIDs []id.CategoryID) (map[id.CategoryID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.CategoryID]int, len(categoryIDs))
	for _, t := range s.templates {
		if t.IsDeleted() || t.CategoryID == nil || !slices.Contains(categoryIDs, *t.CategoryID) {
			continue
		}
		counts[*t.CategoryID]++
	}
	return counts, nil
}

func (s *InMemory) IDsByCategories(_ context.Context, categoryIDs []id.CategoryID) ([]id.PromptID, error) {
	matched := s.matching(func(t *models.PromptTemplate) bool {
		return t.CategoryID != nil && slices.Contains(categoryIDs, *t.CategoryID)
	})
	ids := make([]id.PromptID, 0, len(matched))
	for _, t := range matched {
		ids = append(ids, t.ID)
	}
	slices.Sort(ids)
	return ids, nil
}

// Recent returns the newest public, non-deleted templates.
func (s *InMemory) Recent(_ context.Context, limit int) ([]*models.PromptTemplate, error) {
	matched := s.matching(func(t *models.PromptTemplate) bool {
		return t.IsPublic() && !t.IsDeleted()
	})
	slices.SortFunc(matched, func(a, b *models.PromptTemplate) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// ViewCounts returns stored view counts for ids, or for every non-deleted template when ids is empty.
func (s *InMemory) ViewCounts(_ context.Context, ids []id.PromptID) (map[id.PromptID]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[id.PromptID]int64)
	for _, t := range s.templates {
		if len(ids) == 0 && t.IsDeleted() {
			continue
		}
		if len(ids) > 0 && !slices.Contains(ids, t.ID) {
			continue
		}
		counts[t.ID] = t.Stats.ViewCount
	}
	return counts, nil
}

func (s *InMemory) SumLikesByAuthor(_ context.Context, authorID id.UserID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, t := range s.templates {
		if t.CreatedByID == authorID && !t.IsDeleted() {
			total += t.Stats.LikeCount
		}
	}
	return total, nil
}

func (s *InMemory) AdjustFavoriteCount(_ context.Context, promptID id.PromptID, delta int64) (int64, error) {
	return s.adjust(promptID, func(st models.PromptStats) (models.PromptStats, int64) {
		st = st.WithFavoriteDelta(delta)
		return st, st.FavoriteCount
	})
}

func (s *InMemory) AdjustLikeCount(_ context.Context, promptID id.PromptID, delta int64) (int64, error) {
	return s.adjust(promptID, func(st models.PromptStats) (models.PromptStats, int64) {
		st = st.WithLikeDelta(delta)
		return st, st.LikeCount
	})
}

func (s *InMemory) AddViewCount(_ context.Context, promptID id.PromptID, n int64) error {
	_, err := s.adjust(promptID, func(st models.PromptStats) (models.PromptStats, int64) {
		st = st.WithViews(n)
		return st, st.ViewCount
	})
	return err
}

func (s *InMemory) adjust(promptID id.PromptID, fn func(models.PromptStats) (models.PromptStats, int64)) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.templates[promptID]
	if !ok {
		return 0, fmt.Errorf("prompt %s: %w", promptID, sentinel.ErrNotFound)
	}
	stats, value := fn(t.Stats)
	t.Stats = stats
	return value, nil
}

func (s *InMemory) matching(keep func(*models.PromptTemplate) bool) []*models.PromptTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PromptTemplate
	for _, t := range s.templates {
		if keep(t) {
			out = append(out, clone(t))
		}
	}
	return out
}
