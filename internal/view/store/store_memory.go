package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"promptserver/internal/view/models"
	id "promptserver/pkg/domain"
)

// InMemory keeps view records in process.
type InMemory struct {
	mu      sync.RWMutex
	records []models.ViewRecord
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Save(_ context.Context, r *models.ViewRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *r)
	return nil
}

// CountByPrompt counts all records per prompt. An empty ids slice means every prompt.
func (s *InMemory) CountByPrompt(_ context.Context, ids []id.PromptID) (map[id.PromptID]int64, error) {
	counts := make(map[id.PromptID]int64)
	s.each(time.Time{}, time.Time{}, ids, func(r models.ViewRecord) {
		counts[r.PromptID]++
	})
	return counts, nil
}

func (s *InMemory) CountBetween(_ context.Context, start, end time.Time, ids []id.PromptID) (int64, error) {
	var total int64
	s.each(start, end, ids, func(models.ViewRecord) {
		total++
	})
	return total, nil
}

func (s *InMemory) CountsByPromptBetween(_ context.Context, ids []id.PromptID, start, end time.Time) (map[id.PromptID]int64, error) {
	counts := make(map[id.PromptID]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	s.each(start, end, ids, func(r models.ViewRecord) {
		counts[r.PromptID]++
	})
	return counts, nil
}

// TopPrompts ranks prompts by views in [start, end), ties broken by the latest view.
func (s *InMemory) TopPrompts(_ context.Context, start, end time.Time, ids []id.PromptID, limit int) ([]PromptViews, error) {
	byPrompt := make(map[id.PromptID]*PromptViews)
	s.each(start, end, ids, func(r models.ViewRecord) {
		pv, ok := byPrompt[r.PromptID]
		if !ok {
			pv = &PromptViews{PromptID: r.PromptID}
			byPrompt[r.PromptID] = pv
		}
		pv.Views++
		if r.ViewedAt.After(pv.LastViewedAt) {
			pv.LastViewedAt = r.ViewedAt
		}
	})
	out := make([]PromptViews, 0, len(byPrompt))
	for _, pv := range byPrompt {
		out = append(out, *pv)
	}
	slices.SortFunc(out, func(a, b PromptViews) int {
		if c := cmp.Compare(b.Views, a.Views); c != 0 {
			return c
		}
		return b.LastViewedAt.Compare(a.LastViewedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Daily groups a prompt's views in [start, end) by UTC date, oldest first.
func (s *InMemory) Daily(_ context.Context, promptID id.PromptID, start, end time.Time) ([]models.DailyViewCount, error) {
	byDay := make(map[string]int64)
	s.each(start, end, []id.PromptID{promptID}, func(r models.ViewRecord) {
		byDay[r.ViewedAt.UTC().Format(time.DateOnly)]++
	})
	out := make([]models.DailyViewCount, 0, len(byDay))
	for day, n := range byDay {
		out = append(out, models.DailyViewCount{Date: day, ViewCount: n})
	}
	slices.SortFunc(out, func(a, b models.DailyViewCount) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return out, nil
}

// each visits records in [start, end) for ids. Zero bounds and empty ids do not filter.
func (s *InMemory) each(start, end time.Time, ids []id.PromptID, fn func(models.ViewRecord)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if !start.IsZero() && r.ViewedAt.Before(start) {
			continue
		}
		if !end.IsZero() && !r.ViewedAt.Before(end) {
			continue
		}
		if len(ids) > 0 && !slices.Contains(ids, r.PromptID) {
			continue
		}
		fn(r)
	}
}
