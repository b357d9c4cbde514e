package tag

import (
	"context"
	"slices"
	"sync"
	"time"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
)

type InMemory struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*models.Tag
	links  map[id.PromptID][]int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		byName: make(map[string]*models.Tag),
		links:  make(map[id.PromptID][]int64),
	}
}

// LoadOrCreate returns a tag per name, creating missing ones. Order follows names.
func (s *InMemory) LoadOrCreate(_ context.Context, names []string, now time.Time) ([]*models.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Tag, 0, len(names))
	for _, name := range models.NormalizeTags(names) {
		t, ok := s.byName[name]
		if !ok {
			created, err := models.NewTag(name, now)
			if err != nil {
				return nil, err
			}
			s.nextID++
			created.ID = s.nextID
			s.byName[name] = created
			t = created
		}
		found := *t
		out = append(out, &found)
	}
	return out, nil
}

func (s *InMemory) ReplacePromptTags(_ context.Context, promptID id.PromptID, tagIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[promptID] = slices.Clone(tagIDs)
	return nil
}

func (s *InMemory) TagIDs(promptID id.PromptID) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.links[promptID])
}
