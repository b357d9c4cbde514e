// Package store holds the search index implementations.
package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"promptserver/internal/search/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/page"
)

// Field weights for in-memory scoring. Title matches rank highest.
const (
	weightTitle       = 4.0
	weightTags        = 3.0
	weightDescription = 2.0
	weightContent     = 1.0
)

type InMemory struct {
	mu   sync.RWMutex
	docs map[id.PromptID]models.Document
}

func NewInMemory() *InMemory {
	return &InMemory{docs: make(map[id.PromptID]models.Document)}
}

func (s *InMemory) Upsert(_ context.Context, doc models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Tags = slices.Clone(doc.Tags)
	s.docs[doc.PromptID] = doc
	return nil
}

func (s *InMemory) Remove(_ context.Context, promptID id.PromptID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, promptID)
	return nil
}

func (s *InMemory) Search(_ context.Context, q models.Query) ([]models.Hit, int, error) {
	q = q.Normalize()
	keyword := strings.ToLower(q.Keyword)

	s.mu.RLock()
	type scored struct {
		hit models.Hit
		doc models.Document
	}
	var matched []scored
	for _, doc := range s.docs {
		if !doc.Searchable() {
			continue
		}
		if score := scoreDocument(doc, keyword); score > 0 {
			matched = append(matched, scored{hit: models.Hit{PromptID: doc.PromptID, Score: score}, doc: doc})
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b scored) int {
		if a.hit.Score != b.hit.Score {
			if a.hit.Score > b.hit.Score {
				return -1
			}
			return 1
		}
		return b.doc.UpdatedAt.Compare(a.doc.UpdatedAt)
	})

	hits := make([]models.Hit, 0, len(matched))
	for _, m := range matched {
		hits = append(hits, m.hit)
	}
	result := page.Slice(hits, q.Page)
	return result.Content, result.TotalElements, nil
}

func scoreDocument(doc models.Document, keyword string) float64 {
	var score float64
	if strings.Contains(strings.ToLower(doc.Title), keyword) {
		score += weightTitle
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			score += weightTags
			break
		}
	}
	if strings.Contains(strings.ToLower(doc.Description), keyword) {
		score += weightDescription
	}
	if strings.Contains(strings.ToLower(doc.Content), keyword) {
		score += weightContent
	}
	return score
}
