package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	id "promptserver/pkg/domain"
)

type entry struct {
	value     int64
	expiresAt time.Time
}

// InMemory is a single-instance stand-in for Redis with the same TTL rules.
type InMemory struct {
	mu           sync.Mutex
	duplicates   map[string]time.Time
	counts       map[id.PromptID]entry
	duplicateTTL time.Duration
	countTTL     time.Duration
	now          func() time.Time
}

func NewInMemory(duplicateTTL, countTTL time.Duration) *InMemory {
	return &InMemory{
		duplicates:   make(map[string]time.Time),
		counts:       make(map[id.PromptID]entry),
		duplicateTTL: duplicateTTL,
		countTTL:     countTTL,
		now:          time.Now,
	}
}

// WithClock replaces the expiry clock. Used by tests.
func (c *InMemory) WithClock(now func() time.Time) *InMemory {
	c.now = now
	return c
}

func (c *InMemory) MarkViewed(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if exp, ok := c.duplicates[key]; ok && now.Before(exp) {
		return false, nil
	}
	c.duplicates[key] = now.Add(c.duplicateTTL)
	return true, nil
}

func (c *InMemory) Increment(_ context.Context, promptID id.PromptID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.live(promptID)
	if e.value == 0 {
		e.expiresAt = c.now().Add(c.countTTL)
	}
	e.value++
	c.counts[promptID] = e
	return e.value, nil
}

func (c *InMemory) Pending(_ context.Context, promptID id.PromptID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live(promptID).value, nil
}

func (c *InMemory) Take(_ context.Context, promptID id.PromptID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.live(promptID)
	delete(c.counts, promptID)
	return e.value, nil
}

func (c *InMemory) Restore(_ context.Context, promptID id.PromptID, n int64) error {
	if n <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.live(promptID)
	e.value += n
	e.expiresAt = c.now().Add(c.countTTL)
	c.counts[promptID] = e
	return nil
}

func (c *InMemory) PendingPromptIDs(_ context.Context) ([]id.PromptID, []string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]id.PromptID, 0, len(c.counts))
	for promptID := range c.counts {
		if c.live(promptID).value > 0 {
			ids = append(ids, promptID)
		}
	}
	slices.Sort(ids)
	return ids, nil, nil
}

// live returns the unexpired entry for promptID. Callers hold mu.
func (c *InMemory) live(promptID id.PromptID) entry {
	e, ok := c.counts[promptID]
	if !ok {
		return entry{}
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.counts, promptID)
		return entry{}
	}
	return e
}
