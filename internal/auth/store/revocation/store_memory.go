package revocation

import (
	"context"
	"sync"
	"time"
)

// InMemoryBlacklist is the single-instance blacklist used without Redis or Postgres.
type InMemoryBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	clock   Clock
}

func NewInMemoryBlacklist() *InMemoryBlacklist {
	return &InMemoryBlacklist{entries: make(map[string]time.Time), clock: time.Now}
}

func (b *InMemoryBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[jti] = b.clock().Add(ttl)
	return nil
}

func (b *InMemoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	expiresAt, ok := b.entries[jti]
	b.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if !b.clock().Before(expiresAt) {
		b.mu.Lock()
		delete(b.entries, jti)
		b.mu.Unlock()
		return false, nil
	}
	return true, nil
}
