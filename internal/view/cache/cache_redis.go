package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"promptserver/internal/view/models"
	id "promptserver/pkg/domain"
)

const scanBatchSize = 100

// Redis keeps duplicate markers and pending view counts in Redis so every
// instance shares them.
type Redis struct {
	client       redis.UniversalClient
	duplicateTTL time.Duration
	countTTL     time.Duration
}

func NewRedis(client redis.UniversalClient, duplicateTTL, countTTL time.Duration) *Redis {
	return &Redis{client: client, duplicateTTL: duplicateTTL, countTTL: countTTL}
}

// MarkViewed sets the duplicate key and reports whether it was new (SETNX).
func (c *Redis) MarkViewed(ctx context.Context, key string) (bool, error) {
	ok, err := c.client.SetNX(ctx, key, "1", c.duplicateTTL).Result()
	if err != nil {
		return false, fmt.Errorf("mark viewed %s: %w", key, err)
	}
	return ok, nil
}

// Increment adds one pending view. The TTL is set when the key is created.
func (c *Redis) Increment(ctx context.Context, promptID id.PromptID) (int64, error) {
	key := models.CountKey(promptID)
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("increment %s: %w", key, err)
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, c.countTTL).Err(); err != nil {
			return n, fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return n, nil
}

func (c *Redis) Pending(ctx context.Context, promptID id.PromptID) (int64, error) {
	key := models.CountKey(promptID)
	n, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	return n, nil
}

// Take atomically reads and clears the pending count (GETDEL).
func (c *Redis) Take(ctx context.Context, promptID id.PromptID) (int64, error) {
	key := models.CountKey(promptID)
	n, err := c.client.GetDel(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("getdel %s: %w", key, err)
	}
	return n, nil
}

// Restore puts back a count that could not be synced.
func (c *Redis) Restore(ctx context.Context, promptID id.PromptID, n int64) error {
	if n <= 0 {
		return nil
	}
	key := models.CountKey(promptID)
	pipe := c.client.TxPipeline()
	pipe.IncrBy(ctx, key, n)
	pipe.Expire(ctx, key, c.countTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("restore %s: %w", key, err)
	}
	return nil
}

// PendingPromptIDs scans for count keys. Malformed keys are returned separately.
func (c *Redis) PendingPromptIDs(ctx context.Context) ([]id.PromptID, []string, error) {
	var (
		ids       []id.PromptID
		malformed []string
		cursor    uint64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, models.CountKeyPattern, scanBatchSize).Result()
		if err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", models.CountKeyPattern, err)
		}
		for _, key := range keys {
			promptID, err := models.PromptIDFromCountKey(key)
			if err != nil {
				malformed = append(malformed, key)
				continue
			}
			ids = append(ids, promptID)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, malformed, nil
}
