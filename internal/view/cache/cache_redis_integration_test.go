//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"promptserver/internal/view/cache"
	id "promptserver/pkg/domain"
	"promptserver/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.cache = cache.NewRedis(s.redis.Client, time.Hour, 24*time.Hour)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestMarkViewedIsSetNX() {
	ctx := context.Background()

	isNew, err := s.cache.MarkViewed(ctx, "view:anon:abc:prompt:1")
	s.Require().NoError(err)
	s.True(isNew)

	isNew, err = s.cache.MarkViewed(ctx, "view:anon:abc:prompt:1")
	s.Require().NoError(err)
	s.False(isNew)

	ttl, err := s.redis.Client.TTL(ctx, "view:anon:abc:prompt:1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, 59*time.Minute)
}

func (s *RedisCacheSuite) TestIncrementSetsTTLOnFirstView() {
	ctx := context.Background()

	n, err := s.cache.Increment(ctx, 5)
	s.Require().NoError(err)
	s.EqualValues(1, n)
	n, err = s.cache.Increment(ctx, 5)
	s.Require().NoError(err)
	s.EqualValues(2, n)

	ttl, err := s.redis.Client.TTL(ctx, "viewcount:5").Result()
	s.Require().NoError(err)
	s.Greater(ttl, 23*time.Hour)
}

func (s *RedisCacheSuite) TestTakeClearsAndRestorePutsBack() {
	ctx := context.Background()
	for range 4 {
		_, err := s.cache.Increment(ctx, 8)
		s.Require().NoError(err)
	}

	taken, err := s.cache.Take(ctx, 8)
	s.Require().NoError(err)
	s.EqualValues(4, taken)

	pending, err := s.cache.Pending(ctx, 8)
	s.Require().NoError(err)
	s.Zero(pending)

	s.Require().NoError(s.cache.Restore(ctx, 8, 4))
	pending, err = s.cache.Pending(ctx, 8)
	s.Require().NoError(err)
	s.EqualValues(4, pending)
}

func (s *RedisCacheSuite) TestPendingPromptIDsSkipsMalformedKeys() {
	ctx := context.Background()
	_, err := s.cache.Increment(ctx, 1)
	s.Require().NoError(err)
	_, err = s.cache.Increment(ctx, 2)
	s.Require().NoError(err)
	s.Require().NoError(s.redis.Client.Set(ctx, "viewcount:junk", "3", 0).Err())

	ids, malformed, err := s.cache.PendingPromptIDs(ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]id.PromptID{1, 2}, ids)
	s.Equal([]string{"viewcount:junk"}, malformed)
}
