//go:build integration

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"promptserver/internal/platform/kafka"
	platformredis "promptserver/internal/platform/redis"
	"promptserver/pkg/testutil"
	"promptserver/pkg/testutil/containers"
)

// BackedServerSuite runs the assembled server against real Postgres, Redis
// and Redpanda containers.
type BackedServerSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	redis    *containers.RedisContainer
	redpanda *containers.RedpandaContainer
	app      *app
	infra    *infra
	topic    string
}

func TestBackedServerSuite(t *testing.T) {
	suite.Run(t, new(BackedServerSuite))
}

func (s *BackedServerSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.redis = mgr.GetRedis(s.T())
	s.redpanda = mgr.GetRedpanda(s.T())
}

func (s *BackedServerSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx,
		"view_records", "prompt_likes", "favorites", "prompt_template_tags", "tags",
		"prompt_search_documents", "prompt_versions", "prompt_templates", "categories",
		"token_blacklist", "login_histories", "refresh_tokens", "users",
	))
	s.Require().NoError(s.redis.FlushAll(ctx))

	cfg := testConfig()
	cfg.Kafka.Brokers = s.redpanda.Brokers
	s.topic = "promptserver.audit." + uuid.NewString()[:8]
	cfg.Kafka.AuditTopic = s.topic

	kc, err := kafka.NewClient(ctx, cfg.Kafka)
	s.Require().NoError(err)
	s.Require().NoError(kafka.EnsureTopic(ctx, kc, s.topic, 1, 1))

	s.infra = &infra{
		db:    s.postgres.DB,
		redis: &platformredis.Client{Client: s.redis.Client},
		kafka: kc,
	}
	s.app, err = newApp(ctx, cfg, slog.New(slog.DiscardHandler), s.infra)
	s.Require().NoError(err)
}

func (s *BackedServerSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.app.shutdown(ctx)
	// The database and redis connections belong to the shared containers.
	s.infra.kafka.Close()
}

func (s *BackedServerSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	return do(s.T(), s.app.router, method, path, token, body)
}

func (s *BackedServerSuite) login(email string) string {
	rec := s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    email,
		"password": "Secret123!",
		"name":     "Grace",
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "Secret123!",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	tokens := testutil.UnmarshalResponse[struct {
		AccessToken string `json:"accessToken"`
	}](s.T(), rec)
	return tokens.AccessToken
}

func (s *BackedServerSuite) TestHealthPingsBackends() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *BackedServerSuite) TestPromptLifecyclePersists() {
	token := s.login("grace@example.com")

	rec := s.do(http.MethodPost, "/api/v1/prompts", token, map[string]any{
		"title":      "Release notes writer",
		"content":    "Turn the following commit log into release notes.",
		"visibility": "PUBLIC",
		"status":     "PUBLISHED",
		"tags":       []string{"writing", "changelog"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := testutil.UnmarshalResponse[struct {
		ID string `json:"id"`
	}](s.T(), rec)
	s.Require().NotEmpty(created.ID)
	promptPath := "/api/v1/prompts/" + created.ID

	s.Run("search finds the prompt through the full-text index", func() {
		rec := s.do(http.MethodGet, "/api/v1/prompts/search?q=release", "", nil)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		result := testutil.UnmarshalResponse[struct {
			TotalElements int `json:"totalElements"`
		}](s.T(), rec)
		s.Equal(1, result.TotalElements)
	})

	s.Run("like is stored once per user", func() {
		rec := s.do(http.MethodPost, promptPath+"/like", token, nil)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		liked := testutil.UnmarshalResponse[struct {
			LikeCount int64 `json:"likeCount"`
		}](s.T(), rec)
		s.EqualValues(1, liked.LikeCount)

		rec = s.do(http.MethodPost, promptPath+"/like", token, nil)
		testutil.AssertStatusAndError(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("favorite is stored once per user", func() {
		rec := s.do(http.MethodPost, promptPath+"/favorite", token, nil)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		rec = s.do(http.MethodPost, promptPath+"/favorite", token, nil)
		testutil.AssertStatusAndError(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("repeat views inside the window are not counted twice", func() {
		rec := s.do(http.MethodPost, promptPath+"/view", "", map[string]string{"anonymousId": "visitor-1"})
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		first := testutil.UnmarshalResponse[struct {
			IsNewView bool `json:"isNewView"`
		}](s.T(), rec)
		s.True(first.IsNewView)

		rec = s.do(http.MethodPost, promptPath+"/view", "", map[string]string{"anonymousId": "visitor-1"})
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		second := testutil.UnmarshalResponse[struct {
			IsNewView bool `json:"isNewView"`
		}](s.T(), rec)
		s.False(second.IsNewView)
	})

	s.Run("dashboard counts come from postgres", func() {
		rec := s.do(http.MethodGet, "/api/v1/dashboard/prompt-statistics", token, nil)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		prompts := testutil.UnmarshalResponse[struct {
			TotalCount     int64 `json:"totalCount"`
			PublishedCount int64 `json:"publishedCount"`
		}](s.T(), rec)
		s.EqualValues(1, prompts.TotalCount)
		s.EqualValues(1, prompts.PublishedCount)
	})

	s.Run("logout revokes the access token", func() {
		rec := s.do(http.MethodPost, "/api/auth/logout", token, nil)
		s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		rec = s.do(http.MethodGet, "/api/auth/login-history", token, nil)
		testutil.AssertStatusAndError(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})
}

func (s *BackedServerSuite) TestAuditEventsReachKafka() {
	s.login("ada@example.com")

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Brokers...),
		kgo.ConsumeTopics(s.topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seen := map[string]bool{}
	for !(seen["user_created"] && seen["login_succeeded"]) {
		fetches := consumer.PollFetches(ctx)
		if ctx.Err() != nil {
			s.FailNow("timed out waiting for audit events", "seen: %v", seen)
		}
		require.Empty(s.T(), fetches.Errors())
		fetches.EachRecord(func(r *kgo.Record) {
			var event struct {
				Action  string `json:"action"`
				Subject string `json:"subject"`
			}
			if assert.NoError(s.T(), json.Unmarshal(r.Value, &event)) {
				seen[event.Action] = true
			}
		})
	}
}
