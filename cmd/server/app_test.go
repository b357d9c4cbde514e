package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorystore "promptserver/internal/category/store"
	"promptserver/internal/platform/config"
	"promptserver/pkg/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.Server{Addr: ":0", ShutdownTimeout: 5 * time.Second},
		Auth: config.AuthConfig{
			JWTSigningKey:   "test-signing-key-0123456789",
			Issuer:          "promptserver",
			Audience:        "promptserver-api",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
			AdminToken:      "operator",
		},
		View: config.ViewConfig{
			DuplicateTTL:         time.Hour,
			CountCacheTTL:        24 * time.Hour,
			SyncSpec:             "@every 30m",
			ConsistencySpec:      "0 2 * * *",
			SyncTimeout:          time.Minute,
			SyncConcurrency:      2,
			ConsistencyThreshold: 10,
		},
		RateLimit: config.RateLimitConfig{ViewRPS: 50, LoginRPS: 50, Burst: 50},
		Kafka:     config.KafkaConfig{AuditTopic: "promptserver.audit"},
	}
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	ctx := context.Background()
	a, err := newApp(ctx, testConfig(), slog.New(slog.DiscardHandler), &infra{})
	require.NoError(t, err)
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		a.shutdown(shutdownCtx)
	})
	return a
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.DoRequest(h, testutil.WithBearer(testutil.NewJSONRequest(t, method, path, body), token))
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t)

	rec := do(t, a.router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(t, a.router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "promptserver_http_requests_total")
}

func TestInMemoryServerSeedsSystemCategories(t *testing.T) {
	a := newTestApp(t)

	rec := do(t, a.router, http.MethodGet, "/api/v1/categories/roots", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	roots := testutil.UnmarshalResponse[[]map[string]any](t, rec)
	assert.Len(t, roots, len(categorystore.SystemCategories))
}

func TestSignUpToDashboard(t *testing.T) {
	a := newTestApp(t)

	rec := do(t, a.router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "ada@example.com",
		"password": "Secret123!",
		"name":     "Ada",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, a.router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "ada@example.com",
		"password": "Secret123!",
		"name":     "Ada again",
	})
	testutil.AssertStatusAndError(t, rec, http.StatusConflict, "conflict")

	rec = do(t, a.router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "Secret123!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tokens := testutil.UnmarshalResponse[struct {
		AccessToken string `json:"accessToken"`
	}](t, rec)
	require.NotEmpty(t, tokens.AccessToken)

	rec = do(t, a.router, http.MethodGet, "/api/v1/dashboard/prompt-statistics", "", nil)
	testutil.AssertStatusAndError(t, rec, http.StatusUnauthorized, "unauthorized")

	rec = do(t, a.router, http.MethodPost, "/api/v1/prompts", tokens.AccessToken, map[string]any{
		"title":      "Summarize",
		"content":    "Summarize the following text in three sentences.",
		"visibility": "PUBLIC",
		"status":     "PUBLISHED",
		"tags":       []string{"writing"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, a.router, http.MethodGet, "/api/v1/dashboard/prompt-statistics", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	prompts := testutil.UnmarshalResponse[struct {
		TotalCount     int64 `json:"totalCount"`
		PublishedCount int64 `json:"publishedCount"`
		CurrentCount   int64 `json:"currentCount"`
	}](t, rec)
	assert.EqualValues(t, 1, prompts.TotalCount)
	assert.EqualValues(t, 1, prompts.PublishedCount)
	assert.EqualValues(t, 1, prompts.CurrentCount)

	rec = do(t, a.router, http.MethodGet, "/api/v1/dashboard/user-statistics", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	users := testutil.UnmarshalResponse[struct {
		TotalCount int64 `json:"totalCount"`
	}](t, rec)
	assert.EqualValues(t, 1, users.TotalCount)

	rec = do(t, a.router, http.MethodPost, "/api/v1/admin/views/sync", "", nil)
	testutil.AssertStatusAndError(t, rec, http.StatusForbidden, "forbidden")
}

func TestAdvancedSearchNeverReturnsDeletedPrompts(t *testing.T) {
	a := newTestApp(t)

	rec := do(t, a.router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "grace@example.com",
		"password": "Secret123!",
		"name":     "Grace",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, a.router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "grace@example.com",
		"password": "Secret123!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := testutil.UnmarshalResponse[struct {
		AccessToken string `json:"accessToken"`
	}](t, rec).AccessToken

	rec = do(t, a.router, http.MethodPost, "/api/v1/prompts", token, map[string]any{
		"title":      "SecretDeleted",
		"content":    "Internal notes that should stay hidden.",
		"visibility": "PRIVATE",
		"status":     "DRAFT",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	promptID := testutil.UnmarshalResponse[struct {
		ID string `json:"id"`
	}](t, rec).ID

	rec = do(t, a.router, http.MethodDelete, "/api/v1/prompts/"+promptID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, a.router, http.MethodGet, "/api/v1/prompts/advanced-search?title=SecretDeleted&includeDeleted=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := testutil.UnmarshalResponse[struct {
		TotalElements int `json:"totalElements"`
	}](t, rec)
	assert.Zero(t, result.TotalElements)
	assert.NotContains(t, rec.Body.String(), "SecretDeleted")

	rec = do(t, a.router, http.MethodGet, "/api/v1/prompts/advanced-search?status=DELETED&includeDeleted=true", "", nil)
	testutil.AssertStatusAndError(t, rec, http.StatusBadRequest, "validation_error")
}

func signUpAndLogin(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    email,
		"password": "Secret123!",
		"name":     "Grace",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "Secret123!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return testutil.UnmarshalResponse[struct {
		AccessToken string `json:"accessToken"`
	}](t, rec).AccessToken
}

func TestPrivatePromptsRejectEngagementFromOthers(t *testing.T) {
	a := newTestApp(t)
	author := signUpAndLogin(t, a.router, "author@example.com")
	other := signUpAndLogin(t, a.router, "other@example.com")

	rec := do(t, a.router, http.MethodPost, "/api/v1/prompts", author, map[string]any{
		"title":      "Private drafts",
		"content":    "Only the author reads this.",
		"visibility": "PRIVATE",
		"status":     "DRAFT",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	promptPath := "/api/v1/prompts/" + testutil.UnmarshalResponse[struct {
		ID string `json:"id"`
	}](t, rec).ID

	for _, tc := range []struct {
		method, path, token string
	}{
		{http.MethodPost, promptPath + "/like", other},
		{http.MethodGet, promptPath + "/like-status", other},
		{http.MethodPost, promptPath + "/favorite", other},
		{http.MethodPost, promptPath + "/view", other},
		{http.MethodGet, promptPath + "/view-count", ""},
	} {
		rec := do(t, a.router, tc.method, tc.path, tc.token, nil)
		testutil.AssertStatusAndError(t, rec, http.StatusForbidden, "forbidden")
	}

	rec = do(t, a.router, http.MethodPost, promptPath+"/like", author, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
