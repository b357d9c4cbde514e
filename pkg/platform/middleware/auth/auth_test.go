package auth

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "promptserver/pkg/domain"
	"promptserver/pkg/requestcontext"
)

type stubValidator struct {
	claims *Claims
	err    error
}

func (s stubValidator) ValidateAccessToken(string) (*Claims, error) {
	return s.claims, s.err
}

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s stubRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revoked[jti], s.err
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRequireAuth(t *testing.T) {
	valid := stubValidator{claims: &Claims{UserID: 9, JTI: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}}

	run := func(mw func(http.Handler) http.Handler, header string) (*httptest.ResponseRecorder, id.UserID) {
		var got id.UserID
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = requestcontext.UserID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec, got
	}

	t.Run("missing header", func(t *testing.T) {
		rec, _ := run(RequireAuth(valid, nil, newLogger()), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec, _ := run(RequireAuth(stubValidator{err: errors.New("bad")}, nil, newLogger()), "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		rev := stubRevocations{revoked: map[string]bool{"jti-1": true}}
		rec, _ := run(RequireAuth(valid, rev, newLogger()), "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "revoked")
	})

	t.Run("blacklist failure is internal", func(t *testing.T) {
		rev := stubRevocations{err: errors.New("redis down")}
		rec, _ := run(RequireAuth(valid, rev, newLogger()), "Bearer abc")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("valid token sets user", func(t *testing.T) {
		rec, user := run(RequireAuth(valid, stubRevocations{}, newLogger()), "Bearer abc")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id.UserID(9), user)
	})

	t.Run("optional auth lets guests through", func(t *testing.T) {
		rec, user := run(OptionalAuth(valid, nil, newLogger()), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id.UserID(0), user)
	})

	t.Run("optional auth rejects bad token", func(t *testing.T) {
		rec, _ := run(OptionalAuth(stubValidator{err: errors.New("expired")}, nil, newLogger()), "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
