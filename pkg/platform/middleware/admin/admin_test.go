package admin

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdminToken(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	cases := []struct {
		name     string
		expected string
		header   string
		want     int
	}{
		{"missing header", "s3cret", "", http.StatusForbidden},
		{"wrong token", "s3cret", "guess", http.StatusForbidden},
		{"disabled when unset", "", "", http.StatusForbidden},
		{"matching token", "s3cret", "s3cret", http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := RequireAdminToken(tc.expected, slog.New(slog.DiscardHandler))(ok)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", nil)
			if tc.header != "" {
				req.Header.Set(HeaderName, tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
