package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	id "promptserver/pkg/domain"
	"promptserver/pkg/requestcontext"
)

// JWTValidator validates access tokens.
type JWTValidator interface {
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// TokenRevocationChecker reports whether a token id was blacklisted on logout.
type TokenRevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Claims is the subset of access token claims the transport layer needs.
type Claims struct {
	UserID    id.UserID
	JTI       string
	ExpiresAt time.Time
}

type authenticator struct {
	validator JWTValidator
	revoked   TokenRevocationChecker
	logger    *slog.Logger
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

func bearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// authenticate returns the enriched context, or an HTTP status and message on failure.
func (a *authenticator) authenticate(ctx context.Context, token string) (context.Context, int, string) {
	requestID := requestcontext.RequestID(ctx)
	claims, err := a.validator.ValidateAccessToken(token)
	if err != nil {
		a.logger.WarnContext(ctx, "unauthorized access - invalid token",
			"error", err,
			"request_id", requestID,
		)
		return ctx, http.StatusUnauthorized, "Invalid or expired token"
	}

	if a.revoked != nil {
		if claims.JTI == "" {
			a.logger.WarnContext(ctx, "unauthorized access - missing token jti",
				"request_id", requestID,
			)
			return ctx, http.StatusUnauthorized, "Invalid or expired token"
		}
		revoked, err := a.revoked.IsRevoked(ctx, claims.JTI)
		if err != nil {
			a.logger.ErrorContext(ctx, "failed to check token blacklist",
				"error", err,
				"request_id", requestID,
			)
			return ctx, http.StatusInternalServerError, "Failed to validate token"
		}
		if revoked {
			a.logger.WarnContext(ctx, "unauthorized access - token revoked",
				"jti", claims.JTI,
				"request_id", requestID,
			)
			return ctx, http.StatusUnauthorized, "Token has been revoked"
		}
	}

	ctx = requestcontext.WithUserID(ctx, claims.UserID)
	ctx = requestcontext.WithAccessToken(ctx, requestcontext.Token{
		Raw:       token,
		JTI:       claims.JTI,
		ExpiresAt: claims.ExpiresAt,
	})
	return ctx, 0, ""
}

// RequireAuth rejects requests without a valid, non-revoked bearer token.
func RequireAuth(validator JWTValidator, revocationChecker TokenRevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	a := &authenticator{validator: validator, revoked: revocationChecker, logger: logger}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.WarnContext(r.Context(), "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(r.Context()),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}
			ctx, status, msg := a.authenticate(r.Context(), token)
			if status != 0 {
				code := "unauthorized"
				if status == http.StatusInternalServerError {
					code = "internal_error"
				}
				writeJSONError(w, status, code, msg)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth authenticates the request when a bearer token is present and
// otherwise lets it through anonymously. A present but invalid token is rejected
// so clients notice expired sessions instead of silently becoming guests.
func OptionalAuth(validator JWTValidator, revocationChecker TokenRevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	a := &authenticator{validator: validator, revoked: revocationChecker, logger: logger}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx, status, msg := a.authenticate(r.Context(), token)
			if status != 0 {
				code := "unauthorized"
				if status == http.StatusInternalServerError {
					code = "internal_error"
				}
				writeJSONError(w, status, code, msg)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
