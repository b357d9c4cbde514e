package metadata

import (
	"net/http"
	"strings"

	"promptserver/pkg/requestcontext"
)

// AnonymousCookie is the cookie carrying the visitor id of unauthenticated clients.
const AnonymousCookie = "anonymous_id"

// ClientMetadata extracts client IP, User-Agent and the anonymous visitor id
// from the request and adds them to the context for handlers and services.
// This middleware should be applied early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), r.Header.Get("User-Agent"))
		if c, err := r.Cookie(AnonymousCookie); err == nil && strings.TrimSpace(c.Value) != "" {
			ctx = requestcontext.WithAnonymousID(ctx, strings.TrimSpace(c.Value))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For is "client, proxy1, proxy2"; the first entry is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" && !strings.EqualFold(ip, "unknown") {
			return ip
		}
	}

	// Used by nginx and other proxies.
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" && !strings.EqualFold(xri, "unknown") {
		return xri
	}

	// RemoteAddr is "ip:port" or "[::1]:port".
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}

	return "unknown"
}
