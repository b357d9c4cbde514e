package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "promptserver/pkg/domain"
)

func TestAccessors(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, id.UserID(0), UserID(ctx))
	assert.Empty(t, RequestID(ctx))
	_, ok := AccessToken(ctx)
	assert.False(t, ok)

	fixed := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	ctx = WithUserID(ctx, 7)
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTime(ctx, fixed)
	ctx = WithClientMetadata(ctx, "10.0.0.1", "curl/8")
	ctx = WithAnonymousID(ctx, "anon-1")
	ctx = WithAccessToken(ctx, Token{JTI: "jti-1"})

	assert.Equal(t, id.UserID(7), UserID(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, fixed, Now(ctx))
	assert.Equal(t, "10.0.0.1", ClientIP(ctx))
	assert.Equal(t, "curl/8", UserAgent(ctx))
	assert.Equal(t, "anon-1", AnonymousID(ctx))
	tok, ok := AccessToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jti-1", tok.JTI)
}
