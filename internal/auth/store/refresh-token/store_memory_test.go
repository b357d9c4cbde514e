package refreshtoken

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptserver/internal/auth/models"
	"promptserver/pkg/platform/sentinel"
)

func TestInMemoryRefreshTokenStore(t *testing.T) {
	ctx := context.Background()
	store := New()
	now := time.Now()

	_, err := store.FindByUserID(ctx, 1)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))

	require.NoError(t, store.Save(ctx, &models.RefreshToken{UserID: 1, Token: "first", ExpiresAt: now.Add(time.Hour), CreatedAt: now}))
	require.NoError(t, store.Save(ctx, &models.RefreshToken{UserID: 1, Token: "second", ExpiresAt: now.Add(time.Hour), CreatedAt: now}))

	found, err := store.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "second", found.Token, "save replaces the previous token")

	require.NoError(t, store.DeleteByUserID(ctx, 1))
	require.NoError(t, store.DeleteByUserID(ctx, 1))
	_, err = store.FindByUserID(ctx, 1)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}
