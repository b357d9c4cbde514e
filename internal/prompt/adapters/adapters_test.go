package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModels "promptserver/internal/auth/models"
	userstore "promptserver/internal/auth/store/user"
	categoryModels "promptserver/internal/category/models"
	categorystore "promptserver/internal/category/store"
	"promptserver/pkg/platform/sentinel"
)

func TestUserDirectoryAdapter(t *testing.T) {
	ctx := context.Background()
	store := userstore.New()
	email, err := authModels.NewEmail("jane@example.com")
	require.NoError(t, err)
	user, err := authModels.NewUser(email, "Jane", "hash", time.Now())
	require.NoError(t, err)
	team := int64(12)
	user.TeamID = &team
	require.NoError(t, store.Create(ctx, user))

	adapter := NewUserDirectoryAdapter(store)

	author, err := adapter.FindAuthor(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, author.ID)
	assert.Equal(t, "Jane", author.Name)
	assert.Equal(t, "jane@example.com", author.Email)
	require.NotNil(t, author.TeamID)
	assert.Equal(t, int64(12), *author.TeamID)

	_, err = adapter.FindAuthor(ctx, user.ID+100)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestCategoryDirectoryAdapter(t *testing.T) {
	ctx := context.Background()
	store := categorystore.NewInMemory()
	c, err := categoryModels.NewCategory("programming", "Programming", "", nil, true, time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, c))

	adapter := NewCategoryDirectoryAdapter(store)

	name, err := adapter.CategoryName(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Programming", name)

	_, err = adapter.CategoryName(ctx, c.ID+1)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}
