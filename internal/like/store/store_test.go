package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptserver/internal/like/models"
	"promptserver/pkg/platform/sentinel"
)

func TestInMemoryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	first, _ := models.NewLike(1, 10, now)
	require.NoError(t, store.Create(ctx, first))
	second, _ := models.NewLike(1, 11, now.Add(time.Minute))
	require.NoError(t, store.Create(ctx, second))

	dup, _ := models.NewLike(1, 10, now)
	assert.ErrorIs(t, store.Create(ctx, dup), sentinel.ErrConflict)

	likes, err := store.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, likes, 2)
	assert.Equal(t, second.ID, likes[0].ID)

	liked, err := store.Exists(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, store.Delete(ctx, 1, 10))
	assert.ErrorIs(t, store.Delete(ctx, 1, 10), sentinel.ErrNotFound)
}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := NewPostgres(db)

	mock.ExpectQuery(`INSERT INTO prompt_likes`).
		WithArgs(int64(2), int64(20), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery(`INSERT INTO prompt_likes`).
		WithArgs(int64(2), int64(20), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	l := &models.Like{UserID: 2, PromptID: 20, CreatedAt: time.Now()}
	require.NoError(t, store.Create(context.Background(), l))
	assert.Equal(t, int64(5), l.ID)

	err = store.Create(context.Background(), &models.Like{UserID: 2, PromptID: 20, CreatedAt: time.Now()})
	assert.ErrorIs(t, err, sentinel.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(2), int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	liked, err := NewPostgres(db).Exists(context.Background(), 2, 20)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
