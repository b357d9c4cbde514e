package version

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptserver/internal/prompt/models"
	"promptserver/pkg/platform/sentinel"
)

func newVersion(t *testing.T, number int) *models.PromptVersion {
	t.Helper()
	v, err := models.NewPromptVersion(1, number, "content", "", []models.InputVariable{{Name: "topic"}}, models.ActionEdit, 7, time.Now())
	require.NoError(t, err)
	return v
}

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	latest, err := s.LatestNumber(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, latest)

	require.NoError(t, s.Create(ctx, newVersion(t, 1)))
	v2 := newVersion(t, 2)
	require.NoError(t, s.Create(ctx, v2))
	assert.True(t, errors.Is(s.Create(ctx, newVersion(t, 2)), sentinel.ErrConflict))

	latest, err = s.LatestNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, latest)

	list, err := s.ListByTemplate(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].VersionNumber)

	require.NoError(t, s.Delete(ctx, v2.ID))
	_, err = s.FindByNumber(ctx, 1, 2)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestPostgres_FindByNumberDecodesVariables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	versionUUID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`WHERE prompt_template_id = \$1 AND version_number = \$2`).
		WithArgs(int64(1), 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "prompt_template_id", "version_number", "content", "changes", "input_variables", "action_type", "created_by_id", "created_at"}).
			AddRow(int64(11), versionUUID.String(), int64(1), 3, "Hello {{name}}", "typo", []byte(`[{"name":"name","required":true}]`), "EDIT", int64(7), now))

	v, err := NewPostgres(db).FindByNumber(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, versionUUID, v.UUID)
	assert.Equal(t, []models.InputVariable{{Name: "name", Required: true}}, v.InputVariables)
	assert.Equal(t, models.ActionEdit, v.ActionType)
}

func TestPostgres_CreateConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO prompt_versions`).WillReturnError(errors.New("boom"))

	err = NewPostgres(db).Create(context.Background(), newVersion(t, 1))
	require.Error(t, err)
	assert.False(t, errors.Is(err, sentinel.ErrConflict))
}
