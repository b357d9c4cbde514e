package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptserver/internal/search/models"
	"promptserver/internal/search/store"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
)

type failingIndex struct{}

func (failingIndex) Upsert(context.Context, models.Document) error { return errors.New("index down") }
func (failingIndex) Remove(context.Context, id.PromptID) error     { return errors.New("index down") }
func (failingIndex) Search(context.Context, models.Query) ([]models.Hit, int, error) {
	return nil, 0, errors.New("index down")
}

func TestService_SearchPagesIDs(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewInMemory(), WithLogger(slog.New(slog.DiscardHandler)))

	for i := 1; i <= 3; i++ {
		require.NoError(t, svc.Index(ctx, models.Document{
			PromptID:   id.PromptID(i),
			Title:      "Prompt about go",
			Visibility: models.VisibilityPublic,
			Status:     models.StatusPublished,
			UpdatedAt:  time.Date(2026, 1, i, 0, 0, 0, 0, time.UTC),
		}))
	}

	result, err := svc.Search(ctx, models.Query{Keyword: "go", Page: page.Request{Page: 0, Size: 2}})
	require.NoError(t, err)
	assert.Equal(t, []id.PromptID{3, 2}, result.Content)
	assert.Equal(t, 3, result.TotalElements)
	assert.Equal(t, 2, result.TotalPages)
}

func TestService_SearchRequiresKeyword(t *testing.T) {
	_, err := New(store.NewInMemory()).Search(context.Background(), models.Query{Keyword: "  "})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestService_IndexFailuresAreInternal(t *testing.T) {
	svc := New(failingIndex{})
	ctx := context.Background()

	assert.True(t, dErrors.HasCode(svc.Index(ctx, models.Document{PromptID: 1}), dErrors.CodeInternal))
	assert.True(t, dErrors.HasCode(svc.Remove(ctx, 1), dErrors.CodeInternal))
	_, err := svc.Search(ctx, models.Query{Keyword: "x"})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
