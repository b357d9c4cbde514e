package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
)

func TestNewFavorite(t *testing.T) {
	_, err := NewFavorite(0, 1, time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewFavorite(1, 0, time.Now())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	f, err := NewFavorite(1, 2, time.Now())
	require.NoError(t, err)
	assert.Zero(t, f.ID)
}

func TestNewSearchCondition(t *testing.T) {
	cond := NewSearchCondition(3, "  go ", "", "", page.Request{})
	assert.Equal(t, "go", cond.Keyword)
	assert.Equal(t, SortCreatedAt, cond.Sort)
	assert.False(t, cond.Ascending)
	assert.Equal(t, page.DefaultSize, cond.Page.Size)

	cond = NewSearchCondition(3, "", "TITLE", "ASC", page.Request{Size: 500})
	assert.Equal(t, SortTitle, cond.Sort)
	assert.True(t, cond.Ascending)
	assert.Equal(t, page.MaxSize, cond.Page.Size)
}
