package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

var now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTemplate(t *testing.T) *PromptTemplate {
	t.Helper()
	tpl, err := NewPromptTemplate(uuid.Nil, " Title ", "desc", nil, 7, "", "", []string{" go ", "", "go", "ai"}, now)
	require.NoError(t, err)
	return tpl
}

func TestNewPromptTemplate(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		tpl := newTemplate(t)
		assert.NotEqual(t, uuid.Nil, tpl.UUID)
		assert.Equal(t, "Title", tpl.Title)
		assert.Equal(t, VisibilityPrivate, tpl.Visibility)
		assert.Equal(t, StatusDraft, tpl.Status)
		assert.Equal(t, []string{"go", "ai"}, tpl.Tags)
	})

	t.Run("normalizes tag names", func(t *testing.T) {
		tpl, err := NewPromptTemplate(uuid.Nil, "Title", "", nil, 7, "", "", []string{"code  review", "code review "}, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"code review"}, tpl.Tags)

		tpl, err = NewPromptTemplate(uuid.Nil, "Title", "", nil, 7, "", "", nil, now)
		require.NoError(t, err)
		assert.NotNil(t, tpl.Tags)
		assert.Empty(t, tpl.Tags)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		cases := map[string]func() error{
			"blank title": func() error {
				_, err := NewPromptTemplate(uuid.Nil, " ", "", nil, 7, "", "", nil, now)
				return err
			},
			"long title": func() error {
				_, err := NewPromptTemplate(uuid.Nil, strings.Repeat("가", 201), "", nil, 7, "", "", nil, now)
				return err
			},
			"long description": func() error {
				_, err := NewPromptTemplate(uuid.Nil, "t", strings.Repeat("x", 1001), nil, 7, "", "", nil, now)
				return err
			},
			"missing author": func() error {
				_, err := NewPromptTemplate(uuid.Nil, "t", "", nil, 0, "", "", nil, now)
				return err
			},
		}
		for name, fn := range cases {
			err := fn()
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation), name)
		}
	})

	t.Run("title length counts runes", func(t *testing.T) {
		_, err := NewPromptTemplate(uuid.Nil, strings.Repeat("가", 200), "", nil, 7, "", "", nil, now)
		assert.NoError(t, err)
	})
}

func TestPromptTemplate_Permissions(t *testing.T) {
	tpl := newTemplate(t)
	assert.True(t, tpl.CanView(7))
	assert.False(t, tpl.CanView(8))
	assert.False(t, tpl.CanView(0))
	assert.False(t, tpl.IsAuthor(0))

	tpl.Visibility = VisibilityPublic
	assert.True(t, tpl.CanView(0))

	_, err := tpl.MarkDeleted(now)
	require.NoError(t, err)
	assert.False(t, tpl.CanView(7))
}

func TestPromptTemplate_MarkDeleted(t *testing.T) {
	tpl := newTemplate(t)
	tpl.Status = StatusPublished

	prev, err := tpl.MarkDeleted(now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, prev)
	assert.Equal(t, StatusDeleted, tpl.Status)
	assert.Equal(t, now.Add(time.Hour), tpl.UpdatedAt)

	_, err = tpl.MarkDeleted(now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestPromptTemplate_UpdateKeepsStateOnError(t *testing.T) {
	tpl := newTemplate(t)
	err := tpl.Update("", "d", nil, VisibilityPublic, StatusPublished, nil, now)
	require.Error(t, err)
	assert.Equal(t, "Title", tpl.Title)
	assert.Equal(t, StatusDraft, tpl.Status)
}

func TestPromptTemplate_SetCurrentVersion(t *testing.T) {
	tpl := newTemplate(t)
	assert.Error(t, tpl.SetCurrentVersion(0, now))
	require.NoError(t, tpl.SetCurrentVersion(3, now))
	assert.EqualValues(t, 3, tpl.CurrentVersionID)
}

func TestPromptStats_FloorAtZero(t *testing.T) {
	s := PromptStats{FavoriteCount: 1, LikeCount: 0}
	s = s.WithFavoriteDelta(-1).WithFavoriteDelta(-1).WithLikeDelta(-5).WithViews(3)
	assert.Zero(t, s.FavoriteCount)
	assert.Zero(t, s.LikeCount)
	assert.EqualValues(t, 3, s.ViewCount)
}

func TestNewPromptVersion(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v, err := NewPromptVersion(1, 1, "Hello {{name}}", "initial creation", []InputVariable{{Name: "name", Required: true}}, ActionCreate, 7, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, v.UUID)
		assert.True(t, v.SameBody("Hello {{name}}", []InputVariable{{Name: "name", Required: true}}))
		assert.False(t, v.SameBody("Hello {{name}}", nil))
		assert.False(t, v.SameBody("Hi", []InputVariable{{Name: "name", Required: true}}))
	})

	t.Run("invalid", func(t *testing.T) {
		cases := []struct {
			name   string
			tpl    id.PromptID
			number int
			body   string
			vars   []InputVariable
			action ActionType
			author id.UserID
		}{
			{"missing template", 0, 1, "c", nil, ActionCreate, 7},
			{"blank content", 1, 1, "  ", nil, ActionCreate, 7},
			{"version zero", 1, 0, "c", nil, ActionCreate, 7},
			{"missing action", 1, 1, "c", nil, "", 7},
			{"missing author", 1, 1, "c", nil, ActionCreate, 0},
			{"blank variable", 1, 1, "c", []InputVariable{{Name: " "}}, ActionCreate, 7},
			{"duplicate variable", 1, 1, "c", []InputVariable{{Name: "a"}, {Name: "a"}}, ActionCreate, 7},
		}
		for _, tc := range cases {
			_, err := NewPromptVersion(tc.tpl, tc.number, tc.body, "", tc.vars, tc.action, tc.author, now)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation), tc.name)
		}
	})
}

func TestParsers(t *testing.T) {
	assert.Equal(t, VisibilityPublic, ParseVisibility("public", VisibilityPrivate))
	assert.Equal(t, VisibilityPrivate, ParseVisibility("world", VisibilityPrivate))
	assert.Equal(t, StatusArchived, ParseStatus(" Archived ", StatusDraft))
	assert.Equal(t, StatusDraft, ParseStatus("", StatusDraft))
	assert.Equal(t, SortMostViews, ParseSortType("most_views"))
	assert.Equal(t, SortLatestModified, ParseSortType("random"))
	assert.Equal(t, ActionPublish, ActionForStatus(StatusPublished))
	assert.Equal(t, ActionArchive, ActionForStatus(StatusArchived))
	assert.Equal(t, ActionEdit, ActionForStatus(StatusDraft))
}

func TestFilter_Matches(t *testing.T) {
	tpl := newTemplate(t)
	tpl.Status = StatusPublished
	tpl.Visibility = VisibilityPublic
	cat := id.CategoryID(3)
	tpl.CategoryID = &cat

	author := id.UserID(7)
	other := id.UserID(8)
	otherCat := id.CategoryID(4)

	assert.True(t, Filter{}.Matches(tpl))
	assert.True(t, Filter{AuthorID: &author, CategoryID: &cat}.Matches(tpl))
	assert.False(t, Filter{AuthorID: &other}.Matches(tpl))
	assert.False(t, Filter{CategoryID: &otherCat}.Matches(tpl))
	assert.True(t, Filter{Tag: "A"}.Matches(tpl))
	assert.True(t, Filter{Keyword: "titl"}.Matches(tpl))
	assert.False(t, Filter{Keyword: "nothing"}.Matches(tpl))
	assert.False(t, Filter{Statuses: []Status{StatusDraft}}.Matches(tpl))
	assert.False(t, Filter{Visibilities: []Visibility{VisibilityTeam}}.Matches(tpl))

	tpl.Status = StatusDeleted
	assert.False(t, Filter{}.Matches(tpl))
	assert.True(t, Filter{IncludeDeleted: true}.Matches(tpl))
}

func TestFilter_Less(t *testing.T) {
	a := &PromptTemplate{Title: "a", UpdatedAt: now, Stats: PromptStats{LikeCount: 1, ViewCount: 9}}
	b := &PromptTemplate{Title: "b", UpdatedAt: now.Add(time.Minute), Stats: PromptStats{LikeCount: 1, ViewCount: 2}}

	assert.True(t, Filter{Sort: SortTitle}.Less(a, b))
	assert.True(t, Filter{Sort: SortLatestModified}.Less(b, a))
	assert.True(t, Filter{Sort: SortMostFavorite}.Less(b, a), "equal likes fall back to updated_at")
	assert.True(t, Filter{Sort: SortMostViews}.Less(a, b))
}

func TestNewMyStatistics(t *testing.T) {
	s := NewMyStatistics(map[Status]int{StatusDraft: 2, StatusPublished: 3, StatusArchived: 1, StatusDeleted: 9})
	assert.Equal(t, MyStatistics{TotalCount: 6, DraftCount: 2, PublishedCount: 3, ArchivedCount: 1}, s)
}
