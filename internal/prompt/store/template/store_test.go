package template

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/platform/sentinel"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
}

func (s *InMemorySuite) add(title string, author id.UserID, status models.Status, visibility models.Visibility, offset time.Duration, tags ...string) *models.PromptTemplate {
	t, err := models.NewPromptTemplate(uuid.Nil, title, "", nil, author, visibility, status, tags, s.now.Add(offset))
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, t))
	return t
}

func (s *InMemorySuite) TestListFiltersAndSorts() {
	s.add("beta", 1, models.StatusPublished, models.VisibilityPublic, time.Minute, "go")
	s.add("alpha", 1, models.StatusPublished, models.VisibilityPublic, 2*time.Minute)
	s.add("gamma", 2, models.StatusDraft, models.VisibilityPrivate, 3*time.Minute, "golang")
	deleted := s.add("delta", 1, models.StatusPublished, models.VisibilityPublic, 4*time.Minute)
	_, err := deleted.MarkDeleted(s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Update(s.ctx, deleted))

	items, total, err := s.store.List(s.ctx, models.Filter{}, page.Request{Size: 10})
	s.Require().NoError(err)
	s.Equal(3, total)
	s.Equal([]string{"gamma", "alpha", "beta"}, titles(items))

	items, _, err = s.store.List(s.ctx, models.Filter{Sort: models.SortTitle}, page.Request{Size: 10})
	s.Require().NoError(err)
	s.Equal([]string{"alpha", "beta", "gamma"}, titles(items))

	items, total, err = s.store.List(s.ctx, models.Filter{Tag: "GO"}, page.Request{Size: 1})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(items, 1)

	items, total, err = s.store.List(s.ctx, models.Filter{IncludeDeleted: true}, page.Request{Size: 10})
	s.Require().NoError(err)
	s.Equal(4, total)
}

func (s *InMemorySuite) TestUpdateKeepsCounters() {
	t := s.add("t", 1, models.StatusDraft, models.VisibilityPrivate, 0)
	n, err := s.store.AdjustLikeCount(s.ctx, t.ID, 1)
	s.Require().NoError(err)
	s.EqualValues(1, n)

	t.Title = "renamed"
	s.Require().NoError(s.store.Update(s.ctx, t))

	found, err := s.store.FindByUUID(s.ctx, t.UUID)
	s.Require().NoError(err)
	s.Equal("renamed", found.Title)
	s.EqualValues(1, found.Stats.LikeCount)
}

func (s *InMemorySuite) TestCountersFloorAtZero() {
	t := s.add("t", 1, models.StatusDraft, models.VisibilityPrivate, 0)
	n, err := s.store.AdjustFavoriteCount(s.ctx, t.ID, -1)
	s.Require().NoError(err)
	s.Zero(n)

	s.Require().NoError(s.store.AddViewCount(s.ctx, t.ID, 5))
	counts, err := s.store.ViewCounts(s.ctx, nil)
	s.Require().NoError(err)
	s.EqualValues(5, counts[t.ID])

	_, err = s.store.AdjustLikeCount(s.ctx, 999, 1)
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

func (s *InMemorySuite) TestFindByIDsKeepsOrder() {
	a := s.add("a", 1, models.StatusDraft, models.VisibilityPrivate, 0)
	b := s.add("b", 1, models.StatusDraft, models.VisibilityPrivate, 0)

	found, err := s.store.FindByIDs(s.ctx, []id.PromptID{b.ID, 404, a.ID})
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, titles(found))
}

func (s *InMemorySuite) TestCountByStatus() {
	s.add("a", 1, models.StatusDraft, models.VisibilityPrivate, 0)
	s.add("b", 1, models.StatusPublished, models.VisibilityPublic, 0)
	s.add("c", 2, models.StatusPublished, models.VisibilityPublic, 0)

	author := id.UserID(1)
	counts, err := s.store.CountByStatus(s.ctx, &author)
	s.Require().NoError(err)
	s.Equal(map[models.Status]int{models.StatusDraft: 1, models.StatusPublished: 1}, counts)

	all, err := s.store.CountByStatus(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(2, all[models.StatusPublished])
}

func (s *InMemorySuite) TestCountCreatedBetween() {
	s.add("before", 1, models.StatusDraft, models.VisibilityPrivate, -time.Minute)
	s.add("start", 1, models.StatusDraft, models.VisibilityPrivate, 0)
	s.add("inside", 1, models.StatusPublished, models.VisibilityPublic, time.Hour)
	s.add("end", 1, models.StatusPublished, models.VisibilityPublic, 2*time.Hour)
	gone := s.add("gone", 1, models.StatusPublished, models.VisibilityPublic, time.Hour)
	_, err := gone.MarkDeleted(s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Update(s.ctx, gone))

	n, err := s.store.CountCreatedBetween(s.ctx, s.now, s.now.Add(2*time.Hour))
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *InMemorySuite) TestRecent() {
	s.add("old", 1, models.StatusPublished, models.VisibilityPublic, 0)
	s.add("new", 1, models.StatusDraft, models.VisibilityPublic, time.Hour)
	s.add("private", 1, models.StatusPublished, models.VisibilityPrivate, 2*time.Hour)

	recent, err := s.store.Recent(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, titles(recent))
}

func titles(items []*models.PromptTemplate) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.Title)
	}
	return out
}

var templateColumns = []string{
	"id", "uuid", "title", "description", "current_version_id", "category_id", "created_by_id",
	"visibility", "status", "view_count", "favorite_count", "like_count", "created_at", "updated_at", "tags",
}

func TestPostgres_ListBuildsFilteredQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	author := id.UserID(7)
	f := models.Filter{AuthorID: &author, Keyword: "50%", Sort: models.SortMostViews}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM prompt_templates p WHERE p.status <> 'DELETED' AND p.created_by_id = \$1 AND \(p.title ILIKE \$2`).
		WithArgs(int64(7), `%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	now := time.Now()
	promptUUID := uuid.New()
	mock.ExpectQuery(`ORDER BY p.view_count DESC, p.updated_at DESC, p.id DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(int64(7), `%50\%%`, 20, 0).
		WillReturnRows(sqlmock.NewRows(templateColumns).
			AddRow(int64(1), promptUUID.String(), "50% off", "", int64(3), nil, int64(7),
				"PUBLIC", "PUBLISHED", int64(9), int64(2), int64(1), now, now, "ai\x1fsales"))

	items, total, err := NewPostgres(db).List(context.Background(), f, page.Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, promptUUID, items[0].UUID)
	assert.Equal(t, []string{"ai", "sales"}, items[0].Tags)
	assert.Nil(t, items[0].CategoryID)
	assert.EqualValues(t, 9, items[0].Stats.ViewCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListSkipsPageQueryWhenEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM prompt_templates p WHERE p.status <> 'DELETED'`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	items, total, err := NewPostgres(db).List(context.Background(), models.Filter{}, page.Request{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_AdjustLikeCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE prompt_templates SET like_count = GREATEST\(like_count \+ \$2, 0\) WHERE id = \$1 RETURNING like_count`).
		WithArgs(int64(4), int64(-1)).
		WillReturnRows(sqlmock.NewRows([]string{"like_count"}).AddRow(int64(0)))
	mock.ExpectQuery(`UPDATE prompt_templates SET like_count`).
		WithArgs(int64(5), int64(1)).
		WillReturnError(errors.New("connection reset"))

	store := NewPostgres(db)
	n, err := store.AdjustLikeCount(context.Background(), 4, -1)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.AdjustLikeCount(context.Background(), 5, 1)
	assert.Error(t, err)
}

func TestPostgres_FindByUUIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE p.uuid = \$1`).WillReturnRows(sqlmock.NewRows(templateColumns))

	_, err = NewPostgres(db).FindByUUID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestPostgres_CountCreatedBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM prompt_templates WHERE status <> 'DELETED' AND created_at >= \$1 AND created_at < \$2`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := NewPostgres(db).CountCreatedBetween(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
