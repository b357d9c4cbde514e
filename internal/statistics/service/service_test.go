package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	categorymodels "promptserver/internal/category/models"
	categoryservice "promptserver/internal/category/service"
	categorystore "promptserver/internal/category/store"
	promptmodels "promptserver/internal/prompt/models"
	templatestore "promptserver/internal/prompt/store/template"
	"promptserver/internal/statistics/models"
	"promptserver/internal/statistics/service/mocks"
	viewmodels "promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	ctrl       *gomock.Controller
	templates  *templatestore.InMemory
	summarizer *mocks.MockPromptSummarizer
	favorites  *mocks.MockFavoriteCounter
	users      *mocks.MockUserCounter
	views      *mocks.MockViewStatistics
	service    *Service

	dev, ops, backend, golang id.CategoryID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	s.ctrl = gomock.NewController(s.T())
	s.templates = templatestore.NewInMemory()
	s.summarizer = mocks.NewMockPromptSummarizer(s.ctrl)
	s.favorites = mocks.NewMockFavoriteCounter(s.ctrl)
	s.users = mocks.NewMockUserCounter(s.ctrl)
	s.views = mocks.NewMockViewStatistics(s.ctrl)

	categories := categorystore.NewInMemory()
	s.dev = s.category(categories, "dev", nil)
	s.ops = s.category(categories, "ops", nil)
	s.backend = s.category(categories, "backend", &s.dev)
	s.golang = s.category(categories, "golang", &s.backend)

	s.prompt("a", &s.dev, promptmodels.StatusPublished, promptmodels.VisibilityPublic, -time.Hour)
	s.prompt("b", &s.backend, promptmodels.StatusDraft, promptmodels.VisibilityPrivate, -48*time.Hour)
	s.prompt("c", &s.backend, promptmodels.StatusArchived, promptmodels.VisibilityPublic, -9*24*time.Hour)
	s.prompt("d", &s.golang, promptmodels.StatusPublished, promptmodels.VisibilityPublic, -10*24*time.Hour)
	s.prompt("e", &s.ops, promptmodels.StatusPublished, promptmodels.VisibilityPublic, -20*24*time.Hour)
	s.prompt("g", nil, promptmodels.StatusDraft, promptmodels.VisibilityPrivate, -72*time.Hour)
	gone := s.prompt("f", &s.dev, promptmodels.StatusPublished, promptmodels.VisibilityPublic, -time.Hour)
	_, err := gone.MarkDeleted(s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.templates.Update(s.ctx, gone))

	s.service = New(s.templates, s.summarizer, categoryservice.New(categories), s.favorites, s.users, s.views,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *ServiceSuite) category(store *categorystore.InMemory, name string, parent *id.CategoryID) id.CategoryID {
	c, err := categorymodels.NewCategory(name, name, "", parent, false, s.now)
	s.Require().NoError(err)
	s.Require().NoError(store.Create(s.ctx, c))
	return c.ID
}

func (s *ServiceSuite) prompt(title string, categoryID *id.CategoryID, status promptmodels.Status, visibility promptmodels.Visibility, age time.Duration) *promptmodels.PromptTemplate {
	t, err := promptmodels.NewPromptTemplate(uuid.Nil, title, "", categoryID, 1, visibility, status, nil, s.now.Add(age))
	s.Require().NoError(err)
	s.Require().NoError(s.templates.Create(s.ctx, t))
	return t
}

func (s *ServiceSuite) TestPromptStatistics() {
	stats, err := s.service.PromptStatistics(s.ctx, time.Time{}, time.Time{})
	s.Require().NoError(err)

	s.EqualValues(6, stats.TotalCount)
	s.EqualValues(2, stats.DraftCount)
	s.EqualValues(3, stats.PublishedCount)
	s.EqualValues(1, stats.ArchivedCount)
	s.EqualValues(3, stats.CurrentCount)
	s.EqualValues(2, stats.PreviousCount)
	s.InDelta(50.0, stats.PercentageChange, 1e-9)
}

func (s *ServiceSuite) TestPromptStatisticsRejectsReversedPeriod() {
	_, err := s.service.PromptStatistics(s.ctx, s.now, s.now.Add(-time.Hour))
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestFavoriteStatistics() {
	start, end := s.now.Add(-models.DefaultPeriod), s.now
	s.favorites.EXPECT().Total(gomock.Any()).Return(10, nil)
	s.favorites.EXPECT().CountCreatedBetween(gomock.Any(), start, end).Return(4, nil)
	s.favorites.EXPECT().CountCreatedBetween(gomock.Any(), start.Add(-models.DefaultPeriod), start).Return(0, nil)

	stats, err := s.service.FavoriteStatistics(s.ctx, time.Time{}, time.Time{})
	s.Require().NoError(err)
	s.Equal(models.CountStatistics{TotalCount: 10, ComparisonResult: models.Of(4, 0)}, *stats)
	s.InDelta(100.0, stats.PercentageChange, 1e-9)
}

func (s *ServiceSuite) TestUserStatistics() {
	s.Run("explicit period", func() {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		s.users.EXPECT().Count(gomock.Any()).Return(50, nil)
		s.users.EXPECT().CountCreatedBetween(gomock.Any(), start, end).Return(3, nil)
		s.users.EXPECT().CountCreatedBetween(gomock.Any(), start.AddDate(0, 0, -2), start).Return(6, nil)

		stats, err := s.service.UserStatistics(s.ctx, start, end)
		s.Require().NoError(err)
		s.EqualValues(50, stats.TotalCount)
		s.InDelta(-50.0, stats.PercentageChange, 1e-9)
	})

	s.Run("store failure is internal", func() {
		s.users.EXPECT().Count(gomock.Any()).Return(0, errors.New("connection refused"))
		s.users.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

		_, err := s.service.UserStatistics(s.ctx, time.Time{}, time.Time{})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestRootCategoryStatistics() {
	stats, err := s.service.RootCategoryStatistics(s.ctx)
	s.Require().NoError(err)
	want := []models.CategoryStat{
		{CategoryID: s.dev, CategoryName: "dev", PromptCount: 4},
		{CategoryID: s.ops, CategoryName: "ops", PromptCount: 1},
	}
	if diff := cmp.Diff(want, stats.Categories); diff != "" {
		s.Failf("root category statistics mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *ServiceSuite) TestChildCategoryStatistics() {
	s.Run("direct prompts only", func() {
		stats, err := s.service.ChildCategoryStatistics(s.ctx, s.dev)
		s.Require().NoError(err)
		s.Equal([]models.CategoryStat{{CategoryID: s.backend, CategoryName: "backend", PromptCount: 2}}, stats.Categories)
	})

	s.Run("leaf has no children", func() {
		stats, err := s.service.ChildCategoryStatistics(s.ctx, s.golang)
		s.Require().NoError(err)
		s.Empty(stats.Categories)
	})

	s.Run("missing root", func() {
		_, err := s.service.ChildCategoryStatistics(s.ctx, 999)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("zero root", func() {
		_, err := s.service.ChildCategoryStatistics(s.ctx, 0)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestRecentPrompts() {
	summarize := func(_ context.Context, templates []*promptmodels.PromptTemplate) ([]promptmodels.PromptSummary, error) {
		out := make([]promptmodels.PromptSummary, 0, len(templates))
		for _, t := range templates {
			out = append(out, promptmodels.NewPromptSummary(t, promptmodels.Author{ID: t.CreatedByID}, ""))
		}
		return out, nil
	}

	s.Run("default limit", func() {
		s.summarizer.EXPECT().Summaries(gomock.Any(), gomock.Len(4)).DoAndReturn(summarize)

		recent, err := s.service.RecentPrompts(s.ctx, 0)
		s.Require().NoError(err)
		s.Equal([]string{"a", "c", "d", "e"}, summaryTitles(recent))
	})

	s.Run("explicit limit", func() {
		s.summarizer.EXPECT().Summaries(gomock.Any(), gomock.Len(2)).DoAndReturn(summarize)

		recent, err := s.service.RecentPrompts(s.ctx, 2)
		s.Require().NoError(err)
		s.Equal([]string{"a", "c"}, summaryTitles(recent))
	})
}

func (s *ServiceSuite) TestWeeklyViewsDelegates() {
	weekly := viewmodels.NewWeeklyViewStatistics(12, 10, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	s.views.EXPECT().Weekly(gomock.Any()).Return(&weekly, nil)

	got, err := s.service.WeeklyViews(s.ctx)
	s.Require().NoError(err)
	s.Equal(&weekly, got)
}

func summaryTitles(items []promptmodels.PromptSummary) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}
