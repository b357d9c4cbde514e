package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promptserver/internal/favorite/models"
	"promptserver/internal/favorite/service/mocks"
	favoritestore "promptserver/internal/favorite/store"
	promptmodels "promptserver/internal/prompt/models"
	templatestore "promptserver/internal/prompt/store/template"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	catalog   *mocks.MockPromptCatalog
	store     *favoritestore.InMemory
	templates *templatestore.InMemory
	service   *Service
	now       time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockPromptCatalog(s.ctrl)
	s.store = favoritestore.NewInMemory()
	s.templates = templatestore.NewInMemory()
	s.now = time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	s.catalog.EXPECT().Summaries(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, templates []*promptmodels.PromptTemplate) ([]promptmodels.PromptSummary, error) {
			out := make([]promptmodels.PromptSummary, 0, len(templates))
			for _, t := range templates {
				out = append(out, promptmodels.NewPromptSummary(t, promptmodels.Author{ID: t.CreatedByID}, ""))
			}
			return out, nil
		}).AnyTimes()

	s.service = New(s.store, s.catalog, s.templates,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *ServiceSuite) prompt(title string, tags ...string) *promptmodels.PromptTemplate {
	t, err := promptmodels.NewPromptTemplate(uuid.Nil, title, "", nil, 1,
		promptmodels.VisibilityPublic, promptmodels.StatusPublished, tags, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.templates.Create(context.Background(), t))
	s.catalog.EXPECT().FindActive(gomock.Any(), t.UUID).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID) (*promptmodels.PromptTemplate, error) {
			return s.templates.FindByID(ctx, t.ID)
		}).AnyTimes()
	return t
}

func (s *ServiceSuite) favoriteCount(promptID id.PromptID) int64 {
	t, err := s.templates.FindByID(context.Background(), promptID)
	s.Require().NoError(err)
	return t.Stats.FavoriteCount
}

func (s *ServiceSuite) TestAddAndRemove() {
	ctx := context.Background()
	t := s.prompt("Summarizer")

	resp, err := s.service.Add(ctx, 5, t.UUID)
	s.Require().NoError(err)
	s.Equal(t.ID, resp.PromptTemplateID)
	s.Equal(s.now, resp.CreatedAt)
	s.Equal(int64(1), s.favoriteCount(t.ID))

	_, err = s.service.Add(ctx, 5, t.UUID)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Equal(int64(1), s.favoriteCount(t.ID))

	s.Require().NoError(s.service.Remove(ctx, 5, t.UUID))
	s.Equal(int64(0), s.favoriteCount(t.ID))

	err = s.service.Remove(ctx, 5, t.UUID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal(int64(0), s.favoriteCount(t.ID), "count never goes negative")
}

func (s *ServiceSuite) TestPrivatePromptCannotBeFavoritedByOthers() {
	ctx := context.Background()
	t := s.prompt("Private notes")
	t.Visibility = promptmodels.VisibilityPrivate
	s.Require().NoError(s.templates.Update(ctx, t))

	_, err := s.service.Add(ctx, 5, t.UUID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	s.Equal(int64(0), s.favoriteCount(t.ID))

	_, err = s.service.Add(ctx, 1, t.UUID)
	s.Require().NoError(err, "the author may favorite their own private prompt")
	s.Equal(int64(1), s.favoriteCount(t.ID))
}

func (s *ServiceSuite) TestAddMissingPrompt() {
	missing := uuid.New()
	s.catalog.EXPECT().FindActive(gomock.Any(), missing).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "prompt not found"))

	_, err := s.service.Add(context.Background(), 5, missing)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestListMine() {
	ctx := context.Background()
	a := s.prompt("Alpha writer", "writing")
	b := s.prompt("Beta coder", "code")
	c := s.prompt("Gamma coder")

	for i, t := range []*promptmodels.PromptTemplate{a, b, c} {
		s.now = s.now.Add(time.Duration(i+1) * time.Minute)
		_, err := s.service.Add(ctx, 5, t.UUID)
		s.Require().NoError(err)
	}

	deleted, err := s.templates.FindByID(ctx, c.ID)
	s.Require().NoError(err)
	_, err = deleted.MarkDeleted(s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.templates.Update(ctx, deleted))

	s.Run("newest first, deleted skipped", func() {
		result, err := s.service.ListMine(ctx, models.NewSearchCondition(5, "", "", "", page.Request{}))
		s.Require().NoError(err)
		s.Equal(2, result.TotalElements)
		s.Equal("Beta coder", result.Content[0].Title)
		s.Equal("Alpha writer", result.Content[1].Title)
	})

	s.Run("keyword and title sort", func() {
		result, err := s.service.ListMine(ctx, models.NewSearchCondition(5, "coder", "title", "asc", page.Request{}))
		s.Require().NoError(err)
		s.Require().Len(result.Content, 1)
		s.Equal(b.UUID, result.Content[0].ID)
	})

	s.Run("tags match the keyword", func() {
		result, err := s.service.ListMine(ctx, models.NewSearchCondition(5, "WRITING", "", "", page.Request{}))
		s.Require().NoError(err)
		s.Require().Len(result.Content, 1)
		s.Equal(a.UUID, result.Content[0].ID)
	})

	count, err := s.service.CountMine(ctx, 5)
	s.Require().NoError(err)
	s.Equal(3, count.Count)
}

func (s *ServiceSuite) TestDashboardCounts() {
	ctx := context.Background()
	t := s.prompt("Counted")
	_, err := s.service.Add(ctx, 5, t.UUID)
	s.Require().NoError(err)
	_, err = s.service.Add(ctx, 6, t.UUID)
	s.Require().NoError(err)

	total, err := s.service.Total(ctx)
	s.Require().NoError(err)
	s.Equal(2, total)

	n, err := s.service.CountCreatedBetween(ctx, s.now, s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *ServiceSuite) TestStoreFailureIsInternal() {
	store := mocks.NewMockStore(s.ctrl)
	svc := New(store, s.catalog, s.templates, WithLogger(slog.New(slog.DiscardHandler)))
	store.EXPECT().CountByUser(gomock.Any(), id.UserID(5)).Return(0, errors.New("db down"))

	_, err := svc.CountMine(context.Background(), 5)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
