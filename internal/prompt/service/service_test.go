package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promptserver/internal/prompt/metrics"
	"promptserver/internal/prompt/models"
	"promptserver/internal/prompt/service/mocks"
	tagstore "promptserver/internal/prompt/store/tag"
	templatestore "promptserver/internal/prompt/store/template"
	versionstore "promptserver/internal/prompt/store/version"
	searchservice "promptserver/internal/search/service"
	searchstore "promptserver/internal/search/store"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/platform/sentinel"
)

const (
	author   id.UserID     = 7
	stranger id.UserID     = 8
	category id.CategoryID = 3
)

// ServiceSuite runs the service against in-memory stores and mocks only the
// cross-context lookups.
type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	users      *mocks.MockUserDirectory
	categories *mocks.MockCategoryDirectory
	audit      *mocks.MockAuditPublisher
	templates  *templatestore.InMemory
	versions   *versionstore.InMemory
	tags       *tagstore.InMemory
	metrics    *metrics.Metrics
	service    *Service
	now        time.Time
	teamID     *int64
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserDirectory(s.ctrl)
	s.categories = mocks.NewMockCategoryDirectory(s.ctrl)
	s.audit = mocks.NewMockAuditPublisher(s.ctrl)
	s.templates = templatestore.NewInMemory()
	s.versions = versionstore.NewInMemory()
	s.tags = tagstore.NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.now = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	s.teamID = nil

	s.users.EXPECT().FindAuthor(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID id.UserID) (models.Author, error) {
			if userID == author {
				return models.Author{ID: author, Name: "Jane", Email: "jane@example.com", TeamID: s.teamID}, nil
			}
			return models.Author{}, sentinel.ErrNotFound
		}).AnyTimes()
	s.categories.EXPECT().CategoryName(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, categoryID id.CategoryID) (string, error) {
			if categoryID == category {
				return "Programming", nil
			}
			return "", sentinel.ErrNotFound
		}).AnyTimes()
	s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.service = New(
		s.templates, s.versions, s.tags,
		searchservice.New(searchstore.NewInMemory()),
		s.users, s.categories,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithAuditPublisher(s.audit),
		WithMetrics(s.metrics),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) register(title string, visibility models.Visibility, status models.Status, tags ...string) *models.PromptDetail {
	cat := category
	detail, err := s.service.Register(context.Background(), &models.RegisterPromptCommand{
		Title:          title,
		Content:        "Explain {{topic}}",
		CategoryID:     &cat,
		CreatedBy:      author,
		Visibility:     visibility,
		Status:         status,
		Tags:           tags,
		InputVariables: []models.InputVariable{{Name: "topic", Required: true}},
	})
	s.Require().NoError(err)
	return detail
}

func (s *ServiceSuite) updateCommand(promptUUID uuid.UUID, content string, status models.Status) *models.UpdatePromptCommand {
	cat := category
	return &models.UpdatePromptCommand{
		UUID:           promptUUID,
		EditorID:       author,
		Title:          "Updated",
		Content:        content,
		CategoryID:     &cat,
		Visibility:     models.VisibilityPublic,
		Status:         status,
		Tags:           []string{"go"},
		InputVariables: []models.InputVariable{{Name: "topic", Required: true}},
	}
}

func (s *ServiceSuite) TestRegister() {
	s.Run("creates version 1 and links tags", func() {
		detail := s.register("Explainer", "", "", " go ", "go", "ai")

		s.Equal(models.VisibilityPrivate, detail.Visibility)
		s.Equal(models.StatusDraft, detail.Status)
		s.Equal(1, detail.CurrentVersion)
		s.Equal("Explain {{topic}}", detail.Content)
		s.Equal([]string{"go", "ai"}, detail.Tags)
		s.Equal("Programming", detail.CategoryName)
		s.Equal("Jane", detail.Author.Name)

		t, err := s.templates.FindByUUID(context.Background(), detail.ID)
		s.Require().NoError(err)
		v, err := s.versions.FindByID(context.Background(), t.CurrentVersionID)
		s.Require().NoError(err)
		s.Equal(models.ActionCreate, v.ActionType)
		s.Equal(initialChanges, v.Changes)
		s.Len(s.tags.TagIDs(t.ID), 2)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.PromptsCreated))
	})

	s.Run("team members default to TEAM visibility", func() {
		team := int64(4)
		s.teamID = &team
		detail := s.register("Team prompt", "", "")
		s.Equal(models.VisibilityTeam, detail.Visibility)
	})

	s.Run("unknown category is not found", func() {
		missing := id.CategoryID(99)
		_, err := s.service.Register(context.Background(), &models.RegisterPromptCommand{
			Title: "t", Content: "c", CreatedBy: author, CategoryID: &missing,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("missing content fails validation", func() {
		_, err := s.service.Register(context.Background(), &models.RegisterPromptCommand{Title: "t", CreatedBy: author})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("duplicate input variables fail validation", func() {
		_, err := s.service.Register(context.Background(), &models.RegisterPromptCommand{
			Title: "t", Content: "c", CreatedBy: author,
			InputVariables: []models.InputVariable{{Name: "a"}, {Name: "a"}},
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("unchanged body keeps the version", func() {
		detail := s.register("Original", models.VisibilityPrivate, models.StatusDraft)
		updated, err := s.service.Update(ctx, s.updateCommand(detail.ID, "Explain {{topic}}", models.StatusDraft))
		s.Require().NoError(err)
		s.Equal(1, updated.CurrentVersion)
		s.Equal("Updated", updated.Title)
		s.Equal([]string{"go"}, updated.Tags)
	})

	s.Run("changed body on publish appends a PUBLISH version", func() {
		detail := s.register("Original", models.VisibilityPrivate, models.StatusDraft)
		updated, err := s.service.Update(ctx, s.updateCommand(detail.ID, "Explain {{topic}} simply", models.StatusPublished))
		s.Require().NoError(err)
		s.Equal(2, updated.CurrentVersion)
		s.Equal("Explain {{topic}} simply", updated.Content)

		versions, err := s.service.ListVersions(ctx, detail.ID, author)
		s.Require().NoError(err)
		s.Require().Len(versions, 2)
		s.Equal(models.ActionPublish, versions[0].ActionType)
		s.True(versions[0].IsCurrent)
		s.False(versions[1].IsCurrent)
	})

	s.Run("archiving with new content records ARCHIVE", func() {
		detail := s.register("Original", models.VisibilityPrivate, models.StatusPublished)
		updated, err := s.service.Update(ctx, s.updateCommand(detail.ID, "retired", models.StatusArchived))
		s.Require().NoError(err)
		v, err := s.service.GetVersion(ctx, detail.ID, updated.CurrentVersion, author)
		s.Require().NoError(err)
		s.Equal(models.ActionArchive, v.ActionType)
	})

	s.Run("non-author is forbidden", func() {
		detail := s.register("Original", models.VisibilityPublic, models.StatusPublished)
		cmd := s.updateCommand(detail.ID, "x", models.StatusDraft)
		cmd.EditorID = stranger
		_, err := s.service.Update(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("missing prompt is not found", func() {
		_, err := s.service.Update(ctx, s.updateCommand(uuid.New(), "x", models.StatusDraft))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("category is required", func() {
		cmd := s.updateCommand(uuid.New(), "x", models.StatusDraft)
		cmd.CategoryID = nil
		_, err := s.service.Update(ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestDelete() {
	ctx := context.Background()
	detail := s.register("Doomed", models.VisibilityPublic, models.StatusPublished)

	_, err := s.service.Delete(ctx, detail.ID, stranger)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	result, err := s.service.Delete(ctx, detail.ID, author)
	s.Require().NoError(err)
	s.Equal(models.StatusPublished, result.PreviousStatus)
	s.Equal(author, result.DeletedBy)
	s.Equal(s.now, result.DeletedAt)

	_, err = s.service.Delete(ctx, detail.ID, author)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.Get(ctx, detail.ID, author)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	results, err := s.service.Search(ctx, "Doomed", page.Request{})
	s.Require().NoError(err)
	s.Empty(results.Content)
}

func (s *ServiceSuite) TestGetPermissions() {
	ctx := context.Background()
	private := s.register("Secret", models.VisibilityPrivate, models.StatusPublished)
	public := s.register("Open", models.VisibilityPublic, models.StatusDraft)

	_, err := s.service.Get(ctx, private.ID, stranger)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	_, err = s.service.Get(ctx, private.ID, 0)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	detail, err := s.service.Get(ctx, private.ID, author)
	s.Require().NoError(err)
	s.Equal("Secret", detail.Title)

	detail, err = s.service.Get(ctx, public.ID, 0)
	s.Require().NoError(err)
	s.Equal([]models.InputVariable{{Name: "topic", Required: true}}, detail.InputVariables)
}

func (s *ServiceSuite) TestListings() {
	ctx := context.Background()
	s.register("Public published", models.VisibilityPublic, models.StatusPublished, "go")
	s.register("Public draft", models.VisibilityPublic, models.StatusDraft)
	s.register("Private published", models.VisibilityPrivate, models.StatusPublished)

	public, err := s.service.ListPublic(ctx, models.SortLatestModified, page.Request{})
	s.Require().NoError(err)
	s.Equal(1, public.TotalElements)
	s.Equal("Public published", public.Content[0].Title)
	s.Equal("Jane", public.Content[0].AuthorName)
	s.Equal("Programming", public.Content[0].CategoryName)

	byCategory, err := s.service.ListByCategory(ctx, category, page.Request{})
	s.Require().NoError(err)
	s.Equal(1, byCategory.TotalElements)

	byAuthor, err := s.service.ListByAuthor(ctx, stranger, page.Request{})
	s.Require().NoError(err)
	s.Zero(byAuthor.TotalElements)

	mine, err := s.service.ListMine(ctx, models.MyPromptCondition{
		UserID:   author,
		Statuses: []models.Status{models.StatusPublished},
		Sort:     models.SortTitle,
	})
	s.Require().NoError(err)
	s.Equal(2, mine.TotalElements)
	s.Equal("Private published", mine.Content[0].Title)

	advanced, err := s.service.AdvancedSearch(ctx, models.AdvancedSearchCondition{Tag: "GO"})
	s.Require().NoError(err)
	s.Equal(1, advanced.TotalElements)

	stats, err := s.service.MyStatistics(ctx, author)
	s.Require().NoError(err)
	s.Equal(models.MyStatistics{TotalCount: 3, DraftCount: 1, PublishedCount: 2}, stats)
}

func (s *ServiceSuite) TestAdvancedSearchHidesDeletedPrompts() {
	ctx := context.Background()
	gone := s.register("Secret draft", models.VisibilityPrivate, models.StatusDraft)
	_, err := s.service.Delete(ctx, gone.ID, author)
	s.Require().NoError(err)

	s.Run("deleted status is rejected", func() {
		_, err := s.service.AdvancedSearch(ctx, models.AdvancedSearchCondition{Status: models.StatusDeleted})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unfiltered search skips deleted prompts", func() {
		result, err := s.service.AdvancedSearch(ctx, models.AdvancedSearchCondition{Title: "secret"})
		s.Require().NoError(err)
		s.Zero(result.TotalElements)
	})

	s.Run("internal callers can still include them", func() {
		result, err := s.service.AdvancedSearch(ctx, models.AdvancedSearchCondition{
			Title:          "secret",
			Status:         models.StatusDeleted,
			IncludeDeleted: true,
		})
		s.Require().NoError(err)
		s.Equal(1, result.TotalElements)
	})
}

func (s *ServiceSuite) TestSearchUsesIndex() {
	ctx := context.Background()
	s.register("Kubernetes helper", models.VisibilityPublic, models.StatusPublished, "devops")
	s.register("Kubernetes notes", models.VisibilityPrivate, models.StatusPublished)

	result, err := s.service.Search(ctx, "kubernetes", page.Request{})
	s.Require().NoError(err)
	s.Equal(1, result.TotalElements)
	s.Require().Len(result.Content, 1)
	s.Equal("Kubernetes helper", result.Content[0].Title)

	_, err = s.service.Search(ctx, " ", page.Request{})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestSearchTotalsSkipStaleHits() {
	ctx := context.Background()
	s.register("Terraform module", models.VisibilityPublic, models.StatusPublished)
	stale := s.register("Terraform plan", models.VisibilityPublic, models.StatusPublished)

	// Change the row behind the index's back.
	t, err := s.templates.FindByUUID(ctx, stale.ID)
	s.Require().NoError(err)
	t.Visibility = models.VisibilityPrivate
	s.Require().NoError(s.templates.Update(ctx, t))

	result, err := s.service.Search(ctx, "terraform", page.Request{})
	s.Require().NoError(err)
	s.Require().Len(result.Content, 1)
	s.Equal("Terraform module", result.Content[0].Title)
	s.Equal(1, result.TotalElements)
	s.Equal(1, result.TotalPages)
}

func (s *ServiceSuite) TestVersions() {
	ctx := context.Background()
	detail := s.register("Versioned", models.VisibilityPublic, models.StatusPublished)

	v2, err := s.service.CreateVersion(ctx, detail.ID, author, &models.CreateVersionRequest{Content: "v2 body", Changes: "tighten"})
	s.Require().NoError(err)
	s.Equal(2, v2.VersionNumber)
	s.Equal(models.ActionEdit, v2.ActionType)
	s.True(v2.IsCurrent)

	_, err = s.service.CreateVersion(ctx, detail.ID, stranger, &models.CreateVersionRequest{Content: "x"})
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	s.True(dErrors.HasCode(s.service.DeleteVersion(ctx, detail.ID, 2, author), dErrors.CodeConflict))
	s.True(dErrors.HasCode(s.service.DeleteVersion(ctx, detail.ID, 1, stranger), dErrors.CodeForbidden))
	s.Require().NoError(s.service.DeleteVersion(ctx, detail.ID, 1, author))

	_, err = s.service.GetVersion(ctx, detail.ID, 1, 0)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	got, err := s.service.Get(ctx, detail.ID, 0)
	s.Require().NoError(err)
	s.Equal("v2 body", got.Content)
	s.Equal(2, got.CurrentVersion)
}

func (s *ServiceSuite) TestStoreFailuresAreInternal() {
	failing := mocks.NewMockTemplateStore(s.ctrl)
	svc := New(failing, s.versions, s.tags, searchservice.New(searchstore.NewInMemory()), s.users, s.categories,
		WithLogger(slog.New(slog.DiscardHandler)))

	failing.EXPECT().FindByUUID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err := svc.Get(context.Background(), uuid.New(), author)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestAuditEventsCarryPromptSubject() {
	ctrl := gomock.NewController(s.T())
	publisher := mocks.NewMockAuditPublisher(ctrl)
	s.service.auditPublisher = publisher

	publisher.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(audit.ActionPromptCreated, e.Action)
		s.Equal(author, e.UserID)
		s.Contains(e.Subject, "prompt:")
		return errors.New("broker unavailable")
	})

	detail := s.register("Audited", models.VisibilityPrivate, models.StatusDraft)
	s.NotEqual(uuid.Nil, detail.ID)
}
