package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"promptserver/internal/prompt/metrics"
	"promptserver/internal/prompt/models"
	searchmodels "promptserver/internal/search/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
	"promptserver/pkg/requestcontext"
)

type TemplateStore interface {
	Create(ctx context.Context, t *models.PromptTemplate) error
	Update(ctx context.Context, t *models.PromptTemplate) error
	FindByID(ctx context.Context, promptID id.PromptID) (*models.PromptTemplate, error)
	FindByUUID(ctx context.Context, promptUUID uuid.UUID) (*models.PromptTemplate, error)
	FindByIDs(ctx context.Context, ids []id.PromptID) ([]*models.PromptTemplate, error)
	List(ctx context.Context, f models.Filter, req page.Request) ([]*models.PromptTemplate, int, error)
	CountByStatus(ctx context.Context, authorID *id.UserID) (map[models.Status]int, error)
}

type VersionStore interface {
	Create(ctx context.Context, v *models.PromptVersion) error
	FindByID(ctx context.Context, versionID int64) (*models.PromptVersion, error)
	FindByNumber(ctx context.Context, templateID id.PromptID, number int) (*models.PromptVersion, error)
	ListByTemplate(ctx context.Context, templateID id.PromptID) ([]*models.PromptVersion, error)
	LatestNumber(ctx context.Context, templateID id.PromptID) (int, error)
	Delete(ctx context.Context, versionID int64) error
}

type TagStore interface {
	LoadOrCreate(ctx context.Context, names []string, now time.Time) ([]*models.Tag, error)
	ReplacePromptTags(ctx context.Context, promptID id.PromptID, tagIDs []int64) error
}

type SearchIndex interface {
	Index(ctx context.Context, doc searchmodels.Document) error
	Remove(ctx context.Context, promptID id.PromptID) error
	Search(ctx context.Context, q searchmodels.Query) (page.Result[id.PromptID], error)
}

// UserDirectory resolves prompt authors. Returns sentinel.ErrNotFound for unknown users.
type UserDirectory interface {
	FindAuthor(ctx context.Context, userID id.UserID) (models.Author, error)
}

// CategoryDirectory resolves category names. Returns sentinel.ErrNotFound for unknown categories.
type CategoryDirectory interface {
	CategoryName(ctx context.Context, categoryID id.CategoryID) (string, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns prompt templates, their versions and tags.
type Service struct {
	templates      TemplateStore
	versions       VersionStore
	tags           TagStore
	search         SearchIndex
	users          UserDirectory
	categories     CategoryDirectory
	tx             tx.Runner
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	now            func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithTxRunner sets the unit of work used by multi-store writes.
func WithTxRunner(runner tx.Runner) Option {
	return func(s *Service) {
		s.tx = runner
	}
}

func New(
	templates TemplateStore,
	versions VersionStore,
	tags TagStore,
	search SearchIndex,
	users UserDirectory,
	categories CategoryDirectory,
	opts ...Option,
) *Service {
	s := &Service{
		templates:  templates,
		versions:   versions,
		tags:       tags,
		search:     search,
		users:      users,
		categories: categories,
		tx:         tx.NoopRunner{},
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindActive loads a template that is not deleted. Used by favorite, like and view flows.
func (s *Service) FindActive(ctx context.Context, promptUUID uuid.UUID) (*models.PromptTemplate, error) {
	t, err := s.templates.FindByUUID(ctx, promptUUID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "prompt not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load prompt")
	}
	if t.IsDeleted() {
		return nil, dErrors.New(dErrors.CodeNotFound, "prompt not found")
	}
	return t, nil
}

// Summaries builds list items, resolving author and category names once per id.
func (s *Service) Summaries(ctx context.Context, templates []*models.PromptTemplate) ([]models.PromptSummary, error) {
	authors := make(map[id.UserID]models.Author)
	categories := make(map[id.CategoryID]string)
	out := make([]models.PromptSummary, 0, len(templates))
	for _, t := range templates {
		author, ok := authors[t.CreatedByID]
		if !ok {
			var err error
			if author, err = s.author(ctx, t.CreatedByID); err != nil {
				return nil, err
			}
			authors[t.CreatedByID] = author
		}
		var categoryName string
		if t.CategoryID != nil {
			name, ok := categories[*t.CategoryID]
			if !ok {
				var err error
				if name, err = s.categoryName(ctx, *t.CategoryID); err != nil {
					return nil, err
				}
				categories[*t.CategoryID] = name
			}
			categoryName = name
		}
		out = append(out, models.NewPromptSummary(t, author, categoryName))
	}
	return out, nil
}

// author returns a bare author when the user no longer exists.
func (s *Service) author(ctx context.Context, userID id.UserID) (models.Author, error) {
	author, err := s.users.FindAuthor(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Author{ID: userID}, nil
		}
		return models.Author{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load author")
	}
	return author, nil
}

func (s *Service) categoryName(ctx context.Context, categoryID id.CategoryID) (string, error) {
	name, err := s.categories.CategoryName(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", nil
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load category")
	}
	return name, nil
}

func (s *Service) requireCategory(ctx context.Context, categoryID *id.CategoryID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categories.CategoryName(ctx, *categoryID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "category not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load category")
	}
	return nil
}

func (s *Service) index(ctx context.Context, t *models.PromptTemplate, content string) {
	doc := searchmodels.Document{
		PromptID:    t.ID,
		UUID:        t.UUID,
		Title:       t.Title,
		Description: t.Description,
		Content:     content,
		Tags:        t.Tags,
		CategoryID:  t.CategoryID,
		Visibility:  string(t.Visibility),
		Status:      string(t.Status),
		UpdatedAt:   t.UpdatedAt,
	}
	if err := s.search.Index(ctx, doc); err != nil {
		s.logger.WarnContext(ctx, "failed to index prompt",
			"prompt_id", t.ID.String(),
			"error", err,
		)
	}
}

func (s *Service) attachTags(ctx context.Context, t *models.PromptTemplate) error {
	tags, err := s.tags.LoadOrCreate(ctx, t.Tags, s.now().UTC())
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save tags")
	}
	ids := make([]int64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	if err := s.tags.ReplacePromptTags(ctx, t.ID, ids); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to link tags")
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, action audit.Action, userID id.UserID, t *models.PromptTemplate, attrs map[string]string) {
	requestID := requestcontext.RequestID(ctx)
	s.logger.InfoContext(ctx, string(action),
		"event", string(action),
		"user_id", userID.String(),
		"prompt_id", t.UUID.String(),
		"request_id", requestID,
		"log_type", "audit",
	)
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:     action,
		UserID:     userID,
		Subject:    "prompt:" + t.UUID.String(),
		RequestID:  requestID,
		Attributes: attrs,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish audit event", "event", string(action), "error", err)
	}
}

func toValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	return err
}
