package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	categorymodels "promptserver/internal/category/models"
	promptmodels "promptserver/internal/prompt/models"
	"promptserver/internal/statistics/models"
	viewmodels "promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

const (
	defaultRecentLimit = 4
	maxRecentLimit     = 50
)

// PromptStore is the read side of the template store used by the dashboard.
type PromptStore interface {
	CountByStatus(ctx context.Context, authorID *id.UserID) (map[promptmodels.Status]int, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)
	CountByCategories(ctx context.Context, categoryIDs []id.CategoryID) (map[id.CategoryID]int, error)
	Recent(ctx context.Context, limit int) ([]*promptmodels.PromptTemplate, error)
}

type PromptSummarizer interface {
	Summaries(ctx context.Context, templates []*promptmodels.PromptTemplate) ([]promptmodels.PromptSummary, error)
}

type CategoryCatalog interface {
	Roots(ctx context.Context) ([]*categorymodels.Category, error)
	Subcategories(ctx context.Context, parentID id.CategoryID) ([]*categorymodels.Category, error)
}

// Counter counts rows created in [start, end).
type Counter interface {
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)
}

type FavoriteCounter interface {
	Counter
	Total(ctx context.Context) (int, error)
}

type UserCounter interface {
	Counter
	Count(ctx context.Context) (int, error)
}

type ViewStatistics interface {
	Weekly(ctx context.Context) (*viewmodels.WeeklyViewStatistics, error)
}

// Service assembles the dashboard cards from the other contexts.
type Service struct {
	prompts    PromptStore
	summarizer PromptSummarizer
	categories CategoryCatalog
	favorites  FavoriteCounter
	users      UserCounter
	views      ViewStatistics
	logger     *slog.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	prompts PromptStore,
	summarizer PromptSummarizer,
	categories CategoryCatalog,
	favorites FavoriteCounter,
	users UserCounter,
	views ViewStatistics,
	opts ...Option,
) *Service {
	s := &Service{
		prompts:    prompts,
		summarizer: summarizer,
		categories: categories,
		favorites:  favorites,
		users:      users,
		views:      views,
		logger:     slog.Default(),
		tracer:     otel.Tracer("promptserver/statistics"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PromptStatistics counts prompts by status and compares creations in period
// against the previous window. A zero period falls back to the last seven days.
func (s *Service) PromptStatistics(ctx context.Context, start, end time.Time) (*models.PromptStatistics, error) {
	period, err := models.PeriodOrDefault(start, end, s.now().UTC())
	if err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "statistics.prompts")
	defer span.End()

	var byStatus map[promptmodels.Status]int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.prompts.CountByStatus(gctx, nil)
		return err
	})
	cmp := s.compare(gctx, g, s.prompts, period)
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load prompt statistics")
	}

	stats := &models.PromptStatistics{
		DraftCount:       int64(byStatus[promptmodels.StatusDraft]),
		PublishedCount:   int64(byStatus[promptmodels.StatusPublished]),
		ArchivedCount:    int64(byStatus[promptmodels.StatusArchived]),
		ComparisonResult: cmp(),
	}
	stats.TotalCount = stats.DraftCount + stats.PublishedCount + stats.ArchivedCount
	return stats, nil
}

// FavoriteStatistics returns the favorite total with a window comparison.
func (s *Service) FavoriteStatistics(ctx context.Context, start, end time.Time) (*models.CountStatistics, error) {
	period, err := models.PeriodOrDefault(start, end, s.now().UTC())
	if err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "statistics.favorites")
	defer span.End()

	var total int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.favorites.Total(gctx)
		return err
	})
	cmp := s.compare(gctx, g, s.favorites, period)
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load favorite statistics")
	}
	return &models.CountStatistics{TotalCount: int64(total), ComparisonResult: cmp()}, nil
}

// UserStatistics returns the user total with a window comparison.
func (s *Service) UserStatistics(ctx context.Context, start, end time.Time) (*models.CountStatistics, error) {
	period, err := models.PeriodOrDefault(start, end, s.now().UTC())
	if err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "statistics.users")
	defer span.End()

	var total int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.users.Count(gctx)
		return err
	})
	cmp := s.compare(gctx, g, s.users, period)
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user statistics")
	}
	return &models.CountStatistics{TotalCount: int64(total), ComparisonResult: cmp()}, nil
}

// compare schedules the current and previous window counts on g. The returned
// func is only valid after g.Wait succeeds.
func (s *Service) compare(ctx context.Context, g *errgroup.Group, c Counter, period models.Period) func() models.ComparisonResult {
	prev := period.Previous()
	var current, previous int
	g.Go(func() error {
		var err error
		current, err = c.CountCreatedBetween(ctx, period.Start, period.End)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = c.CountCreatedBetween(ctx, prev.Start, prev.End)
		return err
	})
	return func() models.ComparisonResult {
		return models.Of(int64(current), int64(previous))
	}
}

// RootCategoryStatistics counts prompts per root category. Each root counts
// the prompts of its whole subtree.
func (s *Service) RootCategoryStatistics(ctx context.Context) (*models.CategoryStatistics, error) {
	ctx, span := s.tracer.Start(ctx, "statistics.categories.root")
	defer span.End()

	roots, err := s.categories.Roots(ctx)
	if err != nil {
		return nil, err
	}

	subtrees := make(map[id.CategoryID][]id.CategoryID, len(roots))
	var all []id.CategoryID
	for _, root := range roots {
		ids, err := s.subtree(ctx, root.ID)
		if err != nil {
			return nil, err
		}
		subtrees[root.ID] = ids
		all = append(all, ids...)
	}

	counts, err := s.prompts.CountByCategories(ctx, all)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count prompts per category")
	}

	stats := &models.CategoryStatistics{Categories: make([]models.CategoryStat, 0, len(roots))}
	for _, root := range roots {
		var n int64
		for _, categoryID := range subtrees[root.ID] {
			n += int64(counts[categoryID])
		}
		stats.Categories = append(stats.Categories, models.CategoryStat{
			CategoryID:   root.ID,
			CategoryName: root.Name,
			PromptCount:  n,
		})
	}
	span.SetAttributes(attribute.Int("statistics.categories", len(stats.Categories)))
	return stats, nil
}

// ChildCategoryStatistics counts prompts filed directly under each child of rootID.
func (s *Service) ChildCategoryStatistics(ctx context.Context, rootID id.CategoryID) (*models.CategoryStatistics, error) {
	if rootID.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "rootId is required")
	}
	ctx, span := s.tracer.Start(ctx, "statistics.categories.children",
		trace.WithAttributes(attribute.Int64("category.root_id", int64(rootID))),
	)
	defer span.End()

	children, err := s.categories.Subcategories(ctx, rootID)
	if err != nil {
		return nil, err
	}
	ids := make([]id.CategoryID, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.ID)
	}
	counts, err := s.prompts.CountByCategories(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count prompts per category")
	}

	stats := &models.CategoryStatistics{Categories: make([]models.CategoryStat, 0, len(children))}
	for _, c := range children {
		stats.Categories = append(stats.Categories, models.CategoryStat{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			PromptCount:  int64(counts[c.ID]),
		})
	}
	return stats, nil
}

func (s *Service) subtree(ctx context.Context, rootID id.CategoryID) ([]id.CategoryID, error) {
	out := []id.CategoryID{rootID}
	seen := map[id.CategoryID]bool{rootID: true}
	for i := 0; i < len(out); i++ {
		children, err := s.categories.Subcategories(ctx, out[i])
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			out = append(out, c.ID)
		}
	}
	return out, nil
}

// RecentPrompts returns the newest public prompts. Non-positive limits use
// the default and large ones are capped.
func (s *Service) RecentPrompts(ctx context.Context, limit int) ([]promptmodels.PromptSummary, error) {
	if limit <= 0 {
		s.logger.DebugContext(ctx, "invalid recent prompt limit, using default", "limit", limit)
		limit = defaultRecentLimit
	}
	limit = min(limit, maxRecentLimit)

	templates, err := s.prompts.Recent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recent prompts")
	}
	return s.summarizer.Summaries(ctx, templates)
}

// WeeklyViews compares this week's views with last week's.
func (s *Service) WeeklyViews(ctx context.Context) (*viewmodels.WeeklyViewStatistics, error) {
	return s.views.Weekly(ctx)
}
