package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"promptserver/internal/favorite/models"
	promptmodels "promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/platform/tx"
	"promptserver/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, f *models.Favorite) error
	Delete(ctx context.Context, userID id.UserID, promptID id.PromptID) error
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Favorite, error)
	CountByUser(ctx context.Context, userID id.UserID) (int, error)
	Count(ctx context.Context) (int, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)
}

// PromptCatalog resolves prompts and renders list items.
type PromptCatalog interface {
	FindActive(ctx context.Context, promptUUID uuid.UUID) (*promptmodels.PromptTemplate, error)
	Summaries(ctx context.Context, templates []*promptmodels.PromptTemplate) ([]promptmodels.PromptSummary, error)
}

// PromptCounter reads templates by id and maintains the denormalized favorite count.
type PromptCounter interface {
	FindByIDs(ctx context.Context, ids []id.PromptID) ([]*promptmodels.PromptTemplate, error)
	AdjustFavoriteCount(ctx context.Context, promptID id.PromptID, delta int64) (int64, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service manages user favorites.
type Service struct {
	store          Store
	prompts        PromptCatalog
	counter        PromptCounter
	tx             tx.Runner
	logger         *slog.Logger
	auditPublisher AuditPublisher
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

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithTxRunner(runner tx.Runner) Option {
	return func(s *Service) {
		s.tx = runner
	}
}

func New(store Store, prompts PromptCatalog, counter PromptCounter, opts ...Option) *Service {
	s := &Service{
		store:   store,
		prompts: prompts,
		counter: counter,
		tx:      tx.NoopRunner{},
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add favorites a prompt and increments its favorite count.
func (s *Service) Add(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (*models.ActionResponse, error) {
	t, err := s.prompts.FindActive(ctx, promptUUID)
	if err != nil {
		return nil, err
	}
	if !t.CanView(userID) {
		return nil, dErrors.New(dErrors.CodeForbidden, "you do not have access to this prompt")
	}
	f, err := models.NewFavorite(userID, t.ID, s.now().UTC())
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Create(ctx, f); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, "prompt is already in favorites")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add favorite")
		}
		if _, err := s.counter.AdjustFavoriteCount(ctx, t.ID, 1); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update favorite count")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, audit.ActionFavoriteAdded, userID, promptUUID)
	return &models.ActionResponse{
		ID:               f.ID,
		PromptTemplateID: t.ID,
		PromptUUID:       t.UUID,
		CreatedAt:        f.CreatedAt,
	}, nil
}

// Remove deletes a favorite and decrements the prompt's count, never below zero.
func (s *Service) Remove(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) error {
	t, err := s.prompts.FindActive(ctx, promptUUID)
	if err != nil {
		return err
	}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Delete(ctx, userID, t.ID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "favorite not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove favorite")
		}
		if _, err := s.counter.AdjustFavoriteCount(ctx, t.ID, -1); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update favorite count")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, audit.ActionFavoriteRemoved, userID, promptUUID)
	return nil
}

// ListMine pages the user's favorited prompts. Deleted prompts are skipped.
func (s *Service) ListMine(ctx context.Context, cond models.SearchCondition) (page.Result[models.FavoritePrompt], error) {
	favorites, err := s.store.ListByUser(ctx, cond.UserID)
	if err != nil {
		return page.Result[models.FavoritePrompt]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list favorites")
	}
	ids := make([]id.PromptID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.PromptID)
	}
	templates, err := s.counter.FindByIDs(ctx, ids)
	if err != nil {
		return page.Result[models.FavoritePrompt]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load favorite prompts")
	}

	byID := make(map[id.PromptID]*promptmodels.PromptTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}
	kept := make([]*models.Favorite, 0, len(favorites))
	visible := make([]*promptmodels.PromptTemplate, 0, len(favorites))
	for _, f := range favorites {
		t, ok := byID[f.PromptID]
		if !ok || t.IsDeleted() || !matchesKeyword(t, cond.Keyword) {
			continue
		}
		kept = append(kept, f)
		visible = append(visible, t)
	}

	summaries, err := s.prompts.Summaries(ctx, visible)
	if err != nil {
		return page.Result[models.FavoritePrompt]{}, err
	}
	items := make([]models.FavoritePrompt, 0, len(kept))
	for i, f := range kept {
		items = append(items, models.FavoritePrompt{
			FavoriteID:        f.ID,
			FavoriteCreatedAt: f.CreatedAt,
			PromptSummary:     summaries[i],
		})
	}
	sortFavorites(items, cond)
	return page.Slice(items, cond.Page), nil
}

func (s *Service) CountMine(ctx context.Context, userID id.UserID) (models.CountResponse, error) {
	n, err := s.store.CountByUser(ctx, userID)
	if err != nil {
		return models.CountResponse{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count favorites")
	}
	return models.CountResponse{Count: n}, nil
}

// Total counts all favorites. Used by the dashboard.
func (s *Service) Total(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count favorites")
	}
	return n, nil
}

// CountCreatedBetween counts favorites created in [start, end).
func (s *Service) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	n, err := s.store.CountCreatedBetween(ctx, start, end)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count favorites")
	}
	return n, nil
}

func matchesKeyword(t *promptmodels.PromptTemplate, keyword string) bool {
	if keyword == "" {
		return true
	}
	k := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(t.Title), k) || strings.Contains(strings.ToLower(t.Description), k) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), k) {
			return true
		}
	}
	return false
}

func sortFavorites(items []models.FavoritePrompt, cond models.SearchCondition) {
	slices.SortStableFunc(items, func(a, b models.FavoritePrompt) int {
		var c int
		if cond.Sort == models.SortTitle {
			c = strings.Compare(a.Title, b.Title)
		} else {
			c = a.FavoriteCreatedAt.Compare(b.FavoriteCreatedAt)
		}
		if !cond.Ascending {
			c = -c
		}
		return c
	})
}

func (s *Service) logAudit(ctx context.Context, action audit.Action, userID id.UserID, promptUUID uuid.UUID) {
	requestID := requestcontext.RequestID(ctx)
	s.logger.InfoContext(ctx, string(action),
		"event", string(action),
		"user_id", userID.String(),
		"prompt_id", promptUUID.String(),
		"request_id", requestID,
		"log_type", "audit",
	)
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:    action,
		UserID:    userID,
		Subject:   "prompt:" + promptUUID.String(),
		RequestID: requestID,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish audit event", "event", string(action), "error", err)
	}
}
