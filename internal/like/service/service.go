package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"promptserver/internal/like/models"
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
	Create(ctx context.Context, l *models.Like) error
	Delete(ctx context.Context, userID id.UserID, promptID id.PromptID) error
	Exists(ctx context.Context, userID id.UserID, promptID id.PromptID) (bool, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Like, error)
}

type PromptCatalog interface {
	FindActive(ctx context.Context, promptUUID uuid.UUID) (*promptmodels.PromptTemplate, error)
	Summaries(ctx context.Context, templates []*promptmodels.PromptTemplate) ([]promptmodels.PromptSummary, error)
}

// PromptCounter maintains the denormalized like count on templates.
type PromptCounter interface {
	FindByIDs(ctx context.Context, ids []id.PromptID) ([]*promptmodels.PromptTemplate, error)
	AdjustLikeCount(ctx context.Context, promptID id.PromptID, delta int64) (int64, error)
	SumLikesByAuthor(ctx context.Context, authorID id.UserID) (int64, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

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

// AddLike returns the prompt's like count after the like is recorded.
func (s *Service) AddLike(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (models.LikeResponse, error) {
	t, err := s.findVisible(ctx, userID, promptUUID)
	if err != nil {
		return models.LikeResponse{}, err
	}
	l, err := models.NewLike(userID, t.ID, s.now().UTC())
	if err != nil {
		return models.LikeResponse{}, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	var count int64
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Create(ctx, l); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, "prompt is already liked")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add like")
		}
		n, err := s.counter.AdjustLikeCount(ctx, t.ID, 1)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update like count")
		}
		count = n
		return nil
	})
	if err != nil {
		return models.LikeResponse{}, err
	}
	s.logAudit(ctx, audit.ActionLikeAdded, userID, promptUUID)
	return models.LikeResponse{LikeCount: count}, nil
}

// RemoveLike returns the prompt's like count after the like is removed.
func (s *Service) RemoveLike(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (models.LikeResponse, error) {
	t, err := s.prompts.FindActive(ctx, promptUUID)
	if err != nil {
		return models.LikeResponse{}, err
	}

	var count int64
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.Delete(ctx, userID, t.ID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "like not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove like")
		}
		n, err := s.counter.AdjustLikeCount(ctx, t.ID, -1)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update like count")
		}
		count = n
		return nil
	})
	if err != nil {
		return models.LikeResponse{}, err
	}
	s.logAudit(ctx, audit.ActionLikeRemoved, userID, promptUUID)
	return models.LikeResponse{LikeCount: count}, nil
}

func (s *Service) Status(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (models.LikeStatus, error) {
	t, err := s.findVisible(ctx, userID, promptUUID)
	if err != nil {
		return models.LikeStatus{}, err
	}
	liked, err := s.store.Exists(ctx, userID, t.ID)
	if err != nil {
		return models.LikeStatus{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load like status")
	}
	return models.LikeStatus{Liked: liked, LikeCount: t.Stats.LikeCount}, nil
}

// ListLiked pages the prompts the user liked, newest like first.
func (s *Service) ListLiked(ctx context.Context, userID id.UserID, req page.Request) (page.Result[models.LikedPrompt], error) {
	likes, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return page.Result[models.LikedPrompt]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list likes")
	}
	ids := make([]id.PromptID, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.PromptID)
	}
	templates, err := s.counter.FindByIDs(ctx, ids)
	if err != nil {
		return page.Result[models.LikedPrompt]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load liked prompts")
	}
	byID := make(map[id.PromptID]*promptmodels.PromptTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}

	kept := make([]*models.Like, 0, len(likes))
	visible := make([]*promptmodels.PromptTemplate, 0, len(likes))
	for _, l := range likes {
		if t, ok := byID[l.PromptID]; ok && !t.IsDeleted() {
			kept = append(kept, l)
			visible = append(visible, t)
		}
	}
	summaries, err := s.prompts.Summaries(ctx, visible)
	if err != nil {
		return page.Result[models.LikedPrompt]{}, err
	}
	items := make([]models.LikedPrompt, 0, len(kept))
	for i, l := range kept {
		items = append(items, models.LikedPrompt{
			ID:            summaries[i].ID,
			Title:         summaries[i].Title,
			Description:   summaries[i].Description,
			CreatedByID:   summaries[i].AuthorID,
			CreatedByName: summaries[i].AuthorName,
			LikedAt:       l.CreatedAt,
		})
	}
	return page.Slice(items, req), nil
}

// MyLikeStatistics sums the likes received across the user's prompts.
func (s *Service) MyLikeStatistics(ctx context.Context, userID id.UserID) (models.MyLikeStatistics, error) {
	total, err := s.counter.SumLikesByAuthor(ctx, userID)
	if err != nil {
		return models.MyLikeStatistics{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sum likes")
	}
	return models.MyLikeStatistics{TotalLikeCount: total}, nil
}

// findVisible loads an active prompt the user may read. A like left on a prompt
// that later went private can still be removed.
func (s *Service) findVisible(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (*promptmodels.PromptTemplate, error) {
	t, err := s.prompts.FindActive(ctx, promptUUID)
	if err != nil {
		return nil, err
	}
	if !t.CanView(userID) {
		return nil, dErrors.New(dErrors.CodeForbidden, "you do not have access to this prompt")
	}
	return t, nil
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
