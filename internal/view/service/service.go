package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	promptmodels "promptserver/internal/prompt/models"
	viewmetrics "promptserver/internal/view/metrics"
	"promptserver/internal/view/models"
	"promptserver/internal/view/store"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/circuit"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/requestcontext"
)

// Cache holds duplicate markers and view counts not yet synced to the database.
type Cache interface {
	MarkViewed(ctx context.Context, key string) (bool, error)
	Increment(ctx context.Context, promptID id.PromptID) (int64, error)
	Pending(ctx context.Context, promptID id.PromptID) (int64, error)
	Take(ctx context.Context, promptID id.PromptID) (int64, error)
	Restore(ctx context.Context, promptID id.PromptID, n int64) error
	PendingPromptIDs(ctx context.Context) ([]id.PromptID, []string, error)
}

type RecordStore interface {
	Save(ctx context.Context, r *models.ViewRecord) error
	CountByPrompt(ctx context.Context, ids []id.PromptID) (map[id.PromptID]int64, error)
	CountBetween(ctx context.Context, start, end time.Time, ids []id.PromptID) (int64, error)
	CountsByPromptBetween(ctx context.Context, ids []id.PromptID, start, end time.Time) (map[id.PromptID]int64, error)
	TopPrompts(ctx context.Context, start, end time.Time, ids []id.PromptID, limit int) ([]store.PromptViews, error)
	Daily(ctx context.Context, promptID id.PromptID, start, end time.Time) ([]models.DailyViewCount, error)
}

// PromptStore reads templates and owns the stored view_count column.
type PromptStore interface {
	FindByUUID(ctx context.Context, promptUUID uuid.UUID) (*promptmodels.PromptTemplate, error)
	FindByIDs(ctx context.Context, ids []id.PromptID) ([]*promptmodels.PromptTemplate, error)
	IDsByCategories(ctx context.Context, categoryIDs []id.CategoryID) ([]id.PromptID, error)
	ViewCounts(ctx context.Context, ids []id.PromptID) (map[id.PromptID]int64, error)
	AddViewCount(ctx context.Context, promptID id.PromptID, n int64) error
}

const (
	defaultSyncConcurrency      = 10
	defaultSyncTimeout          = 5 * time.Minute
	defaultConsistencyThreshold = 10
	defaultRetryAttempts        = 3
	defaultRetryDelay           = 100 * time.Millisecond
	persistTimeout              = 5 * time.Second
)

// Service records views and keeps cached counts in step with the database.
type Service struct {
	cache   Cache
	records RecordStore
	prompts PromptStore
	logger  *slog.Logger
	metrics *viewmetrics.Metrics
	breaker *circuit.Breaker
	tracer  trace.Tracer
	now     func() time.Time

	syncConcurrency      int
	syncTimeout          time.Duration
	consistencyThreshold int64
	retryAttempts        uint
	retryDelay           time.Duration

	pending sync.WaitGroup
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *viewmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(s *Service) {
		s.breaker = b
	}
}

func WithSyncConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.syncConcurrency = n
		}
	}
}

func WithSyncTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.syncTimeout = d
		}
	}
}

func WithConsistencyThreshold(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.consistencyThreshold = n
		}
	}
}

// WithRetry sets how often a failed database increment is retried during sync.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(s *Service) {
		if attempts > 0 {
			s.retryAttempts = attempts
		}
		s.retryDelay = delay
	}
}

func New(cache Cache, records RecordStore, prompts PromptStore, opts ...Option) *Service {
	s := &Service{
		cache:                cache,
		records:              records,
		prompts:              prompts,
		logger:               slog.Default(),
		breaker:              circuit.New("view-cache"),
		tracer:               otel.Tracer("promptserver/view"),
		now:                  time.Now,
		syncConcurrency:      defaultSyncConcurrency,
		syncTimeout:          defaultSyncTimeout,
		consistencyThreshold: defaultConsistencyThreshold,
		retryAttempts:        defaultRetryAttempts,
		retryDelay:           defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordView counts a view unless the same viewer saw the prompt within the
// duplicate window. New views are persisted in the background.
func (s *Service) RecordView(ctx context.Context, req models.RecordViewRequest) (*models.RecordViewResponse, error) {
	ctx, span := s.tracer.Start(ctx, "view.record",
		trace.WithAttributes(attribute.String("prompt.uuid", req.PromptUUID.String())))
	defer span.End()

	t, err := s.findVisible(ctx, req.PromptUUID, req.UserID)
	if err != nil {
		return nil, err
	}

	var cmd *models.RecordViewCommand
	if !req.UserID.IsZero() {
		cmd, err = models.ForUser(t.UUID, t.ID, req.UserID, req.IP)
	} else {
		cmd, err = models.ForGuest(t.UUID, t.ID, req.AnonymousID, req.IP)
	}
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	stored := t.Stats.ViewCount
	if !s.breaker.Allow() {
		s.cacheSkipped()
		span.SetAttributes(attribute.Bool("view.degraded", true))
		return &models.RecordViewResponse{Success: true, TotalViewCount: stored}, nil
	}
	isNew, pending, err := s.countView(ctx, cmd)
	if err != nil {
		s.cacheFailed(ctx, "view cache unavailable, serving stored count", err)
		span.SetAttributes(attribute.Bool("view.degraded", true))
		return &models.RecordViewResponse{Success: true, TotalViewCount: stored}, nil
	}
	s.cacheSucceeded(ctx)

	if s.metrics != nil {
		s.metrics.IncrementViews(isNew)
	}
	span.SetAttributes(attribute.Bool("view.new", isNew))

	if isNew {
		s.persistAsync(ctx, models.NewViewRecord(cmd, s.now().UTC()))
		s.logger.InfoContext(ctx, "view recorded",
			"prompt_id", t.ID.String(),
			"identifier", cmd.Identifier().Kind,
			"request_id", requestcontext.RequestID(ctx),
		)
	}

	return &models.RecordViewResponse{
		Success:        true,
		TotalViewCount: stored + pending,
		IsNewView:      isNew,
	}, nil
}

// countView marks the viewer and bumps the pending count for new views. It
// returns the pending count after the update.
func (s *Service) countView(ctx context.Context, cmd *models.RecordViewCommand) (bool, int64, error) {
	isNew, err := s.cache.MarkViewed(ctx, cmd.Identifier().DuplicateKey(cmd.PromptID))
	if err != nil {
		return false, 0, err
	}
	if !isNew {
		pending, err := s.cache.Pending(ctx, cmd.PromptID)
		return false, pending, err
	}
	pending, err := s.cache.Increment(ctx, cmd.PromptID)
	return true, pending, err
}

func (s *Service) persistAsync(ctx context.Context, record *models.ViewRecord) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()
		if err := s.records.Save(ctx, record); err != nil {
			if s.metrics != nil {
				s.metrics.IncrementPersistFailures()
			}
			s.logger.WarnContext(ctx, "failed to persist view record",
				"prompt_id", record.PromptID.String(),
				"error", err,
			)
		}
	}()
}

// Wait blocks until background view persistence has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// GetViewCount returns the stored count plus views still pending in the cache.
// viewer is zero for guests.
func (s *Service) GetViewCount(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) (*models.ViewCountResponse, error) {
	t, err := s.findVisible(ctx, promptUUID, viewer)
	if err != nil {
		return nil, err
	}
	resp := &models.ViewCountResponse{PromptUUID: t.UUID, TotalViewCount: t.Stats.ViewCount}
	if !s.breaker.Allow() {
		s.cacheSkipped()
		return resp, nil
	}
	pending, err := s.cache.Pending(ctx, t.ID)
	if err != nil {
		s.cacheFailed(ctx, "view cache unavailable, serving stored count", err)
		return resp, nil
	}
	s.cacheSucceeded(ctx)
	resp.TotalViewCount += pending
	return resp, nil
}

// cacheSkipped counts a request served from the database while the breaker is open.
func (s *Service) cacheSkipped() {
	if s.metrics != nil {
		s.metrics.IncrementCacheFallbacks()
	}
}

func (s *Service) findVisible(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) (*promptmodels.PromptTemplate, error) {
	t, err := s.prompts.FindByUUID(ctx, promptUUID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "prompt not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load prompt")
	}
	if t.IsDeleted() {
		return nil, dErrors.New(dErrors.CodeNotFound, "prompt not found")
	}
	if !t.CanView(viewer) {
		return nil, dErrors.New(dErrors.CodeForbidden, "you do not have access to this prompt")
	}
	return t, nil
}

func (s *Service) cacheFailed(ctx context.Context, msg string, err error) {
	if s.metrics != nil {
		s.metrics.IncrementCacheFallbacks()
	}
	_, change := s.breaker.RecordFailure()
	if change.Opened {
		s.logger.ErrorContext(ctx, "view cache circuit opened", "breaker", s.breaker.Name())
	}
	s.logger.WarnContext(ctx, msg,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
}

func (s *Service) cacheSucceeded(ctx context.Context) {
	if _, change := s.breaker.RecordSuccess(); change.Closed {
		s.logger.InfoContext(ctx, "view cache circuit closed", "breaker", s.breaker.Name())
	}
}
