package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"promptserver/internal/search/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
)

// Index stores search documents and answers ranked keyword queries.
type Index interface {
	Upsert(ctx context.Context, doc models.Document) error
	Remove(ctx context.Context, promptID id.PromptID) error
	Search(ctx context.Context, q models.Query) ([]models.Hit, int, error)
}

// Service fronts an Index with tracing and error mapping.
type Service struct {
	index  Index
	logger *slog.Logger
	tracer trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func New(index Index, opts ...Option) *Service {
	s := &Service{
		index:  index,
		logger: slog.Default(),
		tracer: otel.Tracer("promptserver/search"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Index(ctx context.Context, doc models.Document) error {
	ctx, span := s.tracer.Start(ctx, "search.index",
		trace.WithAttributes(attribute.Int64("prompt.id", int64(doc.PromptID))))
	defer span.End()

	if err := s.index.Upsert(ctx, doc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upsert failed")
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to index prompt")
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, promptID id.PromptID) error {
	ctx, span := s.tracer.Start(ctx, "search.remove",
		trace.WithAttributes(attribute.Int64("prompt.id", int64(promptID))))
	defer span.End()

	if err := s.index.Remove(ctx, promptID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "remove failed")
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove prompt from index")
	}
	return nil
}

// Search returns the ids of matching public published prompts, best match first.
func (s *Service) Search(ctx context.Context, q models.Query) (page.Result[id.PromptID], error) {
	q = q.Normalize()
	ctx, span := s.tracer.Start(ctx, "search.query", trace.WithAttributes(
		attribute.Int("page", q.Page.Page),
		attribute.Int("size", q.Page.Size),
		attribute.Int("keyword.length", len(q.Keyword)),
	))
	defer span.End()

	if q.Keyword == "" {
		return page.Result[id.PromptID]{}, dErrors.New(dErrors.CodeValidation, "search keyword is required")
	}
	hits, total, err := s.index.Search(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return page.Result[id.PromptID]{}, dErrors.Wrap(err, dErrors.CodeInternal, "search failed")
	}
	span.SetAttributes(attribute.Int("hits.total", total))

	ids := make([]id.PromptID, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.PromptID)
	}
	return page.NewResult(ids, q.Page, total), nil
}
