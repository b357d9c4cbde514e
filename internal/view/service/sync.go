package service

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/avast/retry-go/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

// SyncAll moves every pending cached count into the database, a bounded
// number of prompts at a time.
func (s *Service) SyncAll(ctx context.Context) (models.SyncResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.syncTimeout)
	defer cancel()
	ctx, span := s.tracer.Start(ctx, "view.sync_all")
	defer span.End()

	start := s.now()
	ids, malformed, err := s.cache.PendingPromptIDs(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scan failed")
		return models.SyncResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to scan pending view counts")
	}
	for _, key := range malformed {
		s.logger.WarnContext(ctx, "skipping malformed view count key", "key", key)
	}

	var (
		mu     sync.Mutex
		result = models.SyncResult{Prompts: len(ids)}
		g      errgroup.Group
	)
	g.SetLimit(s.syncConcurrency)
	for _, promptID := range ids {
		g.Go(func() error {
			n, err := s.syncPrompt(ctx, promptID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				s.logger.ErrorContext(ctx, "view count sync failed",
					"prompt_id", promptID.String(),
					"error", err,
				)
				return nil
			}
			result.SyncedViews += n
			return nil
		})
	}
	_ = g.Wait()

	elapsed := s.now().Sub(start)
	if s.metrics != nil {
		s.metrics.ObserveSync(elapsed.Seconds(), result.SyncedViews, result.Failed)
	}
	span.SetAttributes(
		attribute.Int("sync.prompts", result.Prompts),
		attribute.Int64("sync.views", result.SyncedViews),
		attribute.Int("sync.failed", result.Failed),
	)
	s.logger.InfoContext(ctx, "view count sync finished",
		"prompts", result.Prompts,
		"synced_views", result.SyncedViews,
		"failed", result.Failed,
		"duration", elapsed,
	)
	return result, nil
}

// ForceSync syncs a single prompt immediately and returns the number of views moved.
func (s *Service) ForceSync(ctx context.Context, promptID id.PromptID) (int64, error) {
	if promptID.IsZero() {
		return 0, dErrors.New(dErrors.CodeValidation, "prompt id is required")
	}
	n, err := s.syncPrompt(ctx, promptID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sync view count")
	}
	s.logger.InfoContext(ctx, "view count force-synced", "prompt_id", promptID.String(), "synced_views", n)
	return n, nil
}

// syncPrompt takes the pending count atomically, so views recorded while the
// increment runs land in a fresh key. A count that cannot be written is put back.
func (s *Service) syncPrompt(ctx context.Context, promptID id.PromptID) (int64, error) {
	n, err := s.cache.Take(ctx, promptID)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, nil
	}

	err = retry.Do(
		func() error {
			return s.prompts.AddViewCount(ctx, promptID, n)
		},
		retry.Context(ctx),
		retry.Attempts(s.retryAttempts),
		retry.Delay(s.retryDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if restoreErr := s.cache.Restore(context.WithoutCancel(ctx), promptID, n); restoreErr != nil {
			s.logger.ErrorContext(ctx, "lost pending views after failed sync",
				"prompt_id", promptID.String(),
				"views", n,
				"error", restoreErr,
			)
		}
		return 0, err
	}
	return n, nil
}

// CheckConsistency compares each prompt's stored view_count with its view
// records and reports those that drifted past the threshold.
func (s *Service) CheckConsistency(ctx context.Context) (models.ConsistencyReport, error) {
	ctx, span := s.tracer.Start(ctx, "view.check_consistency")
	defer span.End()

	stored, err := s.prompts.ViewCounts(ctx, nil)
	if err != nil {
		return models.ConsistencyReport{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load stored view counts")
	}
	counted, err := s.records.CountByPrompt(ctx, nil)
	if err != nil {
		return models.ConsistencyReport{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count view records")
	}

	report := models.ConsistencyReport{Checked: len(stored), Inconsistencies: []models.Inconsistency{}}
	for promptID, storedCount := range stored {
		diff := storedCount - counted[promptID]
		if abs(diff) <= s.consistencyThreshold {
			continue
		}
		report.Inconsistencies = append(report.Inconsistencies, models.Inconsistency{
			PromptID:    int64(promptID),
			StoredCount: storedCount,
			RecordCount: counted[promptID],
			Difference:  diff,
		})
		s.logger.WarnContext(ctx, "view count inconsistency detected",
			"prompt_id", promptID.String(),
			"stored", storedCount,
			"records", counted[promptID],
			"difference", diff,
		)
	}
	slices.SortFunc(report.Inconsistencies, func(a, b models.Inconsistency) int {
		return cmp.Compare(a.PromptID, b.PromptID)
	})

	if s.metrics != nil {
		s.metrics.SetInconsistencies(len(report.Inconsistencies))
	}
	span.SetAttributes(attribute.Int("consistency.inconsistent", len(report.Inconsistencies)))
	return report, nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

