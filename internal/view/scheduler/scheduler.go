// Package scheduler runs the periodic view count jobs: moving pending counts
// from the cache into the database and auditing stored counts against view
// records.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"promptserver/internal/view/models"
)

type Jobs interface {
	SyncAll(ctx context.Context) (models.SyncResult, error)
	CheckConsistency(ctx context.Context) (models.ConsistencyReport, error)
}

// Scheduler owns a cron runner with the sync and consistency jobs registered.
type Scheduler struct {
	cron   *cron.Cron
	jobs   Jobs
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// New registers both jobs. Specs use the standard five-field cron syntax or
// descriptors such as "@every 30m".
func New(jobs Jobs, syncSpec, consistencySpec string, logger *slog.Logger) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
			cron.Recover(cron.DiscardLogger),
		)),
		jobs:   jobs,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	if _, err := s.cron.AddFunc(syncSpec, s.runSync); err != nil {
		cancel()
		return nil, fmt.Errorf("schedule view sync %q: %w", syncSpec, err)
	}
	if _, err := s.cron.AddFunc(consistencySpec, s.runConsistencyCheck); err != nil {
		cancel()
		return nil, fmt.Errorf("schedule consistency check %q: %w", consistencySpec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("view jobs scheduled", "entries", len(s.cron.Entries()))
}

// Stop cancels running jobs and waits for them to return or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runSync() {
	if _, err := s.jobs.SyncAll(s.ctx); err != nil {
		s.logger.Error("scheduled view sync failed", "error", err)
	}
}

func (s *Scheduler) runConsistencyCheck() {
	report, err := s.jobs.CheckConsistency(s.ctx)
	if err != nil {
		s.logger.Error("scheduled view consistency check failed", "error", err)
		return
	}
	s.logger.Info("view consistency check finished",
		"checked", report.Checked,
		"inconsistent", len(report.Inconsistencies),
	)
}
