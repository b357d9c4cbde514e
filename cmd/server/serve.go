package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"promptserver/internal/platform/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API together with the scheduled view count jobs.

The server provides:
  - /health  - backend connectivity check
  - /metrics - Prometheus metrics

On SIGINT or SIGTERM the server drains requests, stops the view jobs, waits
for pending view writes and flushes the audit buffer before exiting.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.UsesDevSigningKey() {
		log.Warn("using the development JWT signing key, set JWT_SIGNING_KEY in production")
	}

	in, err := openInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer in.close()

	a, err := newApp(ctx, cfg, log, in)
	if err != nil {
		return err
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go a.janitor(bgCtx)
	a.scheduler.Start()

	srv := httpserver.New(cfg.Server.Addr, a.router)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting promptserver", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("server error", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	stopBackground()
	a.shutdown(shutdownCtx)
	log.Info("promptserver stopped")
	return nil
}
