package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "promptserver/internal/auth/handler"
	authmetrics "promptserver/internal/auth/metrics"
	authservice "promptserver/internal/auth/service"
	categoryhandler "promptserver/internal/category/handler"
	categoryservice "promptserver/internal/category/service"
	categorystore "promptserver/internal/category/store"
	favoritehandler "promptserver/internal/favorite/handler"
	favoriteservice "promptserver/internal/favorite/service"
	jwttoken "promptserver/internal/jwt_token"
	likehandler "promptserver/internal/like/handler"
	likeservice "promptserver/internal/like/service"
	"promptserver/internal/platform/config"
	platformmetrics "promptserver/internal/platform/metrics"
	"promptserver/internal/platform/middleware"
	"promptserver/internal/prompt/adapters"
	prompthandler "promptserver/internal/prompt/handler"
	promptmetrics "promptserver/internal/prompt/metrics"
	promptservice "promptserver/internal/prompt/service"
	searchservice "promptserver/internal/search/service"
	statisticshandler "promptserver/internal/statistics/handler"
	statisticsservice "promptserver/internal/statistics/service"
	viewcache "promptserver/internal/view/cache"
	viewhandler "promptserver/internal/view/handler"
	viewmetrics "promptserver/internal/view/metrics"
	"promptserver/internal/view/scheduler"
	viewservice "promptserver/internal/view/service"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/audit/publisher"
	kafkaaudit "promptserver/pkg/platform/audit/store/kafka"
	"promptserver/pkg/platform/audit/store/memory"
	"promptserver/pkg/platform/circuit"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/platform/middleware/admin"
	authmw "promptserver/pkg/platform/middleware/auth"
	"promptserver/pkg/platform/middleware/metadata"
	"promptserver/pkg/platform/middleware/requesttime"
)

const (
	auditBuffer         = 1024
	auditMemoryCapacity = 10000
	requestTimeout      = 30 * time.Second
	janitorInterval     = 5 * time.Minute
)

// app is the fully wired server plus the background pieces main has to stop.
type app struct {
	router    http.Handler
	scheduler *scheduler.Scheduler
	views     *viewservice.Service
	audit     *publisher.Publisher
	limiters  []*middleware.RateLimiter
	stores    *stores
	logger    *slog.Logger
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger, in *infra) (*app, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	st := newStores(in)
	auditPublisher := newAuditPublisher(cfg, log, in)

	if in.db == nil {
		created, err := categorystore.SeedSystemCategories(ctx, st.categories, time.Now())
		if err != nil {
			auditPublisher.Close()
			return nil, err
		}
		log.Info("system categories seeded", "created", created)
	}

	// Auth
	tokens := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	authSvc := authservice.New(st.users, st.refreshTokens, st.loginHistory, st.blacklist, tokens,
		authservice.Config{
			AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
			RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
		},
		authservice.WithLogger(log),
		authservice.WithAuditPublisher(auditPublisher),
		authservice.WithMetrics(authmetrics.New(reg)),
	)
	requireAuth := authmw.RequireAuth(tokens, authSvc, log)
	optionalAuth := authmw.OptionalAuth(tokens, authSvc, log)
	adminOnly := admin.RequireAdminToken(cfg.Auth.AdminToken, log)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.Burst, log)
	viewLimiter := middleware.NewRateLimiter(cfg.RateLimit.ViewRPS, cfg.RateLimit.Burst, log)

	// Catalog
	categorySvc := categoryservice.New(st.categories,
		categoryservice.WithLogger(log),
		categoryservice.WithAuditPublisher(auditPublisher),
	)
	promptSvc := promptservice.New(
		st.templates, st.versions, st.tags,
		searchservice.New(st.search, searchservice.WithLogger(log)),
		adapters.NewUserDirectoryAdapter(st.users),
		adapters.NewCategoryDirectoryAdapter(st.categories),
		promptservice.WithLogger(log),
		promptservice.WithAuditPublisher(auditPublisher),
		promptservice.WithMetrics(promptmetrics.New(reg)),
		promptservice.WithTxRunner(st.tx),
	)

	// Engagement
	favoriteSvc := favoriteservice.New(st.favorites, promptSvc, st.templates,
		favoriteservice.WithLogger(log),
		favoriteservice.WithAuditPublisher(auditPublisher),
		favoriteservice.WithTxRunner(st.tx),
	)
	likeSvc := likeservice.New(st.likes, promptSvc, st.templates,
		likeservice.WithLogger(log),
		likeservice.WithAuditPublisher(auditPublisher),
		likeservice.WithTxRunner(st.tx),
	)

	var cache viewservice.Cache
	if in.redis != nil {
		cache = viewcache.NewRedis(in.redis.Client, cfg.View.DuplicateTTL, cfg.View.CountCacheTTL)
	} else {
		cache = viewcache.NewInMemory(cfg.View.DuplicateTTL, cfg.View.CountCacheTTL)
	}
	viewSvc := viewservice.New(cache, st.views, st.templates,
		viewservice.WithLogger(log),
		viewservice.WithMetrics(viewmetrics.New(reg)),
		viewservice.WithBreaker(circuit.New("view-cache")),
		viewservice.WithSyncConcurrency(cfg.View.SyncConcurrency),
		viewservice.WithSyncTimeout(cfg.View.SyncTimeout),
		viewservice.WithConsistencyThreshold(cfg.View.ConsistencyThreshold),
	)
	jobs, err := scheduler.New(viewSvc, cfg.View.SyncSpec, cfg.View.ConsistencySpec, log)
	if err != nil {
		auditPublisher.Close()
		return nil, err
	}

	statsSvc := statisticsservice.New(st.templates, promptSvc, categorySvc, favoriteSvc, st.users, viewSvc,
		statisticsservice.WithLogger(log),
	)

	// Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Latency(platformmetrics.New(reg)))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/health", healthHandler(in))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	authhandler.New(authSvc, log, requireAuth, loginLimiter.Handler).Register(r)
	categoryhandler.New(categorySvc, log, requireAuth).Register(r)
	prompthandler.New(promptSvc, log, requireAuth, optionalAuth).Register(r)
	favoritehandler.New(favoriteSvc, log, requireAuth).Register(r)
	likehandler.New(likeSvc, log, requireAuth).Register(r)
	viewhandler.New(viewSvc, log, optionalAuth, viewLimiter.Handler, adminOnly).Register(r)
	statisticshandler.New(statsSvc, log, requireAuth).Register(r)

	return &app{
		router:    r,
		scheduler: jobs,
		views:     viewSvc,
		audit:     auditPublisher,
		limiters:  []*middleware.RateLimiter{loginLimiter, viewLimiter},
		stores:    st,
		logger:    log,
	}, nil
}

func newAuditPublisher(cfg config.Config, log *slog.Logger, in *infra) *publisher.Publisher {
	var store audit.Store = memory.NewInMemoryStore(auditMemoryCapacity)
	if in.kafka != nil {
		store = kafkaaudit.New(in.kafka, cfg.Kafka.AuditTopic)
	}
	return publisher.NewPublisher(store,
		publisher.WithAsyncBuffer(auditBuffer),
		publisher.WithLogger(log),
	)
}

func healthHandler(in *infra) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := in.health(r.Context()); err != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// janitor drops idle rate limiter buckets and expired token revocations until ctx ends.
func (a *app) janitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := 0
			for _, l := range a.limiters {
				removed += l.Cleanup()
			}
			if removed > 0 {
				a.logger.Debug("idle rate limiters removed", "count", removed)
			}
			if a.stores.purger != nil {
				n, err := a.stores.purger.PurgeExpired(ctx)
				if err != nil {
					a.logger.Warn("failed to purge expired token revocations", "error", err)
					continue
				}
				if n > 0 {
					a.logger.Debug("expired token revocations purged", "count", n)
				}
			}
		}
	}
}

// shutdown stops background work in dependency order: jobs first, then
// in-flight view writes, then the audit buffer.
func (a *app) shutdown(ctx context.Context) {
	if err := a.scheduler.Stop(ctx); err != nil {
		a.logger.Warn("view jobs did not stop cleanly", "error", err)
	}
	a.views.Wait()
	a.audit.Close()
}
