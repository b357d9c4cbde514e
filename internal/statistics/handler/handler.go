package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	promptmodels "promptserver/internal/prompt/models"
	"promptserver/internal/statistics/models"
	viewmodels "promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/requestcontext"
)

const prefix = "/api/v1/dashboard"

type Service interface {
	PromptStatistics(ctx context.Context, start, end time.Time) (*models.PromptStatistics, error)
	FavoriteStatistics(ctx context.Context, start, end time.Time) (*models.CountStatistics, error)
	UserStatistics(ctx context.Context, start, end time.Time) (*models.CountStatistics, error)
	RootCategoryStatistics(ctx context.Context) (*models.CategoryStatistics, error)
	ChildCategoryStatistics(ctx context.Context, rootID id.CategoryID) (*models.CategoryStatistics, error)
	RecentPrompts(ctx context.Context, limit int) ([]promptmodels.PromptSummary, error)
	WeeklyViews(ctx context.Context) (*viewmodels.WeeklyViewStatistics, error)
}

// Handler serves the dashboard cards. Every route requires authentication.
type Handler struct {
	logger      *slog.Logger
	stats       Service
	requireAuth func(http.Handler) http.Handler
}

func New(stats Service, logger *slog.Logger, requireAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{
		logger:      logger,
		stats:       stats,
		requireAuth: requireAuth,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Route(prefix, func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/prompt-statistics", h.handlePromptStatistics)
		r.Get("/favorite-statistics", h.handleFavoriteStatistics)
		r.Get("/user-statistics", h.handleUserStatistics)
		r.Get("/categories/root/statistics", h.handleRootCategories)
		r.Get("/categories/{rootId}/children/statistics", h.handleChildCategories)
		r.Get("/view-statistics/weekly", h.handleWeeklyViews)
		r.Get("/prompts/recent", h.handleRecentPrompts)
	})
}

func (h *Handler) handlePromptStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start, end, err := httputil.PeriodParams(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, "invalid prompt statistics period", err)
		return
	}
	stats, err := h.stats.PromptStatistics(ctx, start, end)
	if err != nil {
		h.writeError(ctx, w, "failed to load prompt statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleFavoriteStatistics(w http.ResponseWriter, r *http.Request) {
	h.countStatistics(w, r, "favorite", h.stats.FavoriteStatistics)
}

func (h *Handler) handleUserStatistics(w http.ResponseWriter, r *http.Request) {
	h.countStatistics(w, r, "user", h.stats.UserStatistics)
}

func (h *Handler) countStatistics(
	w http.ResponseWriter,
	r *http.Request,
	kind string,
	load func(ctx context.Context, start, end time.Time) (*models.CountStatistics, error),
) {
	ctx := r.Context()
	start, end, err := httputil.PeriodParams(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, "invalid "+kind+" statistics period", err)
		return
	}
	stats, err := load(ctx, start, end)
	if err != nil {
		h.writeError(ctx, w, "failed to load "+kind+" statistics", err)
		return
	}
	h.logger.DebugContext(ctx, kind+" statistics loaded",
		"total", stats.TotalCount,
		"current", stats.CurrentCount,
		"previous", stats.PreviousCount,
	)
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleRootCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.stats.RootCategoryStatistics(ctx)
	if err != nil {
		h.writeError(ctx, w, "failed to load root category statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleChildCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rootID, err := id.ParseCategoryID(chi.URLParam(r, "rootId"))
	if err != nil {
		h.writeError(ctx, w, "invalid root category id", err)
		return
	}
	stats, err := h.stats.ChildCategoryStatistics(ctx, rootID)
	if err != nil {
		h.writeError(ctx, w, "failed to load child category statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleWeeklyViews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.stats.WeeklyViews(ctx)
	if err != nil {
		h.writeError(ctx, w, "failed to load weekly view statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

// handleRecentPrompts reads pageSize; missing or unparsable sizes fall back to the service default.
func (h *Handler) handleRecentPrompts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	prompts, err := h.stats.RecentPrompts(ctx, limit)
	if err != nil {
		h.writeError(ctx, w, "failed to load recent prompts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, prompts)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	log := h.logger.WarnContext
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		log = h.logger.ErrorContext
	}
	log(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err.Error(),
	)
	httputil.WriteError(w, err)
}
