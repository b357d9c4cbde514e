package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/requestcontext"
)

const (
	promptPrefix     = "/api/v1/prompts"
	statisticsPrefix = "/api/v1/view-statistics"
	adminPrefix      = "/api/v1/admin/views"
)

type Service interface {
	RecordView(ctx context.Context, req models.RecordViewRequest) (*models.RecordViewResponse, error)
	GetViewCount(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) (*models.ViewCountResponse, error)
	TopViewed(ctx context.Context, q models.TopViewedQuery) ([]*models.TopViewedPrompt, error)
	Daily(ctx context.Context, promptID id.PromptID, start, end time.Time) ([]models.DailyViewCount, error)
	Distribution(ctx context.Context, categoryIDs []id.CategoryID) ([]models.DistributionBucket, error)
	TotalByPeriod(ctx context.Context, start, end time.Time, categoryIDs []id.CategoryID) (*models.TotalViewsResponse, error)
	CountsByPromptIDs(ctx context.Context, ids []id.PromptID, start, end time.Time) (map[id.PromptID]int64, error)
	SyncAll(ctx context.Context) (models.SyncResult, error)
	ForceSync(ctx context.Context, promptID id.PromptID) (int64, error)
	CheckConsistency(ctx context.Context) (models.ConsistencyReport, error)
}

type recordViewRequest struct {
	AnonymousID string `json:"anonymousId"`
}

// Handler serves view recording, view statistics and the operator sync endpoints.
type Handler struct {
	logger       *slog.Logger
	views        Service
	optionalAuth func(http.Handler) http.Handler
	rateLimit    func(http.Handler) http.Handler
	adminOnly    func(http.Handler) http.Handler
}

// New creates a view Handler. rateLimit may be nil.
func New(views Service, logger *slog.Logger, optionalAuth, rateLimit, adminOnly func(http.Handler) http.Handler) *Handler {
	if rateLimit == nil {
		rateLimit = func(next http.Handler) http.Handler { return next }
	}
	return &Handler{
		logger:       logger,
		views:        views,
		optionalAuth: optionalAuth,
		rateLimit:    rateLimit,
		adminOnly:    adminOnly,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.With(h.optionalAuth, h.rateLimit).Post(promptPrefix+"/{id}/view", h.handleRecordView)
	r.With(h.optionalAuth).Get(promptPrefix+"/{id}/view-count", h.handleViewCount)

	r.Route(statisticsPrefix, func(r chi.Router) {
		r.Get("/top-prompts", h.handleTopPrompts)
		r.Get("/daily/{promptId}", h.handleDaily)
		r.Get("/distribution", h.handleDistribution)
		r.Get("/total", h.handleTotal)
		r.Get("/batch", h.handleBatch)
	})

	r.Route(adminPrefix, func(r chi.Router) {
		r.Use(h.adminOnly)
		r.Post("/sync", h.handleSyncAll)
		r.Post("/sync/{promptId}", h.handleForceSync)
		r.Post("/consistency-check", h.handleConsistencyCheck)
	})
}

func (h *Handler) handleRecordView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	var body recordViewRequest
	if r.ContentLength > 0 {
		if err := httputil.DecodeJSON(r, &body); err != nil {
			h.writeError(ctx, w, "invalid view request", err)
			return
		}
	}
	anonymousID := strings.TrimSpace(body.AnonymousID)
	if anonymousID == "" {
		anonymousID = requestcontext.AnonymousID(ctx)
	}

	resp, err := h.views.RecordView(ctx, models.RecordViewRequest{
		PromptUUID:  promptUUID,
		UserID:      requestcontext.UserID(ctx),
		AnonymousID: anonymousID,
		IP:          requestcontext.ClientIP(ctx),
	})
	if err != nil {
		h.writeError(ctx, w, "failed to record view", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleViewCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	resp, err := h.views.GetViewCount(ctx, promptUUID, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to load view count", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTopPrompts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	start, end, err := httputil.PeriodParams(q)
	if err != nil {
		h.writeError(ctx, w, "invalid period", err)
		return
	}
	categoryIDs, err := categoryParams(q)
	if err != nil {
		h.writeError(ctx, w, "invalid category ids", err)
		return
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			h.writeError(ctx, w, "invalid limit", dErrors.New(dErrors.CodeValidation, "limit must be a number"))
			return
		}
	}

	top, err := h.views.TopViewed(ctx, models.TopViewedQuery{Start: start, End: end, CategoryIDs: categoryIDs, Limit: limit})
	if err != nil {
		h.writeError(ctx, w, "failed to load top prompts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, top)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptID, err := id.ParsePromptID(chi.URLParam(r, "promptId"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	start, end, err := httputil.PeriodParams(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, "invalid period", err)
		return
	}
	daily, err := h.views.Daily(ctx, promptID, start, end)
	if err != nil {
		h.writeError(ctx, w, "failed to load daily views", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, daily)
}

func (h *Handler) handleDistribution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryIDs, err := categoryParams(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, "invalid category ids", err)
		return
	}
	buckets, err := h.views.Distribution(ctx, categoryIDs)
	if err != nil {
		h.writeError(ctx, w, "failed to load view distribution", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, buckets)
}

func (h *Handler) handleTotal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	start, end, err := httputil.PeriodParams(q)
	if err != nil {
		h.writeError(ctx, w, "invalid period", err)
		return
	}
	categoryIDs, err := categoryParams(q)
	if err != nil {
		h.writeError(ctx, w, "invalid category ids", err)
		return
	}
	total, err := h.views.TotalByPeriod(ctx, start, end, categoryIDs)
	if err != nil {
		h.writeError(ctx, w, "failed to count views", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, total)
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	var ids []id.PromptID
	for _, raw := range multiValue(q, "ids") {
		promptID, err := id.ParsePromptID(raw)
		if err != nil {
			h.writeError(ctx, w, "invalid prompt ids", err)
			return
		}
		ids = append(ids, promptID)
	}
	start, end, err := httputil.PeriodParams(q)
	if err != nil {
		h.writeError(ctx, w, "invalid period", err)
		return
	}
	counts, err := h.views.CountsByPromptIDs(ctx, ids, start, end)
	if err != nil {
		h.writeError(ctx, w, "failed to count views", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, counts)
}

func (h *Handler) handleSyncAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.views.SyncAll(ctx)
	if err != nil {
		h.writeError(ctx, w, "view sync failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleForceSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptID, err := id.ParsePromptID(chi.URLParam(r, "promptId"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	n, err := h.views.ForceSync(ctx, promptID)
	if err != nil {
		h.writeError(ctx, w, "force sync failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int64{"syncedViews": n})
}

func (h *Handler) handleConsistencyCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report, err := h.views.CheckConsistency(ctx)
	if err != nil {
		h.writeError(ctx, w, "consistency check failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
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

func categoryParams(q url.Values) ([]id.CategoryID, error) {
	var ids []id.CategoryID
	for _, raw := range multiValue(q, "categoryIds") {
		categoryID, err := id.ParseCategoryID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, categoryID)
	}
	return ids, nil
}

// multiValue accepts repeated parameters and comma separated lists.
func multiValue(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
