package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptserver/internal/favorite/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/requestcontext"
)

const prefix = "/api/v1/prompts"

type Service interface {
	Add(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (*models.ActionResponse, error)
	Remove(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) error
	ListMine(ctx context.Context, cond models.SearchCondition) (page.Result[models.FavoritePrompt], error)
	CountMine(ctx context.Context, userID id.UserID) (models.CountResponse, error)
}

// Handler serves favorite routes under /api/v1/prompts. Every route requires auth.
type Handler struct {
	logger      *slog.Logger
	favorites   Service
	requireAuth func(http.Handler) http.Handler
}

func New(favorites Service, logger *slog.Logger, requireAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{
		logger:      logger,
		favorites:   favorites,
		requireAuth: requireAuth,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post(prefix+"/{id}/favorite", h.handleAdd)
		r.Delete(prefix+"/{id}/favorite", h.handleRemove)
		r.Get(prefix+"/my/favorites", h.handleListMine)
		r.Get(prefix+"/my/favorites/count", h.handleCountMine)
	})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	resp, err := h.favorites.Add(ctx, requestcontext.UserID(ctx), promptUUID)
	if err != nil {
		h.writeError(ctx, w, "failed to add favorite", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	if err := h.favorites.Remove(ctx, requestcontext.UserID(ctx), promptUUID); err != nil {
		h.writeError(ctx, w, "failed to remove favorite", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	cond := models.NewSearchCondition(requestcontext.UserID(ctx), q.Get("searchKeyword"), q.Get("sort"), q.Get("order"), page.FromQuery(q))
	result, err := h.favorites.ListMine(ctx, cond)
	if err != nil {
		h.writeError(ctx, w, "failed to list favorites", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCountMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	count, err := h.favorites.CountMine(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to count favorites", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, count)
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
