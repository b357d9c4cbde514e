package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptserver/internal/like/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/requestcontext"
)

const prefix = "/api/v1/prompts"

type Service interface {
	AddLike(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (models.LikeResponse, error)
	RemoveLike(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (models.LikeResponse, error)
	Status(ctx context.Context, userID id.UserID, promptUUID uuid.UUID) (models.LikeStatus, error)
	ListLiked(ctx context.Context, userID id.UserID, req page.Request) (page.Result[models.LikedPrompt], error)
	MyLikeStatistics(ctx context.Context, userID id.UserID) (models.MyLikeStatistics, error)
}

type Handler struct {
	logger      *slog.Logger
	likes       Service
	requireAuth func(http.Handler) http.Handler
}

func New(likes Service, logger *slog.Logger, requireAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{
		logger:      logger,
		likes:       likes,
		requireAuth: requireAuth,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post(prefix+"/{id}/like", h.handleAdd)
		r.Delete(prefix+"/{id}/like", h.handleRemove)
		r.Get(prefix+"/{id}/like-status", h.handleStatus)
		r.Get(prefix+"/liked", h.handleListLiked)
		r.Get(prefix+"/my/like-statistics", h.handleMyStatistics)
	})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.likes.AddLike, "failed to add like")
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.likes.RemoveLike, "failed to remove like")
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, id.UserID, uuid.UUID) (models.LikeResponse, error), msg string,
) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	resp, err := fn(ctx, requestcontext.UserID(ctx), promptUUID)
	if err != nil {
		h.writeError(ctx, w, msg, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	status, err := h.likes.Status(ctx, requestcontext.UserID(ctx), promptUUID)
	if err != nil {
		h.writeError(ctx, w, "failed to load like status", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

func (h *Handler) handleListLiked(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.likes.ListLiked(ctx, requestcontext.UserID(ctx), page.FromQuery(r.URL.Query()))
	if err != nil {
		h.writeError(ctx, w, "failed to list liked prompts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleMyStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.likes.MyLikeStatistics(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to load like statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
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
