package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"promptserver/internal/category/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/requestcontext"
)

type Service interface {
	Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	Get(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	List(ctx context.Context, isSystem *bool) ([]*models.Category, error)
	Roots(ctx context.Context) ([]*models.Category, error)
	Subcategories(ctx context.Context, parentID id.CategoryID) ([]*models.Category, error)
	Update(ctx context.Context, categoryID id.CategoryID, req *models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, categoryID id.CategoryID) error
}

// Handler serves /api/v1/categories.
type Handler struct {
	logger      *slog.Logger
	categories  Service
	requireAuth func(http.Handler) http.Handler
}

func New(categories Service, logger *slog.Logger, requireAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{
		logger:      logger,
		categories:  categories,
		requireAuth: requireAuth,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/roots", h.handleRoots)
		r.Get("/{id}", h.handleGet)
		r.Get("/{id}/subcategories", h.handleSubcategories)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/", h.handleCreate)
			r.Put("/{id}", h.handleUpdate)
			r.Delete("/{id}", h.handleDelete)
		})
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.CreateCategoryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid category request", err)
		return
	}
	c, err := h.categories.Create(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, "failed to create category", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := id.ParseCategoryID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid category id", err)
		return
	}
	c, err := h.categories.Get(ctx, categoryID)
	if err != nil {
		h.writeError(ctx, w, "failed to get category", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var isSystem *bool
	if raw := r.URL.Query().Get("isSystem"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(ctx, w, "invalid isSystem filter", dErrors.New(dErrors.CodeInvalidInput, "isSystem must be true or false"))
			return
		}
		isSystem = &v
	}
	categories, err := h.categories.List(ctx, isSystem)
	if err != nil {
		h.writeError(ctx, w, "failed to list categories", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, nonNil(categories))
}

func (h *Handler) handleRoots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categories, err := h.categories.Roots(ctx)
	if err != nil {
		h.writeError(ctx, w, "failed to list root categories", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, nonNil(categories))
}

func (h *Handler) handleSubcategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	parentID, err := id.ParseCategoryID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid category id", err)
		return
	}
	categories, err := h.categories.Subcategories(ctx, parentID)
	if err != nil {
		h.writeError(ctx, w, "failed to list subcategories", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, nonNil(categories))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := id.ParseCategoryID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid category id", err)
		return
	}
	var req models.UpdateCategoryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid category request", err)
		return
	}
	c, err := h.categories.Update(ctx, categoryID, &req)
	if err != nil {
		h.writeError(ctx, w, "failed to update category", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := id.ParseCategoryID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid category id", err)
		return
	}
	if err := h.categories.Delete(ctx, categoryID); err != nil {
		h.writeError(ctx, w, "failed to delete category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
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

func nonNil(categories []*models.Category) []*models.Category {
	if categories == nil {
		return []*models.Category{}
	}
	return categories
}
