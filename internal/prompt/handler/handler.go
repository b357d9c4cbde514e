package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/requestcontext"
)

// Prefix is shared with the favorite, like and view handlers, which register
// their routes below it.
const Prefix = "/api/v1/prompts"

type Service interface {
	Register(ctx context.Context, cmd *models.RegisterPromptCommand) (*models.PromptDetail, error)
	Update(ctx context.Context, cmd *models.UpdatePromptCommand) (*models.PromptDetail, error)
	Delete(ctx context.Context, promptUUID uuid.UUID, userID id.UserID) (*models.DeleteResult, error)
	Get(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) (*models.PromptDetail, error)
	ListPublic(ctx context.Context, sort models.SortType, req page.Request) (page.Result[models.PromptSummary], error)
	ListByAuthor(ctx context.Context, authorID id.UserID, req page.Request) (page.Result[models.PromptSummary], error)
	ListByCategory(ctx context.Context, categoryID id.CategoryID, req page.Request) (page.Result[models.PromptSummary], error)
	AdvancedSearch(ctx context.Context, cond models.AdvancedSearchCondition) (page.Result[models.PromptSummary], error)
	ListMine(ctx context.Context, cond models.MyPromptCondition) (page.Result[models.PromptSummary], error)
	MyStatistics(ctx context.Context, userID id.UserID) (models.MyStatistics, error)
	Search(ctx context.Context, keyword string, req page.Request) (page.Result[models.PromptSummary], error)
	CreateVersion(ctx context.Context, promptUUID uuid.UUID, editor id.UserID, req *models.CreateVersionRequest) (*models.VersionResponse, error)
	ListVersions(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) ([]models.VersionResponse, error)
	GetVersion(ctx context.Context, promptUUID uuid.UUID, number int, viewer id.UserID) (*models.VersionResponse, error)
	DeleteVersion(ctx context.Context, promptUUID uuid.UUID, number int, editor id.UserID) error
}

// Handler serves prompt CRUD, listings, search and versions.
type Handler struct {
	logger       *slog.Logger
	prompts      Service
	requireAuth  func(http.Handler) http.Handler
	optionalAuth func(http.Handler) http.Handler
}

func New(prompts Service, logger *slog.Logger, requireAuth, optionalAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{
		logger:       logger,
		prompts:      prompts,
		requireAuth:  requireAuth,
		optionalAuth: optionalAuth,
	}
}

// Register adds routes with full paths so other handlers can share Prefix.
func (h *Handler) Register(r chi.Router) {
	r.Get(Prefix+"/public", h.handleListPublic)
	r.Get(Prefix+"/author/{authorId}", h.handleListByAuthor)
	r.Get(Prefix+"/category/{categoryId}", h.handleListByCategory)
	r.Get(Prefix+"/advanced-search", h.handleAdvancedSearch)
	r.Get(Prefix+"/search", h.handleSearch)

	r.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Get(Prefix+"/{id}", h.handleGet)
		r.Get(Prefix+"/{id}/versions", h.handleListVersions)
		r.Get(Prefix+"/{id}/versions/{number}", h.handleGetVersion)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post(Prefix, h.handleCreate)
		r.Put(Prefix+"/{id}", h.handleUpdate)
		r.Delete(Prefix+"/{id}", h.handleDelete)
		r.Get(Prefix+"/my", h.handleListMine)
		r.Get(Prefix+"/my/statistics", h.handleMyStatistics)
		r.Post(Prefix+"/{id}/versions", h.handleCreateVersion)
		r.Delete(Prefix+"/{id}/versions/{number}", h.handleDeleteVersion)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.CreatePromptRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid prompt request", err)
		return
	}
	detail, err := h.prompts.Register(ctx, models.NewRegisterPromptCommand(&req, requestcontext.UserID(ctx)))
	if err != nil {
		h.writeError(ctx, w, "failed to create prompt", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, detail)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	detail, err := h.prompts.Get(ctx, promptUUID, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to get prompt", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	var req models.UpdatePromptRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid prompt request", err)
		return
	}
	detail, err := h.prompts.Update(ctx, models.NewUpdatePromptCommand(promptUUID, requestcontext.UserID(ctx), &req))
	if err != nil {
		h.writeError(ctx, w, "failed to update prompt", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	result, err := h.prompts.Delete(ctx, promptUUID, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to delete prompt", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleListPublic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	result, err := h.prompts.ListPublic(ctx, models.ParseSortType(sortParam(q)), page.FromQuery(q))
	if err != nil {
		h.writeError(ctx, w, "failed to list public prompts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleListByAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authorID, err := id.ParseUserID(chi.URLParam(r, "authorId"))
	if err != nil {
		h.writeError(ctx, w, "invalid author id", err)
		return
	}
	result, err := h.prompts.ListByAuthor(ctx, authorID, page.FromQuery(r.URL.Query()))
	if err != nil {
		h.writeError(ctx, w, "failed to list author prompts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleListByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, err := id.ParseCategoryID(chi.URLParam(r, "categoryId"))
	if err != nil {
		h.writeError(ctx, w, "invalid category id", err)
		return
	}
	result, err := h.prompts.ListByCategory(ctx, categoryID, page.FromQuery(r.URL.Query()))
	if err != nil {
		h.writeError(ctx, w, "failed to list category prompts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleAdvancedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	cond := models.AdvancedSearchCondition{
		Title:       q.Get("title"),
		Description: q.Get("description"),
		Tag:         q.Get("tag"),
		Status:      models.ParseStatus(q.Get("status"), models.StatusPublished),
		Sort:        models.ParseSortType(sortParam(q)),
		Page:        page.FromQuery(q),
	}
	if raw := q.Get("categoryId"); raw != "" {
		categoryID, err := id.ParseCategoryID(raw)
		if err != nil {
			h.writeError(ctx, w, "invalid category id", err)
			return
		}
		cond.CategoryID = &categoryID
	}
	if cond.Status == models.StatusDeleted {
		h.writeError(ctx, w, "invalid advanced search status", dErrors.New(dErrors.CodeValidation, "deleted prompts cannot be searched"))
		return
	}
	result, err := h.prompts.AdvancedSearch(ctx, cond)
	if err != nil {
		h.writeError(ctx, w, "advanced search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	result, err := h.prompts.Search(ctx, q.Get("q"), page.FromQuery(q))
	if err != nil {
		h.writeError(ctx, w, "search failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	cond := models.MyPromptCondition{
		UserID:  requestcontext.UserID(ctx),
		Keyword: firstOf(q, "searchKeyword", "keyword"),
		Sort:    models.ParseSortType(sortParam(q)),
		Page:    page.FromQuery(q),
	}
	for _, raw := range multiValue(q, "statusFilters", "status") {
		if st := models.ParseStatus(raw, ""); st != "" {
			cond.Statuses = append(cond.Statuses, st)
		}
	}
	for _, raw := range multiValue(q, "visibilityFilters", "visibility") {
		if v := models.ParseVisibility(raw, ""); v != "" {
			cond.Visibilities = append(cond.Visibilities, v)
		}
	}
	result, err := h.prompts.ListMine(ctx, cond)
	if err != nil {
		h.writeError(ctx, w, "failed to list my prompts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleMyStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.prompts.MyStatistics(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to load my statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleCreateVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	var req models.CreateVersionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid version request", err)
		return
	}
	version, err := h.prompts.CreateVersion(ctx, promptUUID, requestcontext.UserID(ctx), &req)
	if err != nil {
		h.writeError(ctx, w, "failed to create version", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, version)
}

func (h *Handler) handleListVersions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(ctx, w, "invalid prompt id", err)
		return
	}
	versions, err := h.prompts.ListVersions(ctx, promptUUID, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to list versions", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, versions)
}

func (h *Handler) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, number, err := versionParams(r)
	if err != nil {
		h.writeError(ctx, w, "invalid version path", err)
		return
	}
	version, err := h.prompts.GetVersion(ctx, promptUUID, number, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "failed to get version", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, version)
}

func (h *Handler) handleDeleteVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	promptUUID, number, err := versionParams(r)
	if err != nil {
		h.writeError(ctx, w, "invalid version path", err)
		return
	}
	if err := h.prompts.DeleteVersion(ctx, promptUUID, number, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "failed to delete version", err)
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

func versionParams(r *http.Request) (uuid.UUID, int, error) {
	promptUUID, err := id.ParsePromptUUID(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, 0, err
	}
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		return uuid.Nil, 0, dErrors.New(dErrors.CodeInvalidInput, "version number must be an integer")
	}
	return promptUUID, number, nil
}

func sortParam(q url.Values) string {
	return firstOf(q, "sortType", "sort")
}

func firstOf(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// multiValue accepts repeated parameters and comma separated lists.
func multiValue(q url.Values, keys ...string) []string {
	var out []string
	for _, k := range keys {
		for _, raw := range q[k] {
			for _, part := range strings.Split(raw, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}
