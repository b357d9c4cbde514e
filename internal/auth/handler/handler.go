package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/httputil"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/requestcontext"
)

// Service defines the interface for auth operations.
type Service interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.TokenResult, error)
	Logout(ctx context.Context, accessToken string) error
	LoginHistory(ctx context.Context, userID id.UserID, req page.Request) (page.Result[models.LoginHistoryResponse], error)
}

// Handler handles the /api/auth endpoints.
type Handler struct {
	logger      *slog.Logger
	auth        Service
	requireAuth func(http.Handler) http.Handler
	loginLimit  func(http.Handler) http.Handler
}

// New creates an auth Handler. loginLimit may be nil.
func New(auth Service, logger *slog.Logger, requireAuth, loginLimit func(http.Handler) http.Handler) *Handler {
	if loginLimit == nil {
		loginLimit = func(next http.Handler) http.Handler { return next }
	}
	return &Handler{
		logger:      logger,
		auth:        auth,
		requireAuth: requireAuth,
		loginLimit:  loginLimit,
	}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.handleSignUp)
		r.With(h.loginLimit).Post("/login", h.handleLogin)
		r.With(h.loginLimit).Post("/refresh", h.handleRefresh)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/logout", h.handleLogout)
			r.Get("/login-history", h.handleLoginHistory)
		})
	})
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.SignUpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid sign-up request", err)
		return
	}
	user, err := h.auth.SignUp(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, "sign-up failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewUserResponse(user))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid login request", err)
		return
	}
	result, err := h.auth.Login(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, "login failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.RefreshRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "invalid refresh request", err)
		return
	}
	result, err := h.auth.Refresh(ctx, &req)
	if err != nil {
		h.writeError(ctx, w, "token refresh failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, ok := requestcontext.AccessToken(ctx)
	if !ok {
		// RequireAuth always sets the token; reaching here means the route is misconfigured.
		h.logger.ErrorContext(ctx, "access token missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}
	if err := h.auth.Logout(ctx, token.Raw); err != nil {
		h.writeError(ctx, w, "logout failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLoginHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	result, err := h.auth.LoginHistory(ctx, requestcontext.UserID(ctx), page.FromQuery(r.URL.Query()))
	if err != nil {
		h.writeError(ctx, w, "failed to list login history", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
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
