package service

import (
	"context"
	"log/slog"
	"time"

	"promptserver/internal/auth/metrics"
	"promptserver/internal/auth/models"
	jwttoken "promptserver/internal/jwt_token"
	id "promptserver/pkg/domain"
	"promptserver/pkg/platform/audit"
	authmw "promptserver/pkg/platform/middleware/auth"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/requestcontext"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email models.Email) (*models.User, error)
}

type RefreshTokenStore interface {
	Save(ctx context.Context, token *models.RefreshToken) error
	FindByUserID(ctx context.Context, userID id.UserID) (*models.RefreshToken, error)
	DeleteByUserID(ctx context.Context, userID id.UserID) error
}

type LoginHistoryStore interface {
	Append(ctx context.Context, entry *models.LoginHistory) error
	ListByUser(ctx context.Context, userID id.UserID, req page.Request) ([]*models.LoginHistory, int, error)
}

type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type TokenIssuer interface {
	GenerateAccessToken(userID id.UserID, email string, expiresIn time.Duration) (jwttoken.IssuedToken, error)
	GenerateRefreshToken(userID id.UserID, expiresIn time.Duration) (jwttoken.IssuedToken, error)
	ValidateAccessToken(token string) (*authmw.Claims, error)
	ValidateRefreshToken(token string) (*jwttoken.Claims, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Config holds token lifetimes.
type Config struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Service handles sign-up, login, token rotation and logout.
type Service struct {
	users          UserStore
	refreshTokens  RefreshTokenStore
	loginHistory   LoginHistoryStore
	blacklist      TokenBlacklist
	tokens         TokenIssuer
	cfg            Config
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	now            func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	users UserStore,
	refreshTokens RefreshTokenStore,
	loginHistory LoginHistoryStore,
	blacklist TokenBlacklist,
	tokens TokenIssuer,
	cfg Config,
	opts ...Option,
) *Service {
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = time.Hour
	}
	if cfg.RefreshTokenTTL <= 0 {
		cfg.RefreshTokenTTL = 14 * 24 * time.Hour
	}
	s := &Service{
		users:         users,
		refreshTokens: refreshTokens,
		loginHistory:  loginHistory,
		blacklist:     blacklist,
		tokens:        tokens,
		cfg:           cfg,
		logger:        slog.Default(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsRevoked lets the auth middleware reject blacklisted access tokens.
func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.blacklist.IsRevoked(ctx, jti)
}

func (s *Service) logAudit(ctx context.Context, action audit.Action, userID id.UserID, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	args := append(attributes, "event", string(action), "user_id", userID.String(), "log_type", "audit")
	if requestID != "" {
		args = append(args, "request_id", requestID)
	}
	s.logger.InfoContext(ctx, string(action), args...)
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:    action,
		UserID:    userID,
		Subject:   "user:" + userID.String(),
		RequestID: requestID,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish audit event", "event", string(action), "error", err)
	}
}
