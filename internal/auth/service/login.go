package service

import (
	"context"
	"errors"
	"time"

	"promptserver/internal/auth/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/page"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/requestcontext"
)

const (
	tokenTypeBearer       = "Bearer"
	invalidCredentialsMsg = "invalid email or password"
)

// Login verifies credentials and issues an access and refresh token pair.
// Unknown email and wrong password share one message.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResult, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveLogin(start)
		}
	}()

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email, err := models.NewEmail(req.Email)
	if err != nil {
		s.recordLoginMetric("failure")
		return nil, dErrors.New(dErrors.CodeUnauthorized, invalidCredentialsMsg)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.recordLoginMetric("failure")
			return nil, dErrors.New(dErrors.CodeUnauthorized, invalidCredentialsMsg)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	if !user.CheckPassword(req.Password) {
		s.recordAttempt(ctx, user.ID, models.LoginStatusFailed)
		s.recordLoginMetric("failure")
		s.logAudit(ctx, audit.ActionLoginFailed, user.ID)
		return nil, dErrors.New(dErrors.CodeUnauthorized, invalidCredentialsMsg)
	}
	if !user.IsActive() {
		s.recordAttempt(ctx, user.ID, models.LoginStatusFailed)
		s.recordLoginMetric("failure")
		return nil, dErrors.New(dErrors.CodeForbidden, "account is not active")
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.recordAttempt(ctx, user.ID, models.LoginStatusSuccess)
	s.recordLoginMetric("success")
	s.logAudit(ctx, audit.ActionLoginSucceeded, user.ID)
	return result, nil
}

// Refresh rotates the token pair. The presented token must be the one on file.
func (s *Service) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.TokenResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.tokens.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check token blacklist")
	}
	if revoked {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	stored, err := s.refreshTokens.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load refresh token")
	}
	if stored.Token != req.RefreshToken || stored.IsExpired(s.now()) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	if !user.IsActive() {
		return nil, dErrors.New(dErrors.CodeForbidden, "account is not active")
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.ActionTokenRefreshed, user.ID)
	return result, nil
}

// Logout blacklists the access token until it expires and drops the refresh token.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	if ttl := claims.ExpiresAt.Sub(s.now()); ttl > 0 {
		if err := s.blacklist.Revoke(ctx, claims.JTI, ttl); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
		}
	}
	if err := s.refreshTokens.DeleteByUserID(ctx, claims.UserID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete refresh token")
	}

	s.logAudit(ctx, audit.ActionLogout, claims.UserID)
	return nil
}

// LoginHistory lists the user's login attempts, newest first.
func (s *Service) LoginHistory(ctx context.Context, userID id.UserID, req page.Request) (page.Result[models.LoginHistoryResponse], error) {
	req = req.Normalize()
	entries, total, err := s.loginHistory.ListByUser(ctx, userID, req)
	if err != nil {
		return page.Result[models.LoginHistoryResponse]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list login history")
	}
	return page.Map(page.NewResult(entries, req, total), func(h *models.LoginHistory) models.LoginHistoryResponse {
		return models.NewLoginHistoryResponse(h)
	}), nil
}

func (s *Service) issueTokens(ctx context.Context, user *models.User) (*models.TokenResult, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email.String(), s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate access token")
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate refresh token")
	}

	if err := s.refreshTokens.Save(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh.Token,
		ExpiresAt: refresh.ExpiresAt,
		CreatedAt: s.now(),
	}); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save refresh token")
	}

	return &models.TokenResult{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// recordAttempt never fails the login; history is best effort.
func (s *Service) recordAttempt(ctx context.Context, userID id.UserID, status models.LoginStatus) {
	entry := models.NewLoginHistory(userID, requestcontext.ClientIP(ctx), requestcontext.UserAgent(ctx), status, s.now().UTC())
	if err := s.loginHistory.Append(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "failed to record login history",
			"user_id", userID.String(),
			"status", string(status),
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func (s *Service) recordLoginMetric(result string) {
	if s.metrics != nil {
		s.metrics.IncrementLogin(result)
	}
}
