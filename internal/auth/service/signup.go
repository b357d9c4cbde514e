package service

import (
	"context"
	"errors"

	"promptserver/internal/auth/models"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/sentinel"
)

// SignUp creates an active USER account.
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email, err := models.NewEmail(req.Email)
	if err != nil {
		return nil, toValidation(err)
	}
	password, err := models.NewPassword(req.Password)
	if err != nil {
		return nil, toValidation(err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "email is already registered")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check email")
	}

	hash, err := password.Hash()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	user, err := models.NewUser(email, req.Name, hash, s.now().UTC())
	if err != nil {
		return nil, toValidation(err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "email is already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.logAudit(ctx, audit.ActionUserCreated, user.ID)
	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
	return user, nil
}

// toValidation converts invariant violations to validation errors for API responses.
func toValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	return err
}
