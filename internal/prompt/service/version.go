package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/sentinel"
)

// CreateVersion appends an EDIT version and makes it current.
func (s *Service) CreateVersion(ctx context.Context, promptUUID uuid.UUID, editor id.UserID, req *models.CreateVersionRequest) (*models.VersionResponse, error) {
	t, err := s.FindActive(ctx, promptUUID)
	if err != nil {
		return nil, err
	}
	if !t.IsAuthor(editor) {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the author can add versions")
	}

	now := s.now().UTC()
	var created *models.PromptVersion
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		latest, err := s.versions.LatestNumber(ctx, t.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load latest version")
		}
		v, err := models.NewPromptVersion(t.ID, latest+1, req.Content, req.Changes, req.InputVariables,
			models.ActionEdit, editor, now)
		if err != nil {
			return toValidation(err)
		}
		if err := s.versions.Create(ctx, v); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, "prompt was modified concurrently")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create prompt version")
		}
		if err := t.SetCurrentVersion(v.ID, now); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set current version")
		}
		if err := s.templates.Update(ctx, t); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update prompt")
		}
		created = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.index(ctx, t, created.Content)
	s.logAudit(ctx, audit.ActionPromptVersionCreated, editor, t, map[string]string{"version": strconv.Itoa(created.VersionNumber)})
	if s.metrics != nil {
		s.metrics.IncrementVersionsCreated(string(created.ActionType))
	}
	resp := models.NewVersionResponse(created, t.CurrentVersionID)
	return &resp, nil
}

func (s *Service) ListVersions(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) ([]models.VersionResponse, error) {
	t, err := s.viewable(ctx, promptUUID, viewer)
	if err != nil {
		return nil, err
	}
	versions, err := s.versions.ListByTemplate(ctx, t.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list versions")
	}
	out := make([]models.VersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, models.NewVersionResponse(v, t.CurrentVersionID))
	}
	return out, nil
}

func (s *Service) GetVersion(ctx context.Context, promptUUID uuid.UUID, number int, viewer id.UserID) (*models.VersionResponse, error) {
	t, err := s.viewable(ctx, promptUUID, viewer)
	if err != nil {
		return nil, err
	}
	v, err := s.findVersion(ctx, t.ID, number)
	if err != nil {
		return nil, err
	}
	resp := models.NewVersionResponse(v, t.CurrentVersionID)
	return &resp, nil
}

// DeleteVersion removes a non-current version.
func (s *Service) DeleteVersion(ctx context.Context, promptUUID uuid.UUID, number int, editor id.UserID) error {
	t, err := s.FindActive(ctx, promptUUID)
	if err != nil {
		return err
	}
	if !t.IsAuthor(editor) {
		return dErrors.New(dErrors.CodeForbidden, "only the author can delete versions")
	}
	v, err := s.findVersion(ctx, t.ID, number)
	if err != nil {
		return err
	}
	if v.ID == t.CurrentVersionID {
		return dErrors.New(dErrors.CodeConflict, "the current version cannot be deleted")
	}
	if err := s.versions.Delete(ctx, v.ID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "version not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete version")
	}
	s.logAudit(ctx, audit.ActionPromptVersionDeleted, editor, t, map[string]string{"version": strconv.Itoa(number)})
	return nil
}

func (s *Service) viewable(ctx context.Context, promptUUID uuid.UUID, viewer id.UserID) (*models.PromptTemplate, error) {
	t, err := s.FindActive(ctx, promptUUID)
	if err != nil {
		return nil, err
	}
	if !t.CanView(viewer) {
		return nil, dErrors.New(dErrors.CodeForbidden, "you do not have access to this prompt")
	}
	return t, nil
}

func (s *Service) findVersion(ctx context.Context, templateID id.PromptID, number int) (*models.PromptVersion, error) {
	if number < 1 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "version number must be positive")
	}
	v, err := s.versions.FindByNumber(ctx, templateID, number)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "version not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load version")
	}
	return v, nil
}
