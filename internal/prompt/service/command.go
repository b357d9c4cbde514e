package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/sentinel"
)

const initialChanges = "initial creation"

// Register creates a template with version 1 and its tags.
// Without an explicit visibility the prompt is TEAM for team members, else PRIVATE.
func (s *Service) Register(ctx context.Context, cmd *models.RegisterPromptCommand) (*models.PromptDetail, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}
	author, err := s.author(ctx, cmd.CreatedBy)
	if err != nil {
		return nil, err
	}

	visibility := cmd.Visibility
	if visibility == "" {
		visibility = models.VisibilityPrivate
		if author.TeamID != nil {
			visibility = models.VisibilityTeam
		}
	}

	now := s.now().UTC()
	var (
		template *models.PromptTemplate
		version  *models.PromptVersion
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		t, err := models.NewPromptTemplate(uuid.Nil, cmd.Title, cmd.Description, cmd.CategoryID,
			cmd.CreatedBy, visibility, cmd.Status, cmd.Tags, now)
		if err != nil {
			return toValidation(err)
		}
		if err := s.templates.Create(ctx, t); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create prompt")
		}

		v, err := models.NewPromptVersion(t.ID, 1, cmd.Content, initialChanges, cmd.InputVariables,
			models.ActionCreate, cmd.CreatedBy, now)
		if err != nil {
			return toValidation(err)
		}
		if err := s.versions.Create(ctx, v); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create prompt version")
		}
		if err := t.SetCurrentVersion(v.ID, now); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set current version")
		}
		if err := s.templates.Update(ctx, t); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update prompt")
		}
		if err := s.attachTags(ctx, t); err != nil {
			return err
		}
		template, version = t, v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.index(ctx, template, version.Content)
	s.logAudit(ctx, audit.ActionPromptCreated, cmd.CreatedBy, template, map[string]string{"title": template.Title})
	if s.metrics != nil {
		s.metrics.IncrementPromptsCreated()
		s.metrics.IncrementVersionsCreated(string(models.ActionCreate))
	}
	categoryName, err := s.optionalCategoryName(ctx, template.CategoryID)
	if err != nil {
		return nil, err
	}
	return buildDetail(template, version, author, categoryName), nil
}

// Update replaces metadata and tags. A new version is appended only when the
// content or input variables changed.
func (s *Service) Update(ctx context.Context, cmd *models.UpdatePromptCommand) (*models.PromptDetail, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	t, err := s.FindActive(ctx, cmd.UUID)
	if err != nil {
		return nil, err
	}
	if !t.IsAuthor(cmd.EditorID) {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the author can edit this prompt")
	}
	if err := s.requireCategory(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var current *models.PromptVersion
	newVersion := false
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.currentVersion(ctx, t)
		if err != nil {
			return err
		}
		if err := t.Update(cmd.Title, cmd.Description, cmd.CategoryID, cmd.Visibility, cmd.Status, cmd.Tags, now); err != nil {
			return toValidation(err)
		}

		if v == nil || !v.SameBody(cmd.Content, cmd.InputVariables) {
			latest, err := s.versions.LatestNumber(ctx, t.ID)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load latest version")
			}
			v, err = models.NewPromptVersion(t.ID, latest+1, cmd.Content, "", cmd.InputVariables,
				models.ActionForStatus(cmd.Status), cmd.EditorID, now)
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
			newVersion = true
		}

		if err := s.templates.Update(ctx, t); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update prompt")
		}
		if err := s.attachTags(ctx, t); err != nil {
			return err
		}
		current = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.index(ctx, t, current.Content)
	s.logAudit(ctx, audit.ActionPromptUpdated, cmd.EditorID, t, map[string]string{"status": string(t.Status)})
	if newVersion && s.metrics != nil {
		s.metrics.IncrementVersionsCreated(string(current.ActionType))
	}
	author, err := s.author(ctx, t.CreatedByID)
	if err != nil {
		return nil, err
	}
	categoryName, err := s.optionalCategoryName(ctx, t.CategoryID)
	if err != nil {
		return nil, err
	}
	return buildDetail(t, current, author, categoryName), nil
}

// Delete marks the template DELETED and drops it from search.
func (s *Service) Delete(ctx context.Context, promptUUID uuid.UUID, userID id.UserID) (*models.DeleteResult, error) {
	t, err := s.FindActive(ctx, promptUUID)
	if err != nil {
		return nil, err
	}
	if !t.IsAuthor(userID) {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the author can delete this prompt")
	}

	now := s.now().UTC()
	previous, err := t.MarkDeleted(now)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "prompt not found")
	}
	if err := s.templates.Update(ctx, t); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete prompt")
	}

	if err := s.search.Remove(ctx, t.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to remove prompt from index", "prompt_id", t.ID.String(), "error", err)
	}
	s.logAudit(ctx, audit.ActionPromptDeleted, userID, t, map[string]string{"previousStatus": string(previous)})
	if s.metrics != nil {
		s.metrics.IncrementPromptsDeleted()
	}
	return &models.DeleteResult{
		ID:             t.UUID,
		Title:          t.Title,
		PreviousStatus: previous,
		DeletedAt:      now,
		DeletedBy:      userID,
	}, nil
}

// currentVersion returns nil when the template has no current version.
func (s *Service) currentVersion(ctx context.Context, t *models.PromptTemplate) (*models.PromptVersion, error) {
	if t.CurrentVersionID <= 0 {
		return nil, nil
	}
	v, err := s.versions.FindByID(ctx, t.CurrentVersionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load current version")
	}
	return v, nil
}

func (s *Service) optionalCategoryName(ctx context.Context, categoryID *id.CategoryID) (string, error) {
	if categoryID == nil {
		return "", nil
	}
	return s.categoryName(ctx, *categoryID)
}

func buildDetail(t *models.PromptTemplate, v *models.PromptVersion, author models.Author, categoryName string) *models.PromptDetail {
	d := &models.PromptDetail{
		ID:             t.UUID,
		Title:          t.Title,
		Description:    t.Description,
		InputVariables: []models.InputVariable{},
		Author:         author,
		Tags:           t.Tags,
		IsPublic:       t.IsPublic(),
		CategoryID:     t.CategoryID,
		CategoryName:   categoryName,
		Visibility:     t.Visibility,
		Status:         t.Status,
		ViewCount:      t.Stats.ViewCount,
		FavoriteCount:  t.Stats.FavoriteCount,
		LikeCount:      t.Stats.LikeCount,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if v != nil {
		d.Content = v.Content
		d.CurrentVersion = v.VersionNumber
		if v.InputVariables != nil {
			d.InputVariables = v.InputVariables
		}
	}
	return d
}
