package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"promptserver/internal/category/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/audit"
	"promptserver/pkg/platform/sentinel"
	"promptserver/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, categoryID id.CategoryID) error
	FindByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	List(ctx context.Context, isSystem *bool) ([]*models.Category, error)
	ListRoots(ctx context.Context) ([]*models.Category, error)
	ListChildren(ctx context.Context, parentID id.CategoryID) ([]*models.Category, error)
	HasChildren(ctx context.Context, parentID id.CategoryID) (bool, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service manages the category tree.
type Service struct {
	store          Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
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

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.ParentCategoryID != nil {
		if _, err := s.find(ctx, *req.ParentCategoryID, "parent category not found"); err != nil {
			return nil, err
		}
	}

	c, err := models.NewCategory(req.Name, req.DisplayName, req.Description, req.ParentCategoryID, false, s.now().UTC())
	if err != nil {
		return nil, toValidation(err)
	}
	if err := s.store.Create(ctx, c); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "category name already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create category")
	}
	s.logAudit(ctx, audit.ActionCategoryCreated, c)
	return c, nil
}

func (s *Service) Get(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	return s.find(ctx, categoryID, "category not found")
}

// List returns every category, or only system/user categories when isSystem is set.
func (s *Service) List(ctx context.Context, isSystem *bool) ([]*models.Category, error) {
	categories, err := s.store.List(ctx, isSystem)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list categories")
	}
	return categories, nil
}

func (s *Service) Roots(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.store.ListRoots(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list root categories")
	}
	return categories, nil
}

func (s *Service) Subcategories(ctx context.Context, parentID id.CategoryID) ([]*models.Category, error) {
	if _, err := s.find(ctx, parentID, "parent category not found"); err != nil {
		return nil, err
	}
	categories, err := s.store.ListChildren(ctx, parentID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list subcategories")
	}
	return categories, nil
}

func (s *Service) Update(ctx context.Context, categoryID id.CategoryID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.find(ctx, categoryID, "category not found")
	if err != nil {
		return nil, err
	}
	if c.IsSystem {
		return nil, dErrors.New(dErrors.CodeForbidden, "system categories cannot be modified")
	}
	if req.ParentCategoryID != nil && *req.ParentCategoryID != categoryID {
		if _, err := s.find(ctx, *req.ParentCategoryID, "parent category not found"); err != nil {
			return nil, err
		}
	}
	if err := c.Update(req.DisplayName, req.Description, req.ParentCategoryID, s.now().UTC()); err != nil {
		return nil, toValidation(err)
	}
	if err := s.store.Update(ctx, c); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "category not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update category")
	}
	s.logAudit(ctx, audit.ActionCategoryUpdated, c)
	return c, nil
}

func (s *Service) Delete(ctx context.Context, categoryID id.CategoryID) error {
	c, err := s.find(ctx, categoryID, "category not found")
	if err != nil {
		return err
	}
	if c.IsSystem {
		return dErrors.New(dErrors.CodeForbidden, "system categories cannot be deleted")
	}
	hasChildren, err := s.store.HasChildren(ctx, categoryID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check subcategories")
	}
	if hasChildren {
		return dErrors.New(dErrors.CodeConflict, "category has subcategories")
	}
	if err := s.store.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "category not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete category")
	}
	s.logAudit(ctx, audit.ActionCategoryDeleted, c)
	return nil
}

func (s *Service) find(ctx context.Context, categoryID id.CategoryID, notFoundMsg string) (*models.Category, error) {
	c, err := s.store.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, notFoundMsg)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load category")
	}
	return c, nil
}

func (s *Service) logAudit(ctx context.Context, action audit.Action, c *models.Category) {
	userID := requestcontext.UserID(ctx)
	requestID := requestcontext.RequestID(ctx)
	s.logger.InfoContext(ctx, string(action),
		"event", string(action),
		"category_id", c.ID.String(),
		"category_name", c.Name,
		"user_id", userID.String(),
		"request_id", requestID,
		"log_type", "audit",
	)
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Action:     action,
		UserID:     userID,
		Subject:    "category:" + c.ID.String(),
		RequestID:  requestID,
		Attributes: map[string]string{"name": c.Name},
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish audit event", "event", string(action), "error", err)
	}
}

func toValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	return err
}
