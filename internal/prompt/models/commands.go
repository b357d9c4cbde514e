package models

import (
	"strings"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
)

// CreatePromptRequest is the body of POST /api/v1/prompts.
type CreatePromptRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Content        string          `json:"content"`
	CategoryID     *id.CategoryID  `json:"categoryId"`
	Visibility     string          `json:"visibility"`
	Status         string          `json:"status"`
	Tags           []string        `json:"tags"`
	InputVariables []InputVariable `json:"inputVariables"`
}

// UpdatePromptRequest is the body of PUT /api/v1/prompts/{id}.
type UpdatePromptRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Content        string          `json:"content"`
	CategoryID     *id.CategoryID  `json:"categoryId"`
	Visibility     string          `json:"visibility"`
	Status         string          `json:"status"`
	Tags           []string        `json:"tags"`
	InputVariables []InputVariable `json:"inputVariables"`
}

// CreateVersionRequest is the body of POST /api/v1/prompts/{id}/versions.
type CreateVersionRequest struct {
	Content        string          `json:"content"`
	Changes        string          `json:"changes"`
	InputVariables []InputVariable `json:"inputVariables"`
}

// RegisterPromptCommand creates a template and its first version.
type RegisterPromptCommand struct {
	Title          string
	Description    string
	Content        string
	CategoryID     *id.CategoryID
	CreatedBy      id.UserID
	Visibility     Visibility
	Status         Status
	Tags           []string
	InputVariables []InputVariable
}

func NewRegisterPromptCommand(req *CreatePromptRequest, author id.UserID) *RegisterPromptCommand {
	return &RegisterPromptCommand{
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Content:        req.Content,
		CategoryID:     req.CategoryID,
		CreatedBy:      author,
		Visibility:     ParseVisibility(req.Visibility, ""),
		Status:         ParseStatus(req.Status, StatusDraft),
		Tags:           req.Tags,
		InputVariables: req.InputVariables,
	}
}

func (c *RegisterPromptCommand) Validate() error {
	if c.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(c.Content) == "" {
		return dErrors.New(dErrors.CodeValidation, "content is required")
	}
	if c.CreatedBy.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "createdBy is required")
	}
	if c.CategoryID != nil && *c.CategoryID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "categoryId must be positive")
	}
	if c.Status == StatusDeleted {
		return dErrors.New(dErrors.CodeValidation, "status cannot be DELETED")
	}
	return nil
}

// UpdatePromptCommand replaces a template's metadata and, when the body
// changed, appends a version.
type UpdatePromptCommand struct {
	UUID           uuid.UUID
	EditorID       id.UserID
	Title          string
	Description    string
	Content        string
	CategoryID     *id.CategoryID
	Visibility     Visibility
	Status         Status
	Tags           []string
	InputVariables []InputVariable
}

func NewUpdatePromptCommand(promptUUID uuid.UUID, editor id.UserID, req *UpdatePromptRequest) *UpdatePromptCommand {
	return &UpdatePromptCommand{
		UUID:           promptUUID,
		EditorID:       editor,
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Content:        req.Content,
		CategoryID:     req.CategoryID,
		Visibility:     ParseVisibility(req.Visibility, ""),
		Status:         ParseStatus(req.Status, ""),
		Tags:           req.Tags,
		InputVariables: req.InputVariables,
	}
}

func (c *UpdatePromptCommand) Validate() error {
	switch {
	case c.UUID == uuid.Nil:
		return dErrors.New(dErrors.CodeValidation, "prompt id is required")
	case c.EditorID.IsZero():
		return dErrors.New(dErrors.CodeValidation, "editor is required")
	case c.Title == "":
		return dErrors.New(dErrors.CodeValidation, "title is required")
	case strings.TrimSpace(c.Content) == "":
		return dErrors.New(dErrors.CodeValidation, "content is required")
	case c.CategoryID == nil || *c.CategoryID <= 0:
		return dErrors.New(dErrors.CodeValidation, "categoryId is required")
	case c.Visibility == "":
		return dErrors.New(dErrors.CodeValidation, "visibility is required")
	case c.Status == "":
		return dErrors.New(dErrors.CodeValidation, "status is required")
	case c.Status == StatusDeleted:
		return dErrors.New(dErrors.CodeValidation, "use delete to remove a prompt")
	}
	return nil
}

// Filter selects templates for every listing and search operation.
// Empty fields do not filter.
type Filter struct {
	AuthorID       *id.UserID
	CategoryID     *id.CategoryID
	Statuses       []Status
	Visibilities   []Visibility
	Title          string
	Description    string
	Tag            string
	Keyword        string
	IncludeDeleted bool
	Sort           SortType
}

// AdvancedSearchCondition backs GET /api/v1/prompts/advanced-search.
type AdvancedSearchCondition struct {
	Title          string
	Description    string
	Tag            string
	CategoryID     *id.CategoryID
	Status         Status
	Sort           SortType
	IncludeDeleted bool
	Page           page.Request
}

func (c AdvancedSearchCondition) Filter() Filter {
	f := Filter{
		Title:          strings.TrimSpace(c.Title),
		Description:    strings.TrimSpace(c.Description),
		Tag:            strings.TrimSpace(c.Tag),
		CategoryID:     c.CategoryID,
		IncludeDeleted: c.IncludeDeleted,
		Sort:           c.Sort,
	}
	if c.Status != "" {
		f.Statuses = []Status{c.Status}
	}
	return f
}

// MyPromptCondition backs GET /api/v1/prompts/my.
type MyPromptCondition struct {
	UserID       id.UserID
	Statuses     []Status
	Visibilities []Visibility
	Keyword      string
	Sort         SortType
	Page         page.Request
}

func (c MyPromptCondition) Filter() Filter {
	author := c.UserID
	return Filter{
		AuthorID:     &author,
		Statuses:     c.Statuses,
		Visibilities: c.Visibilities,
		Keyword:      strings.TrimSpace(c.Keyword),
		Sort:         c.Sort,
	}
}

// Matches applies f to t in memory. Postgres stores translate the same rules to SQL.
func (f Filter) Matches(t *PromptTemplate) bool {
	if t.IsDeleted() && !f.IncludeDeleted && !containsStatus(f.Statuses, StatusDeleted) {
		return false
	}
	if f.AuthorID != nil && t.CreatedByID != *f.AuthorID {
		return false
	}
	if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, t.Status) {
		return false
	}
	if len(f.Visibilities) > 0 && !containsVisibility(f.Visibilities, t.Visibility) {
		return false
	}
	if f.Title != "" && !containsFold(t.Title, f.Title) {
		return false
	}
	if f.Description != "" && !containsFold(t.Description, f.Description) {
		return false
	}
	if f.Tag != "" && !anyTagContains(t.Tags, f.Tag) {
		return false
	}
	if f.Keyword != "" &&
		!containsFold(t.Title, f.Keyword) &&
		!containsFold(t.Description, f.Keyword) &&
		!anyTagContains(t.Tags, f.Keyword) {
		return false
	}
	return true
}

// Less orders templates according to f.Sort.
func (f Filter) Less(a, b *PromptTemplate) bool {
	switch f.Sort {
	case SortTitle:
		return a.Title < b.Title
	case SortMostFavorite:
		if a.Stats.LikeCount != b.Stats.LikeCount {
			return a.Stats.LikeCount > b.Stats.LikeCount
		}
	case SortMostViews:
		if a.Stats.ViewCount != b.Stats.ViewCount {
			return a.Stats.ViewCount > b.Stats.ViewCount
		}
	}
	return a.UpdatedAt.After(b.UpdatedAt)
}

func containsStatus(statuses []Status, s Status) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

func containsVisibility(visibilities []Visibility, v Visibility) bool {
	for _, vis := range visibilities {
		if vis == v {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyTagContains(tags []string, substr string) bool {
	for _, tag := range tags {
		if containsFold(tag, substr) {
			return true
		}
	}
	return false
}
