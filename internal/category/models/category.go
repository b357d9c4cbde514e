package models

import (
	"strings"
	"time"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

// Category groups prompts. Categories form a tree through ParentCategoryID.
//
// Invariants:
//   - Name is non-empty, unique and immutable after creation
//   - DisplayName is non-empty
//   - A category is never its own parent
//   - System categories are read-only through the API
type Category struct {
	ID               id.CategoryID  `json:"id"`
	Name             string         `json:"name"`
	DisplayName      string         `json:"displayName"`
	Description      string         `json:"description"`
	IsSystem         bool           `json:"isSystem"`
	ParentCategoryID *id.CategoryID `json:"parentCategoryId,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func NewCategory(name, displayName, description string, parent *id.CategoryID, isSystem bool, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	displayName = strings.TrimSpace(displayName)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category name is required")
	}
	if len([]rune(name)) > 50 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category name must be 50 characters or less")
	}
	if displayName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category display name is required")
	}
	if len([]rune(displayName)) > 100 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "category display name must be 100 characters or less")
	}
	return &Category{
		Name:             name,
		DisplayName:      displayName,
		Description:      strings.TrimSpace(description),
		IsSystem:         isSystem,
		ParentCategoryID: parent,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (c *Category) IsRoot() bool {
	return c.ParentCategoryID == nil
}

// Update changes the mutable fields. The name never changes.
func (c *Category) Update(displayName, description string, parent *id.CategoryID, now time.Time) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "category display name is required")
	}
	if parent != nil && *parent == c.ID {
		return dErrors.New(dErrors.CodeInvariantViolation, "category cannot be its own parent")
	}
	c.DisplayName = displayName
	c.Description = strings.TrimSpace(description)
	c.ParentCategoryID = parent
	c.UpdatedAt = now
	return nil
}
