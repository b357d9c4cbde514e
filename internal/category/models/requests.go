package models

import (
	"strings"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

type CreateCategoryRequest struct {
	Name             string         `json:"name"`
	DisplayName      string         `json:"displayName"`
	Description      string         `json:"description"`
	ParentCategoryID *id.CategoryID `json:"parentCategoryId"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.ToLower(strings.TrimSpace(r.Name))
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateCategoryRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.DisplayName == "" {
		return dErrors.New(dErrors.CodeValidation, "displayName is required")
	}
	if r.ParentCategoryID != nil && *r.ParentCategoryID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "parentCategoryId must be positive")
	}
	return nil
}

type UpdateCategoryRequest struct {
	DisplayName      string         `json:"displayName"`
	Description      string         `json:"description"`
	ParentCategoryID *id.CategoryID `json:"parentCategoryId"`
}

func (r *UpdateCategoryRequest) Normalize() {
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *UpdateCategoryRequest) Validate() error {
	if r.DisplayName == "" {
		return dErrors.New(dErrors.CodeValidation, "displayName is required")
	}
	if r.ParentCategoryID != nil && *r.ParentCategoryID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "parentCategoryId must be positive")
	}
	return nil
}
