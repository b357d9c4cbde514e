package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	pstrings "promptserver/pkg/platform/strings"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// InputVariable describes a placeholder the prompt content expects.
type InputVariable struct {
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Description  string `json:"description,omitempty"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"defaultValue,omitempty"`
}

// PromptStats holds the denormalized counters of a template. Counters never go below zero.
type PromptStats struct {
	ViewCount     int64 `json:"viewCount"`
	FavoriteCount int64 `json:"favoriteCount"`
	LikeCount     int64 `json:"likeCount"`
}

func (s PromptStats) WithFavoriteDelta(delta int64) PromptStats {
	s.FavoriteCount = floor(s.FavoriteCount + delta)
	return s
}

func (s PromptStats) WithLikeDelta(delta int64) PromptStats {
	s.LikeCount = floor(s.LikeCount + delta)
	return s
}

func (s PromptStats) WithViews(n int64) PromptStats {
	s.ViewCount = floor(s.ViewCount + n)
	return s
}

func floor(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// PromptTemplate is a reusable prompt with metadata. The body lives in PromptVersion.
type PromptTemplate struct {
	ID               id.PromptID
	UUID             uuid.UUID
	Title            string
	Description      string
	CurrentVersionID int64
	CategoryID       *id.CategoryID
	CreatedByID      id.UserID
	Visibility       Visibility
	Status           Status
	Tags             []string
	Stats            PromptStats
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPromptTemplate validates and builds a template. A nil uuid is replaced
// with a random one; blank visibility and status default to PRIVATE and DRAFT.
func NewPromptTemplate(
	promptUUID uuid.UUID,
	title, description string,
	categoryID *id.CategoryID,
	createdBy id.UserID,
	visibility Visibility,
	status Status,
	tags []string,
	now time.Time,
) (*PromptTemplate, error) {
	if promptUUID == uuid.Nil {
		promptUUID = uuid.New()
	}
	if visibility == "" {
		visibility = VisibilityPrivate
	}
	if status == "" {
		status = StatusDraft
	}
	t := &PromptTemplate{
		UUID:        promptUUID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CategoryID:  categoryID,
		CreatedByID: createdBy,
		Visibility:  visibility,
		Status:      status,
		Tags:        NormalizeTags(tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *PromptTemplate) validate() error {
	if t.Title == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "title is required")
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return dErrors.New(dErrors.CodeInvariantViolation, "title must be 200 characters or less")
	}
	if utf8.RuneCountInString(t.Description) > MaxDescriptionLength {
		return dErrors.New(dErrors.CodeInvariantViolation, "description must be 1000 characters or less")
	}
	if t.CreatedByID.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "author is required")
	}
	if !t.Visibility.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "invalid visibility")
	}
	if !t.Status.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "invalid status")
	}
	return nil
}

// Update replaces the editable metadata.
func (t *PromptTemplate) Update(
	title, description string,
	categoryID *id.CategoryID,
	visibility Visibility,
	status Status,
	tags []string,
	now time.Time,
) error {
	next := *t
	next.Title = strings.TrimSpace(title)
	next.Description = strings.TrimSpace(description)
	next.CategoryID = categoryID
	next.Visibility = visibility
	next.Status = status
	next.Tags = NormalizeTags(tags)
	next.UpdatedAt = now
	if err := next.validate(); err != nil {
		return err
	}
	*t = next
	return nil
}

func (t *PromptTemplate) SetCurrentVersion(versionID int64, now time.Time) error {
	if versionID <= 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "version id must be positive")
	}
	t.CurrentVersionID = versionID
	t.UpdatedAt = now
	return nil
}

// MarkDeleted logically deletes the template and returns the status it had before.
func (t *PromptTemplate) MarkDeleted(now time.Time) (Status, error) {
	if t.IsDeleted() {
		return t.Status, dErrors.New(dErrors.CodeInvariantViolation, "prompt is already deleted")
	}
	previous := t.Status
	t.Status = StatusDeleted
	t.UpdatedAt = now
	return previous, nil
}

func (t *PromptTemplate) IsDeleted() bool     { return t.Status == StatusDeleted }
func (t *PromptTemplate) IsPublic() bool      { return t.Visibility == VisibilityPublic }
func (t *PromptTemplate) IsTeamVisible() bool { return t.Visibility == VisibilityTeam }

func (t *PromptTemplate) IsAuthor(userID id.UserID) bool {
	return !userID.IsZero() && t.CreatedByID == userID
}

// CanView reports whether userID (zero for guests) may read the template.
func (t *PromptTemplate) CanView(userID id.UserID) bool {
	if t.IsDeleted() {
		return false
	}
	return t.IsPublic() || t.IsAuthor(userID)
}

// NormalizeTags trims, drops blanks and de-duplicates while keeping order.
func NormalizeTags(tags []string) []string {
	return pstrings.DedupeAndTrim(tags)
}

// PromptVersion is an immutable revision of a template's content.
type PromptVersion struct {
	ID               int64
	UUID             uuid.UUID
	PromptTemplateID id.PromptID
	VersionNumber    int
	Content          string
	Changes          string
	InputVariables   []InputVariable
	ActionType       ActionType
	CreatedByID      id.UserID
	CreatedAt        time.Time
}

func NewPromptVersion(
	templateID id.PromptID,
	number int,
	content, changes string,
	variables []InputVariable,
	action ActionType,
	createdBy id.UserID,
	now time.Time,
) (*PromptVersion, error) {
	if templateID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "prompt template id is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "content is required")
	}
	if createdBy.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "author is required")
	}
	if number < 1 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "version number must be at least 1")
	}
	if action == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "action type is required")
	}
	if err := validateVariables(variables); err != nil {
		return nil, err
	}
	if variables == nil {
		variables = []InputVariable{}
	}
	return &PromptVersion{
		UUID:             uuid.New(),
		PromptTemplateID: templateID,
		VersionNumber:    number,
		Content:          content,
		Changes:          strings.TrimSpace(changes),
		InputVariables:   variables,
		ActionType:       action,
		CreatedByID:      createdBy,
		CreatedAt:        now,
	}, nil
}

func validateVariables(variables []InputVariable) error {
	seen := make(map[string]struct{}, len(variables))
	for _, v := range variables {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return dErrors.New(dErrors.CodeInvariantViolation, "input variable name is required")
		}
		if _, dup := seen[name]; dup {
			return dErrors.New(dErrors.CodeInvariantViolation, "duplicate input variable: "+name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// SameBody reports whether content and variables match v. Used to decide
// whether an update needs a new version.
func (v *PromptVersion) SameBody(content string, variables []InputVariable) bool {
	if v.Content != content || len(v.InputVariables) != len(variables) {
		return false
	}
	for i := range variables {
		if v.InputVariables[i] != variables[i] {
			return false
		}
	}
	return true
}

type Tag struct {
	ID        int64
	UUID      uuid.UUID
	Name      string
	CreatedAt time.Time
}

func NewTag(name string, now time.Time) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "tag name is required")
	}
	return &Tag{UUID: uuid.New(), Name: name, CreatedAt: now}, nil
}
