package models

import (
	"time"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
)

// Author is the public view of a prompt's creator.
type Author struct {
	ID     id.UserID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	TeamID *int64    `json:"-"`
}

// PromptDetail is the full read model of a template with its current version.
type PromptDetail struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Content        string          `json:"content"`
	InputVariables []InputVariable `json:"inputVariables"`
	CurrentVersion int             `json:"currentVersion"`
	Author         Author          `json:"author"`
	Tags           []string        `json:"tags"`
	IsPublic       bool            `json:"isPublic"`
	CategoryID     *id.CategoryID  `json:"categoryId,omitempty"`
	CategoryName   string          `json:"categoryName,omitempty"`
	Visibility     Visibility      `json:"visibility"`
	Status         Status          `json:"status"`
	ViewCount      int64           `json:"viewCount"`
	FavoriteCount  int64           `json:"favoriteCount"`
	LikeCount      int64           `json:"likeCount"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// PromptSummary is a list item.
type PromptSummary struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	AuthorID      id.UserID      `json:"authorId"`
	AuthorName    string         `json:"createdByName"`
	CategoryID    *id.CategoryID `json:"categoryId,omitempty"`
	CategoryName  string         `json:"categoryName,omitempty"`
	Tags          []string       `json:"tags"`
	IsPublic      bool           `json:"isPublic"`
	Visibility    Visibility     `json:"visibility"`
	Status        Status         `json:"status"`
	ViewCount     int64          `json:"viewCount"`
	FavoriteCount int64          `json:"favoriteCount"`
	LikeCount     int64          `json:"likeCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func NewPromptSummary(t *PromptTemplate, author Author, categoryName string) PromptSummary {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return PromptSummary{
		ID:            t.UUID,
		Title:         t.Title,
		Description:   t.Description,
		AuthorID:      t.CreatedByID,
		AuthorName:    author.Name,
		CategoryID:    t.CategoryID,
		CategoryName:  categoryName,
		Tags:          tags,
		IsPublic:      t.IsPublic(),
		Visibility:    t.Visibility,
		Status:        t.Status,
		ViewCount:     t.Stats.ViewCount,
		FavoriteCount: t.Stats.FavoriteCount,
		LikeCount:     t.Stats.LikeCount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type DeleteResult struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	PreviousStatus Status    `json:"previousStatus"`
	DeletedAt      time.Time `json:"deletedAt"`
	DeletedBy      id.UserID `json:"deletedBy"`
}

// MyStatistics counts the caller's prompts by status. Deleted prompts are not counted.
type MyStatistics struct {
	TotalCount     int `json:"totalCount"`
	DraftCount     int `json:"draftCount"`
	PublishedCount int `json:"publishedCount"`
	ArchivedCount  int `json:"archivedCount"`
}

func NewMyStatistics(byStatus map[Status]int) MyStatistics {
	s := MyStatistics{
		DraftCount:     byStatus[StatusDraft],
		PublishedCount: byStatus[StatusPublished],
		ArchivedCount:  byStatus[StatusArchived],
	}
	s.TotalCount = s.DraftCount + s.PublishedCount + s.ArchivedCount
	return s
}

type VersionResponse struct {
	ID             uuid.UUID       `json:"id"`
	VersionNumber  int             `json:"versionNumber"`
	Content        string          `json:"content"`
	Changes        string          `json:"changes"`
	InputVariables []InputVariable `json:"inputVariables"`
	ActionType     ActionType      `json:"actionType"`
	CreatedByID    id.UserID       `json:"createdById"`
	IsCurrent      bool            `json:"isCurrent"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func NewVersionResponse(v *PromptVersion, currentVersionID int64) VersionResponse {
	vars := v.InputVariables
	if vars == nil {
		vars = []InputVariable{}
	}
	return VersionResponse{
		ID:             v.UUID,
		VersionNumber:  v.VersionNumber,
		Content:        v.Content,
		Changes:        v.Changes,
		InputVariables: vars,
		ActionType:     v.ActionType,
		CreatedByID:    v.CreatedByID,
		IsCurrent:      v.ID == currentVersionID,
		CreatedAt:      v.CreatedAt,
	}
}
