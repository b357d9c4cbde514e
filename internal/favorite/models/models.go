package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	promptmodels "promptserver/internal/prompt/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
	"promptserver/pkg/platform/page"
)

// Favorite is a bookmark of a prompt by a user. (UserID, PromptID) is unique.
type Favorite struct {
	ID        int64
	UserID    id.UserID
	PromptID  id.PromptID
	CreatedAt time.Time
}

func NewFavorite(userID id.UserID, promptID id.PromptID, now time.Time) (*Favorite, error) {
	if userID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user id is required")
	}
	if promptID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "prompt id is required")
	}
	return &Favorite{UserID: userID, PromptID: promptID, CreatedAt: now}, nil
}

type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortTitle     SortField = "title"
)

// SearchCondition drives GET /api/v1/prompts/my/favorites.
type SearchCondition struct {
	UserID    id.UserID
	Keyword   string
	Sort      SortField
	Ascending bool
	Page      page.Request
}

// NewSearchCondition falls back to newest favorites first.
func NewSearchCondition(userID id.UserID, keyword, sort, order string, req page.Request) SearchCondition {
	field := SortCreatedAt
	if strings.EqualFold(strings.TrimSpace(sort), string(SortTitle)) {
		field = SortTitle
	}
	return SearchCondition{
		UserID:    userID,
		Keyword:   strings.TrimSpace(keyword),
		Sort:      field,
		Ascending: strings.EqualFold(strings.TrimSpace(order), "asc"),
		Page:      req.Normalize(),
	}
}

// ActionResponse is returned by POST /{id}/favorite.
type ActionResponse struct {
	ID               int64       `json:"id"`
	PromptTemplateID id.PromptID `json:"promptTemplateId"`
	PromptUUID       uuid.UUID   `json:"promptUuid"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// FavoritePrompt is a favorited prompt with the time it was favorited.
type FavoritePrompt struct {
	FavoriteID        int64     `json:"favoriteId"`
	FavoriteCreatedAt time.Time `json:"favoriteCreatedAt"`
	promptmodels.PromptSummary
}

type CountResponse struct {
	Count int `json:"count"`
}
