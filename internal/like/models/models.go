package models

import (
	"time"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

// Like records that a user liked a prompt. (UserID, PromptID) is unique.
type Like struct {
	ID        int64
	UserID    id.UserID
	PromptID  id.PromptID
	CreatedAt time.Time
}

func NewLike(userID id.UserID, promptID id.PromptID, now time.Time) (*Like, error) {
	if userID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user id is required")
	}
	if promptID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "prompt id is required")
	}
	return &Like{UserID: userID, PromptID: promptID, CreatedAt: now}, nil
}

// LikeResponse is returned by POST and DELETE /{id}/like.
type LikeResponse struct {
	LikeCount int64 `json:"likeCount"`
}

type LikeStatus struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type LikedPrompt struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CreatedByID   id.UserID `json:"createdById"`
	CreatedByName string    `json:"createdByName"`
	LikedAt       time.Time `json:"likedAt"`
}

type MyLikeStatistics struct {
	TotalLikeCount int64 `json:"totalLikeCount"`
}
