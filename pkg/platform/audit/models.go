package audit

import (
	"context"
	"time"

	id "promptserver/pkg/domain"
)

// Event is emitted from services to capture security- and content-relevant actions.
// It stays transport-agnostic so stores can fan out to memory or Kafka.
type Event struct {
	Action     Action            `json:"action"`
	UserID     id.UserID         `json:"userId,omitempty"`
	Subject    string            `json:"subject"`
	RequestID  string            `json:"requestId,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type Action string

const (
	// Auth events
	ActionUserCreated    Action = "user_created"
	ActionLoginSucceeded Action = "login_succeeded"
	ActionLoginFailed    Action = "login_failed"
	ActionTokenRefreshed Action = "token_refreshed"
	ActionLogout         Action = "logout"

	// Prompt events
	ActionPromptCreated        Action = "prompt_created"
	ActionPromptUpdated        Action = "prompt_updated"
	ActionPromptDeleted        Action = "prompt_deleted"
	ActionPromptVersionCreated Action = "prompt_version_created"
	ActionPromptVersionDeleted Action = "prompt_version_deleted"

	// Category events
	ActionCategoryCreated Action = "category_created"
	ActionCategoryUpdated Action = "category_updated"
	ActionCategoryDeleted Action = "category_deleted"

	// Reaction events
	ActionFavoriteAdded   Action = "favorite_added"
	ActionFavoriteRemoved Action = "favorite_removed"
	ActionLikeAdded       Action = "like_added"
	ActionLikeRemoved     Action = "like_removed"
)

// Store persists or forwards audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
