package store

import (
	"time"

	id "promptserver/pkg/domain"
)

// PromptViews is a prompt's view count within a period.
type PromptViews struct {
	PromptID     id.PromptID
	Views        int64
	LastViewedAt time.Time
}
