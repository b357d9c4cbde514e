package models

import (
	"time"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
)

// TopViewedQuery selects the most viewed prompts in [Start, End).
type TopViewedQuery struct {
	Start       time.Time
	End         time.Time
	CategoryIDs []id.CategoryID
	Limit       int
}

type RecordViewResponse struct {
	Success        bool  `json:"success"`
	TotalViewCount int64 `json:"totalViewCount"`
	IsNewView      bool  `json:"isNewView"`
}

type ViewCountResponse struct {
	PromptUUID     uuid.UUID `json:"promptTemplateUuid"`
	TotalViewCount int64     `json:"totalViewCount"`
}

type DailyViewCount struct {
	Date      string `json:"date"`
	ViewCount int64  `json:"viewCount"`
}

type DistributionBucket struct {
	Range       string `json:"range"`
	PromptCount int64  `json:"promptCount"`
}

type TotalViewsResponse struct {
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	TotalViewCount int64     `json:"totalViewCount"`
}

// SyncResult summarizes one cache-to-database sync run.
type SyncResult struct {
	Prompts     int   `json:"prompts"`
	SyncedViews int64 `json:"syncedViews"`
	Failed      int   `json:"failed"`
}

// Inconsistency reports a prompt whose stored count drifted from its records.
type Inconsistency struct {
	PromptID    int64 `json:"promptId"`
	StoredCount int64 `json:"storedCount"`
	RecordCount int64 `json:"recordCount"`
	Difference  int64 `json:"difference"`
}

type ConsistencyReport struct {
	Checked         int             `json:"checked"`
	Inconsistencies []Inconsistency `json:"inconsistencies"`
}
