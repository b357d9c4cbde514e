package models

import (
	"time"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

// DefaultPeriod is the comparison window used when the caller gives no dates.
const DefaultPeriod = 7 * 24 * time.Hour

// ComparisonResult compares a count in the current window against the previous one.
type ComparisonResult struct {
	CurrentCount     int64   `json:"currentCount"`
	PreviousCount    int64   `json:"previousCount"`
	PercentageChange float64 `json:"percentageChange"`
}

// Of builds a ComparisonResult. Growth from zero reads as 100%.
func Of(current, previous int64) ComparisonResult {
	var pct float64
	switch {
	case previous == 0 && current > 0:
		pct = 100
	case previous == 0:
		pct = 0
	default:
		pct = float64(current-previous) / float64(previous) * 100
	}
	return ComparisonResult{CurrentCount: current, PreviousCount: previous, PercentageChange: pct}
}

func (c ComparisonResult) IsIncreased() bool { return c.CurrentCount > c.PreviousCount }

// Period is the half-open window [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, dErrors.New(dErrors.CodeValidation, "startDate and endDate are required")
	}
	if end.Before(start) {
		return Period{}, dErrors.New(dErrors.CodeValidation, "endDate must not be before startDate")
	}
	return Period{Start: start, End: end}, nil
}

// PeriodOrDefault fills missing bounds: end defaults to now and start to DefaultPeriod before end.
func PeriodOrDefault(start, end, now time.Time) (Period, error) {
	if end.IsZero() {
		end = now
	}
	if start.IsZero() {
		start = end.Add(-DefaultPeriod)
	}
	return NewPeriod(start, end)
}

// Previous returns the window of equal length that ends where p starts.
func (p Period) Previous() Period {
	d := p.End.Sub(p.Start)
	return Period{Start: p.Start.Add(-d), End: p.Start}
}

// PromptStatistics counts non-deleted prompts by status and compares
// prompts created in the requested window with the window before it.
type PromptStatistics struct {
	TotalCount     int64 `json:"totalCount"`
	DraftCount     int64 `json:"draftCount"`
	PublishedCount int64 `json:"publishedCount"`
	ArchivedCount  int64 `json:"archivedCount"`
	ComparisonResult
}

// CountStatistics is the favorite and user dashboard card.
type CountStatistics struct {
	TotalCount int64 `json:"totalCount"`
	ComparisonResult
}

type CategoryStat struct {
	CategoryID   id.CategoryID `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	PromptCount  int64         `json:"promptCount"`
}

type CategoryStatistics struct {
	Categories []CategoryStat `json:"categories"`
}
