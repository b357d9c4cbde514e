package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

// ViewRecord is one persisted view.
type ViewRecord struct {
	ID          uuid.UUID
	PromptID    id.PromptID
	UserID      *id.UserID
	AnonymousID string
	IP          string
	ViewedAt    time.Time
}

func NewViewRecord(cmd *RecordViewCommand, viewedAt time.Time) *ViewRecord {
	r := &ViewRecord{
		ID:          uuid.New(),
		PromptID:    cmd.PromptID,
		AnonymousID: cmd.AnonymousID,
		IP:          cmd.IP,
		ViewedAt:    viewedAt,
	}
	if cmd.IsAuthenticated() {
		userID := cmd.UserID
		r.UserID = &userID
	}
	return r
}

// ViewCount is a non-negative view total for one prompt.
type ViewCount struct {
	PromptID id.PromptID
	Total    int64
}

func NewViewCount(promptID id.PromptID, total int64) (ViewCount, error) {
	if total < 0 {
		return ViewCount{}, dErrors.New(dErrors.CodeInvariantViolation, "view count must not be negative")
	}
	return ViewCount{PromptID: promptID, Total: total}, nil
}

func InitialViewCount(promptID id.PromptID) ViewCount {
	return ViewCount{PromptID: promptID, Total: 1}
}

func EmptyViewCount(promptID id.PromptID) ViewCount {
	return ViewCount{PromptID: promptID}
}

func (c ViewCount) Increment() ViewCount {
	c.Total++
	return c
}

func (c ViewCount) IncrementBy(n int64) (ViewCount, error) {
	if n <= 0 {
		return c, dErrors.New(dErrors.CodeInvariantViolation, "increment must be positive")
	}
	c.Total += n
	return c, nil
}

// TopViewedPrompt is one row of the most-viewed ranking.
type TopViewedPrompt struct {
	Rank         int       `json:"rank"`
	PromptID     uuid.UUID `json:"promptTemplateUuid"`
	Title        string    `json:"title"`
	PeriodViews  int64     `json:"viewCount"`
	TotalViews   int64     `json:"totalViewCount"`
	LastViewedAt time.Time `json:"lastViewedAt"`

	internalID id.PromptID
}

func NewTopViewedPrompt(rank int, promptID id.PromptID, promptUUID uuid.UUID, title string, periodViews, totalViews int64) (*TopViewedPrompt, error) {
	switch {
	case rank <= 0:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "rank must be positive")
	case strings.TrimSpace(title) == "":
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "title is required")
	case periodViews < 0 || totalViews < 0:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "view counts must not be negative")
	}
	return &TopViewedPrompt{
		Rank:        rank,
		PromptID:    promptUUID,
		Title:       title,
		PeriodViews: periodViews,
		TotalViews:  totalViews,
		internalID:  promptID,
	}, nil
}

func (p *TopViewedPrompt) InternalID() id.PromptID { return p.internalID }

func (p *TopViewedPrompt) IsTopRanked() bool { return p.Rank <= 10 }

func (p *TopViewedPrompt) HasInconsistentData() bool { return p.PeriodViews > p.TotalViews }

// WeekWindow returns Monday 00:00 of now's week and the following Monday.
func WeekWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	start = midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

type WeeklyViewStatistics struct {
	ThisWeekViews int64   `json:"thisWeekViewCount"`
	LastWeekViews int64   `json:"lastWeekViewCount"`
	ChangeCount   int64   `json:"changeCount"`
	ChangeRate    float64 `json:"changeRate"`
	WeekStartDate string  `json:"weekStartDate"`
	WeekEndDate   string  `json:"weekEndDate"`
}

// NewWeeklyViewStatistics compares this week against last week. weekStart is
// the Monday of this week.
func NewWeeklyViewStatistics(thisWeek, lastWeek int64, weekStart time.Time) WeeklyViewStatistics {
	return WeeklyViewStatistics{
		ThisWeekViews: thisWeek,
		LastWeekViews: lastWeek,
		ChangeCount:   thisWeek - lastWeek,
		ChangeRate:    changeRate(thisWeek, lastWeek),
		WeekStartDate: weekStart.Format(time.DateOnly),
		WeekEndDate:   weekStart.AddDate(0, 0, 6).Format(time.DateOnly),
	}
}

func changeRate(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	rate := float64(current-previous) / float64(previous) * 100
	return math.Round(rate*100) / 100
}

func (w WeeklyViewStatistics) IsIncreased() bool { return w.ChangeCount > 0 }

func (w WeeklyViewStatistics) IsDecreased() bool { return w.ChangeCount < 0 }

func (w WeeklyViewStatistics) IsStable() bool { return w.ChangeCount == 0 }

// ViewCountRange is an inclusive bucket. Max < 0 means unbounded.
type ViewCountRange struct {
	Min   int64
	Max   int64
	Label string
}

func (r ViewCountRange) Contains(n int64) bool {
	return n >= r.Min && (r.Max < 0 || n <= r.Max)
}

func DefaultRanges() []ViewCountRange {
	bounded := func(lo, hi int64) ViewCountRange {
		return ViewCountRange{Min: lo, Max: hi, Label: strconv.FormatInt(lo, 10) + "-" + strconv.FormatInt(hi, 10)}
	}
	return []ViewCountRange{
		bounded(0, 10),
		bounded(11, 50),
		bounded(51, 100),
		bounded(101, 500),
		bounded(501, 1000),
		{Min: 1001, Max: -1, Label: "1000+"},
	}
}
