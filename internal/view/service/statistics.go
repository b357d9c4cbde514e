package service

import (
	"context"
	"time"

	"promptserver/internal/view/models"
	id "promptserver/pkg/domain"
	dErrors "promptserver/pkg/domain-errors"
)

const (
	defaultTopLimit   = 10
	maxTopLimit       = 100
	defaultDailyRange = 30 * 24 * time.Hour
)

// TopViewed ranks non-deleted prompts by views in the window. Missing bounds
// default to the last 30 days.
func (s *Service) TopViewed(ctx context.Context, q models.TopViewedQuery) ([]*models.TopViewedPrompt, error) {
	if q.Limit == 0 {
		q.Limit = defaultTopLimit
	}
	if q.Limit < 0 || q.Limit > maxTopLimit {
		return nil, dErrors.New(dErrors.CodeValidation, "limit must be between 1 and 100")
	}
	start, end, err := s.window(q.Start, q.End)
	if err != nil {
		return nil, err
	}
	scope, empty, err := s.scope(ctx, q.CategoryIDs)
	if err != nil || empty {
		return []*models.TopViewedPrompt{}, err
	}

	ranked, err := s.records.TopPrompts(ctx, start, end, scope, q.Limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to rank prompts")
	}
	ids := make([]id.PromptID, len(ranked))
	for i, pv := range ranked {
		ids[i] = pv.PromptID
	}
	templates, err := s.prompts.FindByIDs(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load prompts")
	}
	byID := make(map[id.PromptID]int, len(templates))
	for i, t := range templates {
		byID[t.ID] = i
	}

	out := make([]*models.TopViewedPrompt, 0, len(ranked))
	for _, pv := range ranked {
		i, ok := byID[pv.PromptID]
		if !ok || templates[i].IsDeleted() {
			continue
		}
		t := templates[i]
		top, err := models.NewTopViewedPrompt(len(out)+1, t.ID, t.UUID, t.Title, pv.Views, t.Stats.ViewCount)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "invalid top viewed prompt")
		}
		top.LastViewedAt = pv.LastViewedAt
		if top.HasInconsistentData() {
			s.logger.DebugContext(ctx, "period views exceed stored total, sync pending",
				"prompt_id", t.ID.String(),
				"period_views", pv.Views,
				"total_views", t.Stats.ViewCount,
			)
		}
		out = append(out, top)
	}
	return out, nil
}

// Daily returns per-day views of one prompt. Missing bounds default to the last 30 days.
func (s *Service) Daily(ctx context.Context, promptID id.PromptID, start, end time.Time) ([]models.DailyViewCount, error) {
	if promptID.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "prompt id is required")
	}
	start, end, err := s.window(start, end)
	if err != nil {
		return nil, err
	}
	daily, err := s.records.Daily(ctx, promptID, start, end)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load daily views")
	}
	if daily == nil {
		daily = []models.DailyViewCount{}
	}
	return daily, nil
}

// Distribution buckets stored view counts into the default ranges.
func (s *Service) Distribution(ctx context.Context, categoryIDs []id.CategoryID) ([]models.DistributionBucket, error) {
	ranges := models.DefaultRanges()
	out := make([]models.DistributionBucket, len(ranges))
	for i, r := range ranges {
		out[i] = models.DistributionBucket{Range: r.Label}
	}

	scope, empty, err := s.scope(ctx, categoryIDs)
	if err != nil || empty {
		return out, err
	}
	counts, err := s.prompts.ViewCounts(ctx, scope)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load view counts")
	}
	for _, n := range counts {
		for i, r := range ranges {
			if r.Contains(n) {
				out[i].PromptCount++
				break
			}
		}
	}
	return out, nil
}

// TotalByPeriod counts views recorded in [start, end).
func (s *Service) TotalByPeriod(ctx context.Context, start, end time.Time, categoryIDs []id.CategoryID) (*models.TotalViewsResponse, error) {
	if start.IsZero() || end.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "startDate and endDate are required")
	}
	if !start.Before(end) {
		return nil, dErrors.New(dErrors.CodeValidation, "startDate must be before endDate")
	}
	resp := &models.TotalViewsResponse{StartDate: start, EndDate: end}
	scope, empty, err := s.scope(ctx, categoryIDs)
	if err != nil || empty {
		return resp, err
	}
	total, err := s.records.CountBetween(ctx, start, end, scope)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count views")
	}
	resp.TotalViewCount = total
	return resp, nil
}

// CountsByPromptIDs counts views per prompt. Zero bounds mean all time. Every
// requested id is present in the result.
func (s *Service) CountsByPromptIDs(ctx context.Context, ids []id.PromptID, start, end time.Time) (map[id.PromptID]int64, error) {
	out := make(map[id.PromptID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	counts, err := s.records.CountsByPromptBetween(ctx, ids, start, end)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count views")
	}
	for _, promptID := range ids {
		out[promptID] = counts[promptID]
	}
	return out, nil
}

// Weekly compares views recorded this week (from Monday 00:00) with last week.
func (s *Service) Weekly(ctx context.Context) (*models.WeeklyViewStatistics, error) {
	thisStart, thisEnd := models.WeekWindow(s.now())
	lastStart := thisStart.AddDate(0, 0, -7)

	thisWeek, err := s.records.CountBetween(ctx, thisStart, thisEnd, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count this week's views")
	}
	lastWeek, err := s.records.CountBetween(ctx, lastStart, thisStart, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count last week's views")
	}
	stats := models.NewWeeklyViewStatistics(thisWeek, lastWeek, thisStart)
	return &stats, nil
}

func (s *Service) window(start, end time.Time) (time.Time, time.Time, error) {
	if end.IsZero() {
		end = s.now()
	}
	if start.IsZero() {
		start = end.Add(-defaultDailyRange)
	}
	if !start.Before(end) {
		return start, end, dErrors.New(dErrors.CodeValidation, "startDate must be before endDate")
	}
	return start, end, nil
}

// scope resolves category filters to prompt ids. empty is true when categories
// were given but hold no prompts.
func (s *Service) scope(ctx context.Context, categoryIDs []id.CategoryID) ([]id.PromptID, bool, error) {
	if len(categoryIDs) == 0 {
		return nil, false, nil
	}
	ids, err := s.prompts.IDsByCategories(ctx, categoryIDs)
	if err != nil {
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve categories")
	}
	return ids, len(ids) == 0, nil
}
