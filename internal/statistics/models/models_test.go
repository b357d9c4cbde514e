package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "promptserver/pkg/domain-errors"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"growth from zero", 5, 0, 100},
		{"both zero", 0, 0, 0},
		{"increase", 15, 10, 50},
		{"decrease", 5, 20, -75},
		{"drop to zero", 0, 4, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Of(tt.current, tt.previous)
			assert.Equal(t, tt.current, got.CurrentCount)
			assert.Equal(t, tt.previous, got.PreviousCount)
			assert.InDelta(t, tt.want, got.PercentageChange, 1e-9)
		})
	}
	assert.True(t, Of(2, 1).IsIncreased())
	assert.False(t, Of(1, 1).IsIncreased())
}

func TestPeriod(t *testing.T) {
	start := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	p, err := NewPeriod(start, end)
	require.NoError(t, err)
	prev := p.Previous()
	assert.Equal(t, start.AddDate(0, 0, -7), prev.Start)
	assert.Equal(t, start, prev.End)

	_, err = NewPeriod(end, start)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = NewPeriod(time.Time{}, end)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestPeriodOrDefault(t *testing.T) {
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)

	p, err := PeriodOrDefault(time.Time{}, time.Time{}, now)
	require.NoError(t, err)
	assert.Equal(t, now, p.End)
	assert.Equal(t, now.Add(-DefaultPeriod), p.Start)

	start := now.AddDate(0, 0, -1)
	p, err = PeriodOrDefault(start, time.Time{}, now)
	require.NoError(t, err)
	assert.Equal(t, start, p.Start)

	_, err = PeriodOrDefault(now.Add(time.Hour), time.Time{}, now)
	assert.Error(t, err)
}

func TestCountStatisticsFlattensComparison(t *testing.T) {
	raw, err := json.Marshal(CountStatistics{TotalCount: 9, ComparisonResult: Of(3, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalCount":9,"currentCount":3,"previousCount":2,"percentageChange":50}`, string(raw))
}
