package budget_test

import (
	"errors"
	"testing"
	"time"

	"github.com/familycredits/engine/internal/budget"
	"github.com/familycredits/engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPeriodKey(t *testing.T) {
	tests := []struct {
		name        string
		granularity types.Granularity
		now         time.Time
		expected    string
	}{
		{"weekly", types.Weekly, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2025-W03"},
		{"monthly", types.Monthly, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2025-01"},
		// Dec 30, 2024 is a Monday in week 1 of 2025.
		{"weekly year boundary", types.Weekly, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), "2025-W01"},
		{"monthly year boundary", types.Monthly, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "2024-12"},
		{"month is zero padded", types.Monthly, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "2025-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, budget.CurrentPeriodKey(tt.granularity, tt.now))
		})
	}
}

func TestPeriodDatesWeekly(t *testing.T) {
	start, end, err := budget.PeriodDates("2025-W03", types.Weekly)
	require.Nil(t, err)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, 13, start.Day())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, 19, end.Day())
	assert.True(t, start.Before(end))
}

func TestPeriodDatesMonthly(t *testing.T) {
	tests := []struct {
		key     string
		lastDay int
	}{
		{"2025-01", 31},
		{"2025-02", 28},
		{"2024-02", 29}, // leap year
	}

	for _, tt := range tests {
		start, end, err := budget.PeriodDates(tt.key, types.Monthly)
		require.Nil(t, err)

		assert.Equal(t, 1, start.Day())
		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, 0, start.Nanosecond())

		assert.Equal(t, tt.lastDay, end.Day(), "end of %s", tt.key)
		assert.Equal(t, 23, end.Hour())
		assert.Equal(t, 59, end.Minute())
		assert.Equal(t, 59, end.Second())
		assert.Equal(t, 999000000, end.Nanosecond())
	}
}

func TestPeriodDatesRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2024, 12, 30, 15, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC),
	}

	for _, instant := range instants {
		for _, granularity := range []types.Granularity{types.Weekly, types.Monthly} {
			key := budget.CurrentPeriodKey(granularity, instant)

			start, end, err := budget.PeriodDates(key, granularity)
			require.Nil(t, err)
			assert.False(t, instant.Before(start), "%s before start of %s", instant, key)
			assert.False(t, instant.After(end), "%s after end of %s", instant, key)
		}
	}
}

func TestPeriodDatesInvalidKey(t *testing.T) {
	tests := []struct {
		key         string
		granularity types.Granularity
	}{
		{"2025-01", types.Weekly},   // monthly key, weekly granularity
		{"2025-W03", types.Monthly}, // weekly key, monthly granularity
		{"garbage", types.Weekly},
		{"garbage", types.Monthly},
		{"", types.Weekly},
	}

	for _, tt := range tests {
		_, _, err := budget.PeriodDates(tt.key, tt.granularity)
		assert.True(t, errors.Is(err, budget.ErrInvalidPeriodKey), "key %q with granularity %s", tt.key, tt.granularity)
	}
}
