package ledger

import (
	"time"

	"github.com/familycredits/engine/internal/types"
	"github.com/shopspring/decimal"
)

// Window sizes for trend series, in trailing periods including the current one.
const (
	weeklyTrendPeriods  = 4
	monthlyTrendPeriods = 6
)

// TrendPoint is the income/expense balance of one calendar period.
type TrendPoint struct {
	Period   string          `json:"period"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// Trends buckets entries into a fixed trailing window of calendar periods
// anchored at now: the 4 ISO weeks or 6 months up to and including the
// current one. Every period of the window appears in the result in
// chronological order, zero-valued when nothing matched. Entries outside the
// window are ignored.
func Trends(entries []Entry, granularity types.Granularity, now time.Time) []TrendPoint {
	keys := windowKeys(granularity, now)

	points := make([]TrendPoint, len(keys))
	index := make(map[string]int, len(keys))
	for i, key := range keys {
		points[i] = TrendPoint{Period: key}
		index[key] = i
	}

	for _, entry := range entries {
		i, ok := index[periodKeyOf(entry.CreatedAt, granularity)]
		if !ok {
			continue
		}

		if entry.Amount.IsPositive() {
			points[i].Income = points[i].Income.Add(entry.Amount)
		} else {
			points[i].Expenses = points[i].Expenses.Add(entry.Amount.Abs())
		}
		points[i].Net = points[i].Income.Sub(points[i].Expenses)
	}

	return points
}

// windowKeys returns the period keys of the trailing window, oldest first.
func windowKeys(granularity types.Granularity, now time.Time) []string {
	if granularity == types.Weekly {
		current := types.WeekOf(now)

		keys := make([]string, 0, weeklyTrendPeriods)
		for i := weeklyTrendPeriods - 1; i >= 0; i-- {
			keys = append(keys, current.AddWeeks(-i).String())
		}
		return keys
	}

	current := types.MonthOf(now)

	keys := make([]string, 0, monthlyTrendPeriods)
	for i := monthlyTrendPeriods - 1; i >= 0; i-- {
		keys = append(keys, current.AddDate(0, -i).String())
	}
	return keys
}

func periodKeyOf(t time.Time, granularity types.Granularity) string {
	if granularity == types.Weekly {
		return types.WeekOf(t).String()
	}

	return types.MonthOf(t).String()
}
