// Package budget implements period resolution and budget compliance
// classification for per-category spending limits.
package budget

import (
	"errors"
	"fmt"
	"time"

	"github.com/familycredits/engine/internal/ledger"
	"github.com/familycredits/engine/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidPeriodKey is returned when a period key does not parse as
// "YYYY-Www" or "YYYY-MM" for the requested granularity. Period keys are
// always engine-generated, so this signals a data integrity problem rather
// than a retryable condition.
var ErrInvalidPeriodKey = errors.New("invalid period key")

// Budget is a per-member, per-category spending limit. It is owned by a
// collaborator and read-only input here.
type Budget struct {
	ID          uuid.UUID         `json:"id"`
	MemberID    uuid.UUID         `json:"memberId"`
	Category    ledger.Category   `json:"category"`
	LimitAmount decimal.Decimal   `json:"limitAmount"`
	Period      types.Granularity `json:"period"`
	ResetDay    int               `json:"resetDay"`
	IsActive    bool              `json:"isActive"`
}

// PeriodSnapshot is the rolling spend counter of one budget in one period.
// The accumulator is owned and persisted externally; the engine only reads
// it. Whoever owns storage must serialize concurrent increments before
// evaluating, otherwise the classification is based on stale data.
type PeriodSnapshot struct {
	PeriodKey   string          `json:"periodKey"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Spent       decimal.Decimal `json:"spent"`
}

// CurrentPeriodKey returns the canonical key of the period containing now:
// "YYYY-Www" for weekly budgets, "YYYY-MM" for monthly ones.
func CurrentPeriodKey(granularity types.Granularity, now time.Time) string {
	if granularity == types.Weekly {
		return types.WeekOf(now).String()
	}

	return types.MonthOf(now).String()
}

// PeriodDates resolves a period key to its inclusive bounds: midnight UTC of
// the first day through 23:59:59.999 UTC of the last. Weekly periods run
// Monday through Sunday. Fails with ErrInvalidPeriodKey when the key does
// not match the granularity.
func PeriodDates(key string, granularity types.Granularity) (start, end time.Time, err error) {
	if granularity == types.Weekly {
		week, err := types.ParseWeek(key)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %q is not a weekly key", ErrInvalidPeriodKey, key)
		}

		return week.Start(), week.End(), nil
	}

	month, err := types.ParseMonth(key)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q is not a monthly key", ErrInvalidPeriodKey, key)
	}

	return month.Start(), month.End(), nil
}
