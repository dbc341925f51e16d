// Package allowance implements the date arithmetic for recurring allowance
// distributions: when the next payout falls and whether a schedule is due on
// a given day.
package allowance

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is how often an allowance is distributed.
type Frequency string

const (
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyBiweekly Frequency = "BIWEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyCustom   Frequency = "CUSTOM"
)

var (
	ErrDayOfWeekRequired  = errors.New("dayOfWeek is required for weekly and biweekly frequencies")
	ErrDayOfWeekRange     = errors.New("dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
	ErrDayOfMonthRequired = errors.New("dayOfMonth is required for monthly frequency")
	ErrDayOfMonthRange    = errors.New("dayOfMonth must be between 1 and 31")
	ErrFrequencyCustom    = errors.New("custom frequency is not yet supported")
	ErrFrequencyUnknown   = errors.New("unsupported frequency")
)

// Schedule is a recurring allowance configuration. DayOfWeek applies to
// weekly and biweekly schedules (0=Sunday through 6=Saturday), DayOfMonth to
// monthly ones (clamped to shorter months).
type Schedule struct {
	ID              uuid.UUID       `json:"id"`
	MemberID        uuid.UUID       `json:"memberId"`
	Amount          decimal.Decimal `json:"amount"`
	Frequency       Frequency       `json:"frequency"`
	DayOfWeek       *int            `json:"dayOfWeek"`
	DayOfMonth      *int            `json:"dayOfMonth"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         *time.Time      `json:"endDate"`
	LastProcessedAt *time.Time      `json:"lastProcessedAt"`
	IsActive        bool            `json:"isActive"`
	IsPaused        bool            `json:"isPaused"`
}

// NextDistribution returns the next date an allowance falls due, strictly
// after the reference date: daily schedules pay tomorrow, weekly and
// biweekly ones on the next occurrence of their weekday (a same-day request
// rolls a full week forward), monthly ones on their day of the next eligible
// month, clamped to that month's last day.
func NextDistribution(frequency Frequency, from time.Time, dayOfWeek, dayOfMonth *int) (time.Time, error) {
	day := truncateToDay(from)

	switch frequency {
	case FrequencyDaily:
		return day.AddDate(0, 0, 1), nil

	case FrequencyWeekly, FrequencyBiweekly:
		if dayOfWeek == nil {
			return time.Time{}, ErrDayOfWeekRequired
		}
		if *dayOfWeek < 0 || *dayOfWeek > 6 {
			return time.Time{}, ErrDayOfWeekRange
		}

		daysUntil := (*dayOfWeek - int(day.Weekday()) + 7) % 7
		if daysUntil == 0 {
			daysUntil = 7
		}

		return day.AddDate(0, 0, daysUntil), nil

	case FrequencyMonthly:
		if dayOfMonth == nil {
			return time.Time{}, ErrDayOfMonthRequired
		}
		if *dayOfMonth < 1 || *dayOfMonth > 31 {
			return time.Time{}, ErrDayOfMonthRange
		}

		year, month, _ := day.Date()
		if day.Day() >= *dayOfMonth {
			month++
		}

		target := *dayOfMonth
		if last := lastDayOfMonth(year, month); target > last {
			target = last
		}

		return time.Date(year, month, target, 0, 0, 0, 0, time.UTC), nil

	case FrequencyCustom:
		return time.Time{}, ErrFrequencyCustom

	default:
		return time.Time{}, ErrFrequencyUnknown
	}
}

// ShouldProcess reports whether a schedule is due for distribution on the
// given day. A schedule is due when it is active, unpaused, inside its
// start/end range, has not already been processed that UTC day, and the day
// matches its frequency pattern. Biweekly schedules additionally require 14
// days since the last distribution.
func ShouldProcess(schedule Schedule, on time.Time) bool {
	if !schedule.IsActive || schedule.IsPaused {
		return false
	}

	day := truncateToDay(on)

	if day.Before(truncateToDay(schedule.StartDate)) {
		return false
	}

	if schedule.EndDate != nil && day.After(truncateToDay(*schedule.EndDate)) {
		return false
	}

	if schedule.LastProcessedAt != nil && truncateToDay(*schedule.LastProcessedAt).Equal(day) {
		return false
	}

	switch schedule.Frequency {
	case FrequencyDaily:
		return true

	case FrequencyWeekly:
		return schedule.DayOfWeek != nil && int(day.Weekday()) == *schedule.DayOfWeek

	case FrequencyBiweekly:
		if schedule.DayOfWeek == nil || int(day.Weekday()) != *schedule.DayOfWeek {
			return false
		}

		if schedule.LastProcessedAt == nil {
			return true
		}

		sinceLast := int(day.Sub(truncateToDay(*schedule.LastProcessedAt)).Hours() / 24)
		return sinceLast >= 14

	case FrequencyMonthly:
		return schedule.DayOfMonth != nil && day.Day() == *schedule.DayOfMonth

	case FrequencyCustom:
		// Not yet supported.
		return false

	default:
		return false
	}
}

// lastDayOfMonth returns the number of days in the given month. The month
// may be time.December+1; time.Date normalizes it into the next year.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
