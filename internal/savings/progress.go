// Package savings implements progress and completion projection for savings
// goals based on the historical daily funding rate.
package savings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target for a family member. Read-only input; the ledger
// subsystem owns the accumulated amount.
type Goal struct {
	ID            uuid.UUID       `json:"id"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	Deadline      *time.Time      `json:"deadline"`
}

// Progress describes how far along a goal is and whether its pace suffices.
// IsOnTrack and DaysRemaining are nil when the goal has no deadline;
// ProjectedCompletionDate is nil when no positive funding rate exists or
// nothing remains to save.
type Progress struct {
	ProgressPercentage      int64           `json:"progressPercentage"`
	RemainingAmount         decimal.Decimal `json:"remainingAmount"`
	IsOnTrack               *bool           `json:"isOnTrack"`
	DaysRemaining           *int64          `json:"daysRemaining"`
	ProjectedCompletionDate *time.Time      `json:"projectedCompletionDate"`
}

// CalculateProgress evaluates a goal at the given instant. The daily funding
// rate is the amount saved so far divided by the days since creation, with a
// minimum of one day so the creation day itself cannot divide by zero.
func CalculateProgress(goal Goal, now time.Time) Progress {
	today := truncateToDay(now)
	created := truncateToDay(goal.CreatedAt)

	// A goal without a positive target has nothing left to fund; the
	// percentage cap handles it the same way as an overfunded goal.
	percentage := int64(100)
	if goal.TargetAmount.IsPositive() {
		percentage = goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		if percentage > 100 {
			percentage = 100
		}
	}

	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	daysElapsed := int64(today.Sub(created).Hours() / 24)
	if daysElapsed < 1 {
		daysElapsed = 1
	}

	dailyRate := goal.CurrentAmount.Div(decimal.NewFromInt(daysElapsed))

	var projectedCompletion *time.Time
	if dailyRate.IsPositive() && remaining.IsPositive() {
		daysNeeded := remaining.Div(dailyRate).Ceil().IntPart()
		date := today.AddDate(0, 0, int(daysNeeded))
		projectedCompletion = &date
	}

	var onTrack *bool
	var daysRemaining *int64

	if goal.Deadline != nil {
		days := int64(truncateToDay(*goal.Deadline).Sub(today).Hours() / 24)
		daysRemaining = &days

		var track bool
		switch {
		case remaining.IsZero():
			track = true // goal already met
		case days <= 0:
			track = false // deadline passed without completion
		default:
			requiredRate := remaining.Div(decimal.NewFromInt(days))
			track = dailyRate.GreaterThanOrEqual(requiredRate)
		}
		onTrack = &track
	}

	return Progress{
		ProgressPercentage:      percentage,
		RemainingAmount:         remaining,
		IsOnTrack:               onTrack,
		DaysRemaining:           daysRemaining,
		ProjectedCompletionDate: projectedCompletion,
	}
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
