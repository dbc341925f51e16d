package budget

import "github.com/shopspring/decimal"

// Status classifies a budget period against its limit.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusExceeded Status = "exceeded"
)

// Spending at or above this share of the limit raises a warning.
const warningThresholdPercent = 80

// Report is the result of classifying one budget period, including the
// effect of a pending transaction that has not been committed yet.
type Report struct {
	Status          Status          `json:"status"`
	CurrentSpent    decimal.Decimal `json:"currentSpent"`
	ProjectedSpent  decimal.Decimal `json:"projectedSpent"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
	PercentageUsed  int64           `json:"percentageUsed"`
}

// CheckBudgetStatus classifies the budget's current period given its spend
// snapshot and a hypothetical additional amount. Reaching the limit exactly
// counts as exceeded; above 80% of the limit is a warning. The remaining
// budget is negative once the limit is exceeded.
//
// The budget's limit must be positive; classifying against a zero limit
// divides by zero.
func CheckBudgetStatus(b Budget, period PeriodSnapshot, pending decimal.Decimal) Report {
	projected := period.Spent.Add(pending)
	percentage := projected.Div(b.LimitAmount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	status := StatusOK
	switch {
	case projected.GreaterThanOrEqual(b.LimitAmount):
		status = StatusExceeded
	case percentage > warningThresholdPercent:
		status = StatusWarning
	}

	return Report{
		Status:          status,
		CurrentSpent:    period.Spent,
		ProjectedSpent:  projected,
		BudgetLimit:     b.LimitAmount,
		RemainingBudget: b.LimitAmount.Sub(projected),
		PercentageUsed:  percentage,
	}
}

// ShouldWarnUser reports whether a classification warrants warning the user.
// Disabled budgets never warn, regardless of status. The report is trusted
// to have been derived from the same budget; no cross-check is made.
func ShouldWarnUser(b Budget, report Report) bool {
	if !b.IsActive {
		return false
	}

	return report.Status == StatusWarning || report.Status == StatusExceeded
}
