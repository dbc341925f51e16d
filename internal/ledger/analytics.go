package ledger

import "github.com/shopspring/decimal"

// Analytics is the aggregate summary of a set of ledger entries.
type Analytics struct {
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	NetChange          decimal.Decimal `json:"netChange"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
	TransactionCount   int             `json:"transactionCount"`
}

// Analyze reduces entries to income, expenses, net change, average magnitude
// and count. Income sums the positive amounts, expenses the magnitudes of the
// negative ones. The average is taken over the magnitudes of all entries, not
// just one side. An empty input yields an all-zero result.
func Analyze(entries []Entry) Analytics {
	if len(entries) == 0 {
		return Analytics{}
	}

	var totalIncome, totalExpenses, totalMagnitude decimal.Decimal

	for _, entry := range entries {
		if entry.Amount.IsPositive() {
			totalIncome = totalIncome.Add(entry.Amount)
		} else {
			totalExpenses = totalExpenses.Add(entry.Amount.Abs())
		}

		totalMagnitude = totalMagnitude.Add(entry.Amount.Abs())
	}

	return Analytics{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetChange:          totalIncome.Sub(totalExpenses),
		AverageTransaction: totalMagnitude.Div(decimal.NewFromInt(int64(len(entries)))),
		TransactionCount:   len(entries),
	}
}

// SpendingByCategory sums the magnitudes of all negative entries per spending
// category. Every category is present in the result, defaulting to zero, so
// the shape is fixed regardless of the input.
func SpendingByCategory(entries []Entry) map[Category]decimal.Decimal {
	spending := make(map[Category]decimal.Decimal, len(Categories()))
	for _, category := range Categories() {
		spending[category] = decimal.Zero
	}

	for _, entry := range entries {
		if entry.Amount.IsNegative() {
			spending[entry.Category] = spending[entry.Category].Add(entry.Amount.Abs())
		}
	}

	return spending
}
