package ledger_test

import (
	"testing"
	"time"

	"github.com/familycredits/engine/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmpty(t *testing.T) {
	result := ledger.Analyze(nil)

	assert.True(t, result.TotalIncome.IsZero())
	assert.True(t, result.TotalExpenses.IsZero())
	assert.True(t, result.NetChange.IsZero())
	assert.True(t, result.AverageTransaction.IsZero())
	assert.Equal(t, 0, result.TransactionCount)
}

func TestAnalyze(t *testing.T) {
	member := uuid.New()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	entries := []ledger.Entry{
		testEntry(member, ledger.TypeChoreReward, ledger.CategoryOther, 100, now),
		testEntry(member, ledger.TypeBonus, ledger.CategoryOther, 50, now),
		testEntry(member, ledger.TypeScreentimePurchase, ledger.CategoryScreenTime, -30, now),
		testEntry(member, ledger.TypeRewardRedemption, ledger.CategoryRewards, -20, now),
	}

	result := ledger.Analyze(entries)

	assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(150)), "income is %s", result.TotalIncome)
	assert.True(t, result.TotalExpenses.Equal(decimal.NewFromInt(50)), "expenses are %s", result.TotalExpenses)
	assert.True(t, result.NetChange.Equal(decimal.NewFromInt(100)), "net is %s", result.NetChange)
	// (100 + 50 + 30 + 20) / 4
	assert.True(t, result.AverageTransaction.Equal(decimal.NewFromInt(50)), "average is %s", result.AverageTransaction)
	assert.Equal(t, 4, result.TransactionCount)
}

func TestAnalyzeOnlyExpenses(t *testing.T) {
	member := uuid.New()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	result := ledger.Analyze([]ledger.Entry{
		testEntry(member, ledger.TypeScreentimePurchase, ledger.CategoryScreenTime, -60, now),
		testEntry(member, ledger.TypeRewardRedemption, ledger.CategoryRewards, -40, now),
	})

	assert.True(t, result.TotalIncome.IsZero())
	assert.True(t, result.TotalExpenses.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.NetChange.Equal(decimal.NewFromInt(-100)))
	assert.True(t, result.AverageTransaction.Equal(decimal.NewFromInt(50)))
}

func TestSpendingByCategory(t *testing.T) {
	member := uuid.New()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	entries := []ledger.Entry{
		testEntry(member, ledger.TypeRewardRedemption, ledger.CategoryRewards, -100, now),
		testEntry(member, ledger.TypeScreentimePurchase, ledger.CategoryScreenTime, -30, now),
		testEntry(member, ledger.TypeScreentimePurchase, ledger.CategoryScreenTime, -20, now),
		// Positive entries never count as spending, whatever their category.
		testEntry(member, ledger.TypeChoreReward, ledger.CategoryRewards, 500, now),
	}

	spending := ledger.SpendingByCategory(entries)

	assert.True(t, spending[ledger.CategoryRewards].Equal(decimal.NewFromInt(100)))
	assert.True(t, spending[ledger.CategoryScreenTime].Equal(decimal.NewFromInt(50)))
	assert.True(t, spending[ledger.CategorySavings].IsZero())
	assert.True(t, spending[ledger.CategoryTransfer].IsZero())
	assert.True(t, spending[ledger.CategoryOther].IsZero())
}

func TestSpendingByCategoryFixedShape(t *testing.T) {
	spending := ledger.SpendingByCategory(nil)

	assert.Len(t, spending, len(ledger.Categories()))
	for _, category := range ledger.Categories() {
		total, ok := spending[category]
		assert.True(t, ok, "category %s missing", category)
		assert.True(t, total.IsZero())
	}
}
