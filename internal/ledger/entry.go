// Package ledger implements analytics over the append-only credit ledger:
// filtering, aggregate summaries, per-category spending and trend series.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType classifies how a ledger entry came to be.
type EntryType string

const (
	TypeChoreReward        EntryType = "CHORE_REWARD"
	TypeBonus              EntryType = "BONUS"
	TypeScreentimePurchase EntryType = "SCREENTIME_PURCHASE"
	TypeRewardRedemption   EntryType = "REWARD_REDEMPTION"
	TypeAdjustment         EntryType = "ADJUSTMENT"
	TypeTransfer           EntryType = "TRANSFER"
)

// Category classifies what a ledger entry was spent on.
type Category string

const (
	CategoryRewards    Category = "REWARDS"
	CategoryScreenTime Category = "SCREEN_TIME"
	CategorySavings    Category = "SAVINGS"
	CategoryTransfer   Category = "TRANSFER"
	CategoryOther      Category = "OTHER"
)

// Categories returns all spending categories in stable order. Consumers use
// this to render fixed-shape breakdowns without null-checking.
func Categories() []Category {
	return []Category{
		CategoryRewards,
		CategoryScreenTime,
		CategorySavings,
		CategoryTransfer,
		CategoryOther,
	}
}

// Entry is one signed, immutable credit movement for a family member.
// A positive amount is a credit inflow, a negative amount an outflow.
// Entries are created by the ledger subsystem and never mutated here.
type Entry struct {
	ID        uuid.UUID       `json:"id"`
	MemberID  uuid.UUID       `json:"memberId"`
	Type      EntryType       `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Category  Category        `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}
