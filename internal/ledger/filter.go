package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Filters expresses optional bounds on a ledger query. A nil or zero field
// imposes no constraint. Date bounds are inclusive and compared at day
// granularity in UTC.
type Filters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      EntryType
	Category  Category
	MemberID  uuid.UUID
}

// Filter returns the entries matching every supplied bound. The input is not
// mutated and the original relative order is retained.
func Filter(entries []Entry, filters Filters) []Entry {
	matched := make([]Entry, 0, len(entries))

	for _, entry := range entries {
		if !matches(entry, filters) {
			continue
		}

		matched = append(matched, entry)
	}

	return matched
}

func matches(entry Entry, filters Filters) bool {
	if filters.StartDate != nil && truncateToDay(entry.CreatedAt).Before(truncateToDay(*filters.StartDate)) {
		return false
	}

	if filters.EndDate != nil && truncateToDay(entry.CreatedAt).After(truncateToDay(*filters.EndDate)) {
		return false
	}

	if filters.Type != "" && entry.Type != filters.Type {
		return false
	}

	if filters.Category != "" && entry.Category != filters.Category {
		return false
	}

	if filters.MemberID != uuid.Nil && entry.MemberID != filters.MemberID {
		return false
	}

	return true
}

// truncateToDay returns the instant at midnight UTC of the day containing t.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
