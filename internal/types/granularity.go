package types

// Granularity selects the calendar bucketing for periods: ISO weeks or
// calendar months.
type Granularity string

const (
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)
