package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Week is an ISO-8601 week in a specific week-numbering year. Weeks run
// Monday through Sunday; week 1 is the week containing the year's first
// Thursday, so the week year can differ from the calendar year at year
// boundaries.
type Week time.Time

var weekKeyPattern = regexp.MustCompile(`^([0-9]{4})-W([0-9]{2})$`)

// NewWeek returns the Week for the given ISO week-numbering year and week
// number. The zero Week is returned when the week does not exist in that
// year, together with an error.
func NewWeek(isoYear, week int) (Week, error) {
	// January 4 is always in week 1.
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := startOfISOWeek(jan4).AddDate(0, 0, (week-1)*7)

	if y, w := monday.ISOWeek(); y != isoYear || w != week {
		return Week{}, fmt.Errorf("week %d does not exist in ISO year %d", week, isoYear)
	}

	return Week(monday), nil
}

// WeekOf returns the Week in which a time occurs, interpreted in UTC.
func WeekOf(t time.Time) Week {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Week(startOfISOWeek(day))
}

// ParseWeek parses a "YYYY-Www" string and returns the Week value it represents.
func ParseWeek(s string) (Week, error) {
	match := weekKeyPattern.FindStringSubmatch(s)
	if match == nil {
		return Week{}, fmt.Errorf("%q is not a valid week key", s)
	}

	isoYear, _ := strconv.Atoi(match[1])
	week, _ := strconv.Atoi(match[2])

	return NewWeek(isoYear, week)
}

// String returns the canonical period key, formatted as YYYY-Www with a
// two-digit zero-padded week number.
func (w Week) String() string {
	year, week := time.Time(w).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the canonical period key string.
func (w Week) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The week is expected to be a "YYYY-Www" period key.
func (w *Week) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	week, err := ParseWeek(value)
	if err != nil {
		return err
	}

	*w = week
	return nil
}

// Start returns the first instant of the week: Monday at midnight UTC.
func (w Week) Start() time.Time {
	return time.Time(w)
}

// End returns the last instant of the week: Sunday at 23:59:59.999 UTC.
func (w Week) End() time.Time {
	return time.Time(w).AddDate(0, 0, 7).Add(-time.Millisecond)
}

// AddWeeks adds a specified amount of weeks.
func (w Week) AddWeeks(weeks int) Week {
	return Week(time.Time(w).AddDate(0, 0, weeks*7))
}

// IsZero reports if the week is the zero value.
func (w Week) IsZero() bool {
	return time.Time(w).IsZero()
}

// Before reports whether the week instant w is before v.
func (w Week) Before(v Week) bool {
	return time.Time(w).Before(time.Time(v))
}

// After reports whether the week instant w is after v.
func (w Week) After(v Week) bool {
	return time.Time(w).After(time.Time(v))
}

// Equal reports whether w and v represent the same week.
func (w Week) Equal(v Week) bool {
	return time.Time(w).Equal(time.Time(v))
}

// Contains reports whether the time instant is in the week, interpreted in UTC.
func (w Week) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(w.Start()) && !t.After(w.End())
}

// startOfISOWeek returns the Monday at midnight UTC of the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}

	return t.AddDate(0, 0, 1-weekday)
}
