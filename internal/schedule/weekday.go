package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// Weekday names a day of the week as stored in booking and time period
// records. The zero value is the day-agnostic wildcard used by suggestion
// queries.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"

	// AnyDay matches every weekday during conflict checks.
	AnyDay Weekday = ""
)

var weekdayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekdays returns the seven weekdays in Monday-first order.
func Weekdays() []Weekday {
	out := make([]Weekday, len(weekdayOrder))
	copy(out, weekdayOrder)
	return out
}

// DefaultTeachingDays returns the Monday through Friday set applied to time
// period records loaded without an explicit weekday set.
func DefaultTeachingDays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// NormalizeDays returns the weekday set deduplicated and in canonical
// Monday-first order. Both persistence backends store period weekday sets in
// this form so that set equality reduces to element-wise comparison.
func NormalizeDays(days []Weekday) []Weekday {
	out := make([]Weekday, 0, len(days))
	seen := make(map[Weekday]struct{}, len(days))
	for _, day := range days {
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}

// ParseWeekday resolves a case-insensitive weekday name.
func ParseWeekday(value string) (Weekday, error) {
	trimmed := strings.TrimSpace(value)
	for _, day := range weekdayOrder {
		if strings.EqualFold(trimmed, string(day)) {
			return day, nil
		}
	}
	return AnyDay, fmt.Errorf("unknown weekday %q", value)
}

// Valid reports whether the weekday is one of the seven named days.
func (d Weekday) Valid() bool {
	for _, day := range weekdayOrder {
		if d == day {
			return true
		}
	}
	return false
}

// Index returns the Monday-first ordinal of the weekday. Unknown values sort
// after Sunday.
func (d Weekday) Index() int {
	for i, day := range weekdayOrder {
		if d == day {
			return i
		}
	}
	return len(weekdayOrder)
}
