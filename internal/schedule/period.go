package schedule

import (
	"fmt"
	"time"
)

// clockLayout is the zero-padded 24-hour time-of-day form used in period
// labels. Labels sort textually, so the zero padding is what keeps the
// lexicographic order chronological.
const clockLayout = "15:04"

// PeriodLabel derives the canonical "HH:MM - HH:MM" display label for a time
// range. The label doubles as the period component of booking keys.
func PeriodLabel(start, end string) string {
	return start + " - " + end
}

// ParseClock validates a zero-padded 24-hour "HH:MM" time-of-day value.
func ParseClock(value string) (string, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return "", fmt.Errorf("invalid time of day %q: expected HH:MM", value)
	}
	return parsed.Format(clockLayout), nil
}
