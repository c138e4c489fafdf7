package timegrid

import (
	"fmt"
	"strings"
	"time"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"

	minutesPerDay = 24 * 60
)

// ParseClock converts a wall-clock "HH:MM" string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as a zero-padded "HH:MM".
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateEndTime returns start + duration as a wall-clock "HH:MM".
// The result wraps past midnight with no day carry: "23:00" + 120 -> "01:00".
func CalculateEndTime(start string, durationMinutes int) (string, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(startMinutes + durationMinutes), nil
}

// Overlaps reports whether the half-open windows [start1,end1) and
// [start2,end2) intersect. Zero-padded HH:MM strings order the same
// lexicographically as chronologically, so no parsing is needed.
// Touching boundaries (end1 == start2) do not overlap.
func Overlaps(start1, end1, start2, end2 string) bool {
	return start1 < end2 && end1 > start2
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// WeekMonday returns the Monday of the ISO week containing t.
func WeekMonday(t time.Time) time.Time {
	shift := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -shift)
}

// DayName returns the lowercase weekday name ("sunday".."saturday")
// used to key per-day working hours.
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
