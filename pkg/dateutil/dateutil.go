package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted by the parsers below
const (
	DateLayout   = "2006-01-02"
	MinuteLayout = "2006-01-02 15:04"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// AddDays returns midnight of the day that is n calendar days away from date
func AddDays(date time.Time, n int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day()+n, 0, 0, 0, 0, date.Location())
}

// TimeOfDay returns the wall-clock offset since midnight.
// On DST transition days this differs from date.Sub(StartOfDay(date)).
func TimeOfDay(date time.Time) time.Duration {
	return time.Duration(date.Hour())*time.Hour +
		time.Duration(date.Minute())*time.Minute +
		time.Duration(date.Second())*time.Second +
		time.Duration(date.Nanosecond())
}

// AtTimeOfDay returns the instant on date's day whose wall clock reads offset
func AtTimeOfDay(date time.Time, offset time.Duration) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, int(offset), date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DaysIn returns the number of days in the month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02.01.2006",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseDateTime parses a local timestamp with minute or second precision.
// A bare date is read as midnight.
func ParseDateTime(value string) (time.Time, error) {
	formats := []string{
		MinuteLayout,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		DateLayout,
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// ParseMonthDay parses "MM-DD" into its components without validating the pair
func ParseMonthDay(value string) (month, day int, err error) {
	month, day, err = splitPair(value, "-")
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month-day %q: %w", value, err)
	}
	return month, day, nil
}

// ParseClock parses "HH:MM" into hour and minute without range checks
func ParseClock(value string) (hour, minute int, err error) {
	hour, minute, err = splitPair(value, ":")
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}
	return hour, minute, nil
}

// splitPair reads exactly two unsigned decimal numbers around sep
func splitPair(value, sep string) (int, int, error) {
	left, right, ok := strings.Cut(value, sep)
	if !ok {
		return 0, 0, fmt.Errorf("missing %q separator", sep)
	}

	first, err := parseDigits(left)
	if err != nil {
		return 0, 0, err
	}
	second, err := parseDigits(right)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

func parseDigits(s string) (int, error) {
	if s == "" || len(s) > 2 || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("expected one or two digits, got %q", s)
	}
	return strconv.Atoi(s)
}
