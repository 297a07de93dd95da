package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed holiday or window input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotConfigured is returned when an increment is requested before
	// the workday window is set
	ErrNotConfigured = errors.New("workday window not configured")

	// ErrNoWorkdays is returned when no workday can be reached from a date
	ErrNoWorkdays = errors.New("no workday reachable")
)

// ConfigurationError names the workday boundary that has not been set.
// The window is set atomically, so "start" is only reported for a
// zero-value WorkdayCalendar.
type ConfigurationError struct {
	Boundary string // "start" or "end"
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("there is no workday %s", e.Boundary)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrNotConfigured
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
