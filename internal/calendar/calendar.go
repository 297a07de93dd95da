package calendar

import "time"

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeRecurringHoliday
)

// String returns a lowercase label for the day type
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeRecurringHoliday:
		return "recurring holiday"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date        time.Time
	Type        DayType
	WorkingTime time.Duration
	IsWorkday   bool
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year        int
	Month       time.Month
	WorkingTime time.Duration // Total working time in the month
	WorkDays    int
	Weekends    int
	Holidays    int
	Days        []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) bool

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) DayInfo

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)
}

// civilDate is a holiday key independent of time of day and location
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	return civilDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

type monthDay struct {
	month time.Month
	day   int
}
