package calendar

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/workday-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	// recurringReferenceYear is a leap year so that 02-29 validates
	recurringReferenceYear = 2000

	// maxSkippedDays bounds the search for the next workday
	maxSkippedDays = 5 * 366
)

var _ Calendar = (*WorkdayCalendar)(nil)

// WorkdayCalendar shifts timestamps by fractional workdays.
// A workday is the daily window set by SetWorkdayStartAndStop on a day that
// is neither a weekend nor a holiday.
//
// WorkdayCalendar is not safe for concurrent use; configure it, then query it.
type WorkdayCalendar struct {
	workdayStart      time.Duration
	workdayEnd        time.Duration
	holidays          map[civilDate]struct{}
	recurringHolidays map[monthDay]struct{}
	logger            *zap.Logger
}

// NewWorkdayCalendar creates an empty calendar. A nil logger disables logging.
func NewWorkdayCalendar(logger *zap.Logger) *WorkdayCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WorkdayCalendar{
		holidays:          make(map[civilDate]struct{}),
		recurringHolidays: make(map[monthDay]struct{}),
		logger:            logger,
	}
}

// SetHoliday marks the calendar date of date as a holiday. Time of day is ignored.
func (c *WorkdayCalendar) SetHoliday(date time.Time) {
	c.holidays[dateOf(date)] = struct{}{}

	c.logger.Debug("Holiday set",
		zap.String("date", date.Format(dateutil.DateLayout)))
}

// SetRecurringHoliday marks month/day as a holiday in every year
func (c *WorkdayCalendar) SetRecurringHoliday(month, day int) error {
	if !isValidMonthDay(month, day) {
		return invalidArgument("invalid recurring holiday date %02d-%02d", month, day)
	}

	c.recurringHolidays[monthDay{month: time.Month(month), day: day}] = struct{}{}

	c.logger.Debug("Recurring holiday set",
		zap.Int("month", month),
		zap.Int("day", day))

	return nil
}

// SetWorkdayStartAndStop sets the daily work window using 24-hour clock values
func (c *WorkdayCalendar) SetWorkdayStartAndStop(startHours, startMinutes, stopHours, stopMinutes int) error {
	if startHours < 0 || startHours > 23 {
		return invalidArgument("invalid start hours %d", startHours)
	}
	if startMinutes < 0 || startMinutes > 59 {
		return invalidArgument("invalid start minutes %d", startMinutes)
	}
	if stopHours < 0 || stopHours > 23 {
		return invalidArgument("invalid stop hours %d", stopHours)
	}
	if stopMinutes < 0 || stopMinutes > 59 {
		return invalidArgument("invalid stop minutes %d", stopMinutes)
	}

	start := time.Duration(startHours)*time.Hour + time.Duration(startMinutes)*time.Minute
	stop := time.Duration(stopHours)*time.Hour + time.Duration(stopMinutes)*time.Minute

	// A zero start reads as "not configured" in GetWorkdayIncrement
	if start == 0 {
		return invalidArgument("workday start must be after 00:00")
	}
	if start >= stop {
		return invalidArgument("workday start %02d:%02d is not before stop %02d:%02d",
			startHours, startMinutes, stopHours, stopMinutes)
	}

	c.workdayStart = start
	c.workdayEnd = stop

	c.logger.Debug("Workday window set",
		zap.Duration("start", start),
		zap.Duration("stop", stop))

	return nil
}

// Workday returns the configured window as offsets since midnight
func (c *WorkdayCalendar) Workday() (start, stop time.Duration) {
	return c.workdayStart, c.workdayEnd
}

// GetWorkdayIncrement returns startDate moved by incrementInWorkdays workdays.
// One workday is one full window of working time; fractions move
// proportionally inside a day. A start outside working time is first moved
// onto the nearest working instant in the direction of the increment.
func (c *WorkdayCalendar) GetWorkdayIncrement(startDate time.Time, incrementInWorkdays decimal.Decimal) (time.Time, error) {
	if c.workdayEnd == 0 {
		return time.Time{}, &ConfigurationError{Boundary: "end"}
	}
	if c.workdayStart == 0 {
		return time.Time{}, &ConfigurationError{Boundary: "start"}
	}

	direction := 1
	if incrementInWorkdays.IsNegative() {
		direction = -1
	}
	remaining := incrementInWorkdays.Abs()
	workdayLength := decimal.NewFromInt(int64(c.workdayEnd - c.workdayStart))

	current, err := c.adjustToWorkday(startDate, direction)
	if err != nil {
		return time.Time{}, err
	}

	for remaining.IsPositive() {
		offset := dateutil.TimeOfDay(current)

		var timeRemainingToday time.Duration
		if direction > 0 {
			timeRemainingToday = c.workdayEnd - offset
		} else {
			timeRemainingToday = offset - c.workdayStart
		}
		workdaysInCurrentDay := decimal.NewFromInt(int64(timeRemainingToday)).Div(workdayLength)

		if remaining.LessThanOrEqual(workdaysInCurrentDay) {
			shift := time.Duration(remaining.Mul(workdayLength).Round(0).IntPart())
			if shift > timeRemainingToday {
				shift = timeRemainingToday
			}
			current = dateutil.AtTimeOfDay(current, offset+time.Duration(direction)*shift)
			break
		}

		remaining = remaining.Sub(workdaysInCurrentDay)
		current, err = c.adjustToWorkday(c.nextWindowEdge(current, direction), direction)
		if err != nil {
			return time.Time{}, err
		}
	}

	c.logger.Debug("Workday increment computed",
		zap.Time("start", startDate),
		zap.String("increment", incrementInWorkdays.String()),
		zap.Time("result", current))

	return current, nil
}

// adjustToWorkday moves date onto a working instant, walking whole days in
// the given direction past weekends and holidays
func (c *WorkdayCalendar) adjustToWorkday(date time.Time, direction int) (time.Time, error) {
	for moves := 0; moves <= maxSkippedDays; moves++ {
		if !c.IsWorkday(date) {
			date = c.nextWindowEdge(date, direction)
			continue
		}

		offset := dateutil.TimeOfDay(date)
		switch {
		case direction > 0 && offset < c.workdayStart:
			return dateutil.AtTimeOfDay(date, c.workdayStart), nil
		case direction > 0 && offset > c.workdayEnd:
			date = c.nextWindowEdge(date, direction)
		case direction < 0 && offset > c.workdayEnd:
			return dateutil.AtTimeOfDay(date, c.workdayEnd), nil
		case direction < 0 && offset < c.workdayStart:
			date = c.nextWindowEdge(date, direction)
		default:
			return date, nil
		}
	}

	c.logger.Warn("No workday found",
		zap.Time("date", date),
		zap.Int("direction", direction),
		zap.Int("max_skipped_days", maxSkippedDays))

	return time.Time{}, ErrNoWorkdays
}

// nextWindowEdge returns the window start of the next day when moving
// forward, or the window end of the previous day when moving backward
func (c *WorkdayCalendar) nextWindowEdge(date time.Time, direction int) time.Time {
	if direction > 0 {
		return dateutil.AtTimeOfDay(dateutil.AddDays(date, 1), c.workdayStart)
	}
	return dateutil.AtTimeOfDay(dateutil.AddDays(date, -1), c.workdayEnd)
}

// IsWorkday checks if the given date is a working day
func (c *WorkdayCalendar) IsWorkday(date time.Time) bool {
	return c.dayType(date) == DayTypeWorkday
}

// GetDayInfo returns detailed info for a specific day
func (c *WorkdayCalendar) GetDayInfo(date time.Time) DayInfo {
	dayType := c.dayType(date)

	info := DayInfo{
		Date:      dateutil.StartOfDay(date),
		Type:      dayType,
		IsWorkday: dayType == DayTypeWorkday,
	}
	if info.IsWorkday {
		info.WorkingTime = c.workdayEnd - c.workdayStart
	}

	return info
}

// GetMonthInfo returns calendar info for the entire month
func (c *WorkdayCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if month < time.January || month > time.December {
		return nil, invalidArgument("invalid month %d", month)
	}

	daysInMonth := dateutil.DaysIn(year, month)
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		info := c.GetDayInfo(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))

		switch info.Type {
		case DayTypeWorkday:
			monthInfo.WorkDays++
		case DayTypeWeekend:
			monthInfo.Weekends++
		default:
			monthInfo.Holidays++
		}
		monthInfo.WorkingTime += info.WorkingTime
		monthInfo.Days = append(monthInfo.Days, info)
	}

	return monthInfo, nil
}

func (c *WorkdayCalendar) dayType(date time.Time) DayType {
	if dateutil.IsWeekend(date) {
		return DayTypeWeekend
	}
	if _, ok := c.holidays[dateOf(date)]; ok {
		return DayTypeHoliday
	}
	if _, ok := c.recurringHolidays[monthDay{month: date.Month(), day: date.Day()}]; ok {
		return DayTypeRecurringHoliday
	}
	return DayTypeWorkday
}

func isValidMonthDay(month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= dateutil.DaysIn(recurringReferenceYear, time.Month(month))
}
