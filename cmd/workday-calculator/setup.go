package main

import (
	"context"
	"fmt"

	"github.com/username/workday-calculator/internal/calendar"
	"github.com/username/workday-calculator/internal/config"
	"github.com/username/workday-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

// initializeCalendar builds a WorkdayCalendar from configuration. Holiday
// sources are applied in order: inline entries, holiday file, production
// calendar downloads.
func initializeCalendar(ctx context.Context, cfg *config.Config) (*calendar.WorkdayCalendar, error) {
	cal := calendar.NewWorkdayCalendar(logger)

	startH, startM, stopH, stopM, err := cfg.Workday.WorkdayWindow()
	if err != nil {
		return nil, fmt.Errorf("invalid workday window: %w", err)
	}
	if err := cal.SetWorkdayStartAndStop(startH, startM, stopH, stopM); err != nil {
		return nil, fmt.Errorf("invalid workday window: %w", err)
	}

	for _, h := range cfg.Holidays {
		date, err := dateutil.ParseDate(h)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday: %w", err)
		}
		cal.SetHoliday(date)
	}

	for _, h := range cfg.RecurringHolidays {
		month, day, err := dateutil.ParseMonthDay(h)
		if err != nil {
			return nil, fmt.Errorf("invalid recurring holiday: %w", err)
		}
		if err := cal.SetRecurringHoliday(month, day); err != nil {
			return nil, fmt.Errorf("invalid recurring holiday %q: %w", h, err)
		}
	}

	if cfg.HolidayFile != "" {
		if _, err := calendar.NewHolidayFile(cfg.HolidayFile, logger).Load(cal); err != nil {
			return nil, err
		}
	}

	if len(cfg.XMLCalendar.Years) > 0 {
		importer := calendar.NewXMLCalendarImporter(cfg.XMLCalendar.URL, cfg.XMLCalendar.GetTimeout(), logger)
		for _, year := range cfg.XMLCalendar.Years {
			if _, err := importer.Import(ctx, cal, year); err != nil {
				return nil, fmt.Errorf("failed to import production calendar for %d: %w", year, err)
			}
		}
	}

	logger.Debug("Calendar initialized",
		zap.Int("holidays", len(cfg.Holidays)),
		zap.Int("recurring_holidays", len(cfg.RecurringHolidays)),
		zap.String("holiday_file", cfg.HolidayFile),
		zap.Ints("xmlcalendar_years", cfg.XMLCalendar.Years))

	return cal, nil
}
