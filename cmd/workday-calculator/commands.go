package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/username/workday-calculator/internal/calendar"
	"github.com/username/workday-calculator/internal/config"
	"github.com/username/workday-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

func incrementCmd() *cobra.Command {
	var start string
	var by string

	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Shift a timestamp by a number of workdays",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := dateutil.ParseDateTime(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			increment, err := decimal.NewFromString(by)
			if err != nil {
				return fmt.Errorf("invalid --by %q: %w", by, err)
			}

			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}

			result, err := cal.GetWorkdayIncrement(startDate, increment)
			if err != nil {
				return fmt.Errorf("failed to compute increment: %w", err)
			}

			logger.Info("Increment computed",
				zap.Time("start", startDate),
				zap.String("workdays", increment.String()),
				zap.Time("result", result))

			fmt.Fprintln(cmd.OutOrStdout(), result.Format(dateutil.MinuteLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start timestamp (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&by, "by", "", "Workdays to add, negative to subtract (e.g. -5.5)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func dayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show whether a date is a workday",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}

			info := cal.GetDayInfo(day)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				info.Date.Format("2006-01-02 Mon"),
				info.Type,
				formatHours(info.WorkingTime))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func monthCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Summarize workdays in a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := time.Parse("2006-01", month)
			if err != nil {
				return fmt.Errorf("invalid --month %q: %w", month, err)
			}

			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}

			monthInfo, err := cal.GetMonthInfo(first.Year(), first.Month())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", monthInfo.Month, monthInfo.Year)
			fmt.Fprintf(out, "  Working days:  %d\n", monthInfo.WorkDays)
			fmt.Fprintf(out, "  Weekends:      %d\n", monthInfo.Weekends)
			fmt.Fprintf(out, "  Holidays:      %d\n", monthInfo.Holidays)
			fmt.Fprintf(out, "  Working time:  %s\n", formatHours(monthInfo.WorkingTime))
			for _, day := range monthInfo.Days {
				if day.IsWorkday || day.Type == calendar.DayTypeWeekend {
					continue
				}
				fmt.Fprintf(out, "  %s  %s\n", day.Date.Format("2006-01-02 Mon"), day.Type)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM)")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func loadCalendar(ctx context.Context) (*calendar.WorkdayCalendar, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return initializeCalendar(ctx, cfg)
}

func formatHours(d time.Duration) string {
	return fmt.Sprintf("%.2fh", d.Hours())
}
