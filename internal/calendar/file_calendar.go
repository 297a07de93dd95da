package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/username/workday-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

// HolidayFile loads holidays from a local text file into a WorkdayCalendar
type HolidayFile struct {
	filePath string
	logger   *zap.Logger
}

// NewHolidayFile creates a new HolidayFile instance
func NewHolidayFile(filePath string, logger *zap.Logger) *HolidayFile {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HolidayFile{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads the file and registers every valid entry with cal.
// It returns the number of entries applied; malformed lines are skipped.
func (hf *HolidayFile) Load(cal *WorkdayCalendar) (int, error) {
	file, err := os.Open(hf.filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	applied := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: <date> <kind> [note]
		// Examples:
		//   2004-05-27 holiday Ascension Day
		//   05-17 recurring Constitution Day
		parts := strings.Fields(line)
		if len(parts) < 2 {
			hf.logger.Warn("Invalid line format",
				zap.Int("line", lineNo),
				zap.String("content", line))
			continue
		}

		dateStr := parts[0]
		kind := parts[1]

		switch kind {
		case "holiday":
			date, err := dateutil.ParseDate(dateStr)
			if err != nil {
				hf.logger.Warn("Failed to parse date",
					zap.Int("line", lineNo),
					zap.String("date", dateStr),
					zap.Error(err))
				continue
			}
			cal.SetHoliday(date)

		case "recurring":
			month, day, err := dateutil.ParseMonthDay(dateStr)
			if err == nil {
				err = cal.SetRecurringHoliday(month, day)
			}
			if err != nil {
				hf.logger.Warn("Failed to add recurring holiday",
					zap.Int("line", lineNo),
					zap.String("date", dateStr),
					zap.Error(err))
				continue
			}

		default:
			hf.logger.Warn("Unknown holiday kind",
				zap.Int("line", lineNo),
				zap.String("kind", kind))
			continue
		}

		applied++
	}

	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("error reading holiday file: %w", err)
	}

	hf.logger.Info("Holiday file loaded",
		zap.String("file", hf.filePath),
		zap.Int("entries", applied))

	return applied, nil
}
