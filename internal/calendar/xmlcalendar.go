package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/username/workday-calculator/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	// DefaultXMLCalendarURL is the public Russian production calendar
	DefaultXMLCalendarURL = "https://xmlcalendar.ru/data/ru/{year}/calendar.json"

	defaultHTTPTimeout = 10 * time.Second
)

// XMLCalendarImporter downloads production calendar years in the
// xmlcalendar.ru JSON format and registers their days off as holidays
type XMLCalendarImporter struct {
	urlTemplate string
	httpClient  *http.Client
	logger      *zap.Logger
}

// xmlCalendarYear represents xmlcalendar.ru JSON structure
type xmlCalendarYear struct {
	Year   int                `json:"year"`
	Months []xmlCalendarMonth `json:"months"`
}

type xmlCalendarMonth struct {
	Month int    `json:"month"`
	Days  string `json:"days"` // "1*,2,3+,4,8,9,..." where * = shortened, + = transferred
}

// NewXMLCalendarImporter creates an importer for a URL template containing {year}.
// A zero timeout uses the default of 10s.
func NewXMLCalendarImporter(urlTemplate string, timeout time.Duration, logger *zap.Logger) *XMLCalendarImporter {
	if urlTemplate == "" {
		urlTemplate = DefaultXMLCalendarURL
	}
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &XMLCalendarImporter{
		urlTemplate: urlTemplate,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Import downloads year and adds each weekday it lists as a day off to cal.
// Shortened days stay workdays. It returns the number of holidays added.
func (im *XMLCalendarImporter) Import(ctx context.Context, cal *WorkdayCalendar, year int) (int, error) {
	yearData, err := im.downloadYear(ctx, year)
	if err != nil {
		return 0, err
	}

	added := 0
	for i := range yearData.Months {
		xmlMonth := &yearData.Months[i]
		if xmlMonth.Month < 1 || xmlMonth.Month > 12 {
			im.logger.Warn("Skipping invalid month",
				zap.Int("year", year),
				zap.Int("month", xmlMonth.Month))
			continue
		}

		for _, date := range im.parseDaysOff(year, time.Month(xmlMonth.Month), xmlMonth.Days) {
			if dateutil.IsWeekend(date) {
				continue
			}
			cal.SetHoliday(date)
			added++
		}
	}

	im.logger.Info("Production calendar imported",
		zap.Int("year", year),
		zap.Int("holidays", added))

	return added, nil
}

// downloadYear downloads entire year from xmlcalendar.ru
func (im *XMLCalendarImporter) downloadYear(ctx context.Context, year int) (*xmlCalendarYear, error) {
	url := strings.ReplaceAll(im.urlTemplate, "{year}", strconv.Itoa(year))

	im.logger.Info("Downloading production calendar",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar request: %w", err)
	}

	resp, err := im.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}

	var yearData xmlCalendarYear
	if err := json.NewDecoder(resp.Body).Decode(&yearData); err != nil {
		return nil, fmt.Errorf("failed to parse calendar JSON: %w", err)
	}

	if yearData.Year != 0 && yearData.Year != year {
		return nil, fmt.Errorf("calendar data is for year %d, requested %d", yearData.Year, year)
	}

	return &yearData, nil
}

// parseDaysOff parses xmlcalendar.ru compact format
// Format: "1*,2,3+,4,8,9,15,16,22,23,29,30"
// * = shortened day, + = transferred day, others = weekends/holidays
func (im *XMLCalendarImporter) parseDaysOff(year int, month time.Month, days string) []time.Time {
	if days == "" {
		return nil
	}

	daysInMonth := dateutil.DaysIn(year, month)
	var daysOff []time.Time

	for _, part := range strings.Split(days, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Shortened days are working days
		if strings.HasSuffix(part, "*") {
			continue
		}

		dayStr := strings.TrimSuffix(part, "+")
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 1 || day > daysInMonth {
			im.logger.Warn("Failed to parse day number",
				zap.Int("year", year),
				zap.Int("month", int(month)),
				zap.String("part", part))
			continue
		}

		daysOff = append(daysOff, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	}

	return daysOff
}
