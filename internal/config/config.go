package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/workday-calculator/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Workday           WorkdayConfig     `mapstructure:"workday"`
	Holidays          []string          `mapstructure:"holidays"`           // "YYYY-MM-DD"
	RecurringHolidays []string          `mapstructure:"recurring_holidays"` // "MM-DD"
	HolidayFile       string            `mapstructure:"holiday_file"`
	XMLCalendar       XMLCalendarConfig `mapstructure:"xmlcalendar"`
	Log               LogConfig         `mapstructure:"log"`
}

// WorkdayConfig represents the daily work window
type WorkdayConfig struct {
	Start string `mapstructure:"start"` // HH:MM, 24-hour clock
	Stop  string `mapstructure:"stop"`  // HH:MM, 24-hour clock
}

// XMLCalendarConfig represents production calendar import settings
type XMLCalendarConfig struct {
	URL     string `mapstructure:"url"` // must contain {year}
	Years   []int  `mapstructure:"years"`
	Timeout string `mapstructure:"timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workday-calculator")
		v.AddConfigPath("/etc/workday-calculator")
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("xmlcalendar.timeout", "10s")

	// Read environment variables, e.g. WORKDAY_CALCULATOR_WORKDAY_START
	v.SetEnvPrefix("workday_calculator")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Workday config
	if c.Workday.Start == "" {
		return fmt.Errorf("workday.start is required")
	}
	if c.Workday.Stop == "" {
		return fmt.Errorf("workday.stop is required")
	}
	if _, _, err := dateutil.ParseClock(c.Workday.Start); err != nil {
		return fmt.Errorf("workday.start: %w", err)
	}
	if _, _, err := dateutil.ParseClock(c.Workday.Stop); err != nil {
		return fmt.Errorf("workday.stop: %w", err)
	}

	// Validate holidays
	for _, h := range c.Holidays {
		if _, err := dateutil.ParseDate(h); err != nil {
			return fmt.Errorf("holidays: %w", err)
		}
	}
	for _, h := range c.RecurringHolidays {
		if _, _, err := dateutil.ParseMonthDay(h); err != nil {
			return fmt.Errorf("recurring_holidays: %w", err)
		}
	}

	// Validate XMLCalendar config
	if len(c.XMLCalendar.Years) > 0 && c.XMLCalendar.URL != "" &&
		!strings.Contains(c.XMLCalendar.URL, "{year}") {
		return fmt.Errorf("xmlcalendar.url must contain {year}, got '%s'", c.XMLCalendar.URL)
	}
	if c.XMLCalendar.Timeout != "" {
		if _, err := time.ParseDuration(c.XMLCalendar.Timeout); err != nil {
			return fmt.Errorf("xmlcalendar.timeout: %w", err)
		}
	}
	for _, year := range c.XMLCalendar.Years {
		if year < 1 || year > 9999 {
			return fmt.Errorf("xmlcalendar.years: invalid year %d", year)
		}
	}

	return nil
}

// WorkdayWindow returns the parsed window as start and stop hour/minute
func (c *WorkdayConfig) WorkdayWindow() (startHours, startMinutes, stopHours, stopMinutes int, err error) {
	startHours, startMinutes, err = dateutil.ParseClock(c.Start)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	stopHours, stopMinutes, err = dateutil.ParseClock(c.Stop)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return startHours, startMinutes, stopHours, stopMinutes, nil
}

// GetTimeout returns the production calendar download timeout
func (c *XMLCalendarConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}
