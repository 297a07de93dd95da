package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		n        int
		expected time.Time
	}{
		{
			name:     "next day drops time of day",
			input:    time.Date(2024, 8, 12, 10, 0, 0, 0, time.UTC),
			n:        1,
			expected: time.Date(2024, 8, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "previous day across month",
			input:    time.Date(2004, 6, 1, 9, 0, 0, 0, time.UTC),
			n:        -1,
			expected: time.Date(2004, 5, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap day",
			input:    time.Date(2024, 2, 28, 23, 59, 0, 0, time.UTC),
			n:        1,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddDays(tt.input, tt.n)

			if !result.Equal(tt.expected) {
				t.Errorf("AddDays(%v, %d) = %v, want %v", tt.input, tt.n, result, tt.expected)
			}
		})
	}
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	input := time.Date(2004, 5, 24, 13, 47, 21, 500, time.UTC)

	offset := TimeOfDay(input)
	want := 13*time.Hour + 47*time.Minute + 21*time.Second + 500

	if offset != want {
		t.Fatalf("TimeOfDay(%v) = %v, want %v", input, offset, want)
	}

	if result := AtTimeOfDay(input, offset); !result.Equal(input) {
		t.Errorf("AtTimeOfDay(%v) = %v, want %v", offset, result, input)
	}
}

func TestTimeOfDay_DSTDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// Clocks jump from 02:00 to 03:00 on 2024-03-31
	input := time.Date(2024, 3, 31, 10, 0, 0, 0, loc)

	if got := TimeOfDay(input); got != 10*time.Hour {
		t.Errorf("TimeOfDay(%v) = %v, want 10h", input, got)
	}

	result := AtTimeOfDay(input, 16*time.Hour)
	if result.Hour() != 16 || result.Minute() != 0 {
		t.Errorf("AtTimeOfDay(16h) = %v, want 16:00 wall clock", result)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Errorf("DaysIn(2024, February) = %d, want 29", got)
	}
	if got := DaysIn(2023, time.February); got != 28 {
		t.Errorf("DaysIn(2023, February) = %d, want 28", got)
	}
	if got := DaysIn(2004, time.May); got != 31 {
		t.Errorf("DaysIn(2004, May) = %d, want 31", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2004-05-27",
			time.Date(2004, 5, 27, 0, 0, 0, 0, time.Local),
			false,
		},
		{
			"Dotted format DD.MM.YYYY",
			"27.05.2004",
			time.Date(2004, 5, 27, 0, 0, 0, 0, time.Local),
			false,
		},
		{
			"Garbage",
			"next tuesday",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"minute precision", "2004-05-24 18:05", time.Date(2004, 5, 24, 18, 5, 0, 0, time.Local), false},
		{"seconds", "2004-05-24 18:05:30", time.Date(2004, 5, 24, 18, 5, 30, 0, time.Local), false},
		{"T separator", "2004-05-24T07:03", time.Date(2004, 5, 24, 7, 3, 0, 0, time.Local), false},
		{"date only", "2024-08-12", time.Date(2024, 8, 12, 0, 0, 0, 0, time.Local), false},
		{"invalid", "24/05/2004", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDateTime(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateTime(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDateTime(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseMonthDay(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMonth int
		wantDay   int
		wantErr   bool
	}{
		{"zero padded", "05-17", 5, 17, false},
		{"single digits", "5-7", 5, 7, false},
		{"leap day", "02-29", 2, 29, false},
		{"out of range left to caller", "02-30", 2, 30, false},
		{"full date", "05-17-2004", 0, 0, true},
		{"trailing text", "05-17x", 0, 0, true},
		{"year first", "2004-05", 0, 0, true},
		{"month name", "May 17", 0, 0, true},
		{"missing day", "05-", 0, 0, true},
		{"signed day", "05-+7", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, day, err := ParseMonthDay(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonthDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if !tt.wantErr && (month != tt.wantMonth || day != tt.wantDay) {
				t.Errorf("ParseMonthDay(%q) = (%d, %d), want (%d, %d)",
					tt.input, month, day, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{"afternoon", "16:30", 16, 30, false},
		{"single digit hour", "8:00", 8, 0, false},
		{"out of range left to caller", "25:00", 25, 0, false},
		{"meridiem suffix", "8:00pm", 0, 0, true},
		{"trailing text", "16:00junk", 0, 0, true},
		{"seconds", "16:00:00", 0, 0, true},
		{"negative minutes", "8:-1", 0, 0, true},
		{"dot separator", "16.00", 0, 0, true},
		{"word", "noon", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if !tt.wantErr && (hour != tt.wantHour || minute != tt.wantMinute) {
				t.Errorf("ParseClock(%q) = (%d, %d), want (%d, %d)",
					tt.input, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}
