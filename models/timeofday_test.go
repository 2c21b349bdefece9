package models

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:35", 575, false},
		{"23:59", 1439, false},
		{"7:05", 425, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(575).String(); got != "09:35" {
		t.Errorf("String() = %q, want 09:35", got)
	}
	if got := TimeOfDay(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want 00:00", got)
	}
}

func TestTimeOfDayLabel(t *testing.T) {
	tests := []struct {
		t    TimeOfDay
		want string
	}{
		{0, "12:00 AM"},
		{575, "9:35 AM"},
		{720, "12:00 PM"},
		{780, "1:00 PM"},
		{1439, "11:59 PM"},
	}
	for _, tc := range tests {
		if got := tc.t.Label(); got != tc.want {
			t.Errorf("Label(%d) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestMinutesOfDay(t *testing.T) {
	now := time.Date(2025, 6, 11, 9, 35, 42, 0, time.UTC)
	if got := MinutesOfDay(now); got != 575 {
		t.Errorf("MinutesOfDay() = %d, want 575", got)
	}
	if got := DateOf(now); got != "2025-06-11" {
		t.Errorf("DateOf() = %q, want 2025-06-11", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-06-11"); err != nil {
		t.Errorf("ParseDate valid: %v", err)
	}
	for _, bad := range []string{"2025-13-01", "11/06/2025", "2025-6-1", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestWeekdayOf(t *testing.T) {
	if got := WeekdayOf("2025-06-11"); got != time.Wednesday {
		t.Errorf("WeekdayOf = %s, want Wednesday", got)
	}
}
