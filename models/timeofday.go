package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes from midnight
// (e.g., 420 for 7:00 AM). No timezone is attached; all schedule math
// in the engine happens on local clinic time.
type TimeOfDay int

const MinutesPerDay = 24 * 60

// ParseTimeOfDay parses a "HH:MM" 24-hour string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// Valid reports whether t falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// String renders the 24-hour "HH:MM" form, e.g. "09:35".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Label renders the 12-hour display form shown to patients, e.g. "9:35 AM".
func (t TimeOfDay) Label() string {
	h := int(t) / 60
	m := int(t) % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// MinutesOfDay extracts the TimeOfDay component of an instant.
func MinutesOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

const dateLayout = "2006-01-02"

// ParseDate parses a "2006-01-02" calendar date string.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// DateOf formats an instant as a calendar date string.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}

// WeekdayOf returns the weekday of a date string. The date must have been
// validated beforehand; malformed input yields Sunday.
func WeekdayOf(date string) time.Weekday {
	d, err := ParseDate(date)
	if err != nil {
		return time.Sunday
	}
	return d.Weekday()
}
