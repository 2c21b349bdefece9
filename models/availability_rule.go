package models

import (
	"fmt"
	"time"
)

// AvailabilityRule is a configured window during which a location accepts
// appointments. With RecurrenceDays empty the rule covers the continuous
// date range [StartDate, EndDate]; with RecurrenceDays set it repeats on
// those weekdays, indefinitely when EndDate is empty.
type AvailabilityRule struct {
	ID              string         `bson:"id" json:"id"`
	LocationName    string         `bson:"locationName" json:"locationName"`
	Start           TimeOfDay      `bson:"start" json:"start"` // minutes from midnight
	End             TimeOfDay      `bson:"end" json:"end"`
	DurationMinutes int            `bson:"durationMinutes" json:"durationMinutes"`
	BufferMinutes   int            `bson:"bufferMinutes" json:"bufferMinutes"`
	StartDate       string         `bson:"startDate" json:"startDate"`                 // "2006-01-02"
	EndDate         string         `bson:"endDate,omitempty" json:"endDate,omitempty"` // empty = open-ended (recurring rules only)
	RecurrenceDays  []time.Weekday `bson:"recurrenceDays,omitempty" json:"recurrenceDays,omitempty"`
	CreatedAt       time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsRecurring reports whether the rule repeats weekly.
func (r *AvailabilityRule) IsRecurring() bool {
	return len(r.RecurrenceDays) > 0
}

// Validate rejects malformed rules before they reach storage. A rule that
// passes here never produces an error inside the resolver.
func (r *AvailabilityRule) Validate() error {
	if r.LocationName == "" {
		return fmt.Errorf("locationName is required")
	}
	if !r.Start.Valid() || !r.End.Valid() {
		return fmt.Errorf("start and end must be valid times of day")
	}
	if r.Start >= r.End {
		return fmt.Errorf("start time %s must be before end time %s", r.Start, r.End)
	}
	if r.DurationMinutes <= 0 {
		return fmt.Errorf("durationMinutes must be positive")
	}
	if r.BufferMinutes < 0 {
		return fmt.Errorf("bufferMinutes must not be negative")
	}
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return err
	}
	if r.EndDate == "" {
		if !r.IsRecurring() {
			return fmt.Errorf("endDate is required for non-recurring rules")
		}
	} else {
		end, err := ParseDate(r.EndDate)
		if err != nil {
			return err
		}
		if end.Before(start) {
			return fmt.Errorf("endDate %s precedes startDate %s", r.EndDate, r.StartDate)
		}
	}
	for _, wd := range r.RecurrenceDays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday %d in recurrenceDays", wd)
		}
	}
	return nil
}

// recursOn reports whether the weekday is in the recurrence set.
func (r *AvailabilityRule) recursOn(wd time.Weekday) bool {
	for _, d := range r.RecurrenceDays {
		if d == wd {
			return true
		}
	}
	return false
}

// AppliesOn reports whether the rule covers the given date. Location
// matching is the caller's concern. ISO date strings compare
// lexicographically, so no parsing is needed for the range checks.
func (r *AvailabilityRule) AppliesOn(date string) bool {
	if date < r.StartDate {
		return false
	}
	if !r.IsRecurring() {
		return date <= r.EndDate
	}
	if r.EndDate != "" && date > r.EndDate {
		return false
	}
	return r.recursOn(WeekdayOf(date))
}
