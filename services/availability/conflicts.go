package availability

import (
	"time"

	"clinicbook/models"
)

// DetectConflicts checks a candidate rule (new or edited) against the
// existing rule set and returns every day on which both the date windows
// and time windows overlap for the same location. An empty result means
// the candidate may be saved. When editing, the candidate's own stored
// copy is skipped by ID.
//
// Rules without an end date are expanded to horizonDays past their start
// date for enumeration.
func DetectConflicts(candidate models.AvailabilityRule, existing []models.AvailabilityRule, horizonDays int) []models.Conflict {
	conflicts := []models.Conflict{}

	candStart, candEnd, err := ruleDateWindow(candidate, horizonDays)
	if err != nil {
		return conflicts
	}

	for _, other := range existing {
		if other.LocationName != candidate.LocationName {
			continue
		}
		if candidate.ID != "" && other.ID == candidate.ID {
			continue
		}
		// Time windows must intersect at all before dates matter.
		if !(candidate.Start < other.End && candidate.End > other.Start) {
			continue
		}
		otherStart, otherEnd, err := ruleDateWindow(other, horizonDays)
		if err != nil {
			continue
		}
		overlapStart := maxDate(candStart, otherStart)
		overlapEnd := minDate(candEnd, otherEnd)
		if overlapStart.After(overlapEnd) {
			continue
		}

		if candidate.IsRecurring() || other.IsRecurring() {
			// Walk the overlap window day by day; a non-recurring rule
			// applies on every day of its range.
			for d := overlapStart; !d.After(overlapEnd); d = d.AddDate(0, 0, 1) {
				if !appliesOnWeekday(candidate, d.Weekday()) || !appliesOnWeekday(other, d.Weekday()) {
					continue
				}
				conflicts = append(conflicts, models.Conflict{
					Date:         models.DateOf(d),
					Weekday:      d.Weekday(),
					RuleID:       other.ID,
					LocationName: other.LocationName,
					Start:        other.Start,
					End:          other.End,
				})
			}
		} else {
			conflicts = append(conflicts, models.Conflict{
				Date:         models.DateOf(overlapStart),
				Weekday:      overlapStart.Weekday(),
				RuleID:       other.ID,
				LocationName: other.LocationName,
				Start:        other.Start,
				End:          other.End,
			})
		}
	}
	return conflicts
}

// ruleDateWindow resolves the concrete [start, end] dates a rule spans,
// substituting the enumeration horizon for a missing end date.
func ruleDateWindow(r models.AvailabilityRule, horizonDays int) (time.Time, time.Time, error) {
	start, err := models.ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if r.EndDate == "" {
		return start, start.AddDate(0, 0, horizonDays), nil
	}
	end, err := models.ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func appliesOnWeekday(r models.AvailabilityRule, wd time.Weekday) bool {
	if !r.IsRecurring() {
		return true
	}
	for _, d := range r.RecurrenceDays {
		if d == wd {
			return true
		}
	}
	return false
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
