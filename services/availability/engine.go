package availability

import (
	"sort"
	"time"

	"clinicbook/models"
)

// SlotTimes expands one availability rule into its ordered slot start
// times. Starting at the rule's opening time it emits a start, then
// advances by duration+buffer until the next start would reach closing
// time. Only the start is compared against the closing time: a last slot
// that runs past closing is accepted on purpose.
func SlotTimes(rule models.AvailabilityRule) []models.TimeOfDay {
	stride := models.TimeOfDay(rule.DurationMinutes + rule.BufferMinutes)
	if stride <= 0 {
		return nil
	}
	var times []models.TimeOfDay
	for t := rule.Start; t < rule.End; t += stride {
		times = append(times, t)
	}
	return times
}

// ApplicableRules selects the rules covering (location, date). Location
// matching is exact.
func ApplicableRules(rules []models.AvailabilityRule, locationName, date string) []models.AvailabilityRule {
	var applicable []models.AvailabilityRule
	for _, r := range rules {
		if r.LocationName != locationName {
			continue
		}
		if r.AppliesOn(date) {
			applicable = append(applicable, r)
		}
	}
	return applicable
}

// unionSlotTimes generates each rule independently and unions the results
// by de-duplicating identical start times. Rules are never merged into a
// wider interval; each keeps its own duration and buffer.
func unionSlotTimes(rules []models.AvailabilityRule) []models.TimeOfDay {
	seen := make(map[models.TimeOfDay]bool)
	var times []models.TimeOfDay
	for _, r := range rules {
		for _, t := range SlotTimes(r) {
			if !seen[t] {
				seen[t] = true
				times = append(times, t)
			}
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return times
}

// fullDayBlock returns the first fullDay block covering (location, date),
// or nil. First match wins for the reason text.
func fullDayBlock(blocks []models.BlockRule, locationName, date string) *models.BlockRule {
	for i := range blocks {
		b := &blocks[i]
		if b.Kind == models.BlockFullDay && b.LocationName == locationName && b.CoversDate(date) {
			return b
		}
	}
	return nil
}

// applyTimeRangeBlocks removes every slot start falling inside any
// matching timeRange block. All matching blocks apply cumulatively.
func applyTimeRangeBlocks(times []models.TimeOfDay, blocks []models.BlockRule, locationName, date string) []models.TimeOfDay {
	var active []models.BlockRule
	for _, b := range blocks {
		if b.Kind == models.BlockTimeRange && b.LocationName == locationName && b.CoversDate(date) {
			active = append(active, b)
		}
	}
	if len(active) == 0 {
		return times
	}
	kept := times[:0]
	for _, t := range times {
		excluded := false
		for _, b := range active {
			if b.ExcludesSlot(t) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, t)
		}
	}
	return kept
}

// applyBookings removes slots occupied by an active booking, and, when the
// date is today, slots whose start is not strictly in the future.
func applyBookings(times []models.TimeOfDay, bookings []models.Booking, locationName, date string, now time.Time) []models.TimeOfDay {
	taken := make(map[models.TimeOfDay]bool)
	for i := range bookings {
		b := &bookings[i]
		if b.LocationName == locationName && b.Date == date && b.IsActive() {
			taken[b.Time] = true
		}
	}
	today := models.DateOf(now)
	cutoff := models.MinutesOfDay(now)

	kept := times[:0]
	for _, t := range times {
		if taken[t] {
			continue
		}
		if date == today && t <= cutoff {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// Resolve computes the bookable slot set for (location, date) from a
// consistent snapshot of rules, blocks and bookings. It is a pure
// function: no clock reads, no I/O, safe for concurrent use.
func Resolve(
	rules []models.AvailabilityRule,
	blocks []models.BlockRule,
	bookings []models.Booking,
	locationName, date string,
	now time.Time,
) models.AvailabilityResult {
	if b := fullDayBlock(blocks, locationName, date); b != nil {
		return models.AvailabilityResult{
			Slots:  []models.Slot{},
			Status: models.AvailabilityDateBlocked,
			Reason: b.Reason,
		}
	}

	applicable := ApplicableRules(rules, locationName, date)
	if len(applicable) == 0 {
		return models.AvailabilityResult{
			Slots:  []models.Slot{},
			Status: models.NoScheduleConfigured,
			Reason: "no schedule configured for this location and date",
		}
	}

	times := unionSlotTimes(applicable)
	hadSlots := len(times) > 0

	times = applyTimeRangeBlocks(times, blocks, locationName, date)
	times = applyBookings(times, bookings, locationName, date, now)

	if len(times) == 0 {
		if hadSlots {
			return models.AvailabilityResult{
				Slots:  []models.Slot{},
				Status: models.AvailabilityAllBlocked,
				Reason: "all slots for this date are blocked, booked or past",
			}
		}
		// The configured window is shorter than one duration+buffer unit.
		return models.AvailabilityResult{
			Slots:  []models.Slot{},
			Status: models.AvailabilityAllBlocked,
			Reason: "the configured schedule yields no bookable slots",
		}
	}

	slots := make([]models.Slot, 0, len(times))
	for _, t := range times {
		slots = append(slots, models.NewSlot(t))
	}
	return models.AvailabilityResult{Slots: slots, Status: models.AvailabilityOK}
}
