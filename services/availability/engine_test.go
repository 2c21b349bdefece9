package availability

import (
	"reflect"
	"testing"
	"time"

	"clinicbook/models"
)

func hm(h, m int) models.TimeOfDay {
	return models.TimeOfDay(h*60 + m)
}

func slotStrings(slots []models.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time.String())
	}
	return out
}

func timeStrings(times []models.TimeOfDay) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}

// weekRule is a continuous rule covering the whole test week.
func weekRule(loc string, start, end models.TimeOfDay, duration, buffer int) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:              "r1",
		LocationName:    loc,
		Start:           start,
		End:             end,
		DurationMinutes: duration,
		BufferMinutes:   buffer,
		StartDate:       "2025-06-09",
		EndDate:         "2025-06-15",
	}
}

// The test date 2025-06-11 is a Wednesday. "now" defaults to a different
// day so the today cutoff stays out of the way.
const (
	testDate = "2025-06-11"
	testLoc  = "Downtown Clinic"
)

var otherDay = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSlotTimes(t *testing.T) {
	tests := []struct {
		name string
		rule models.AvailabilityRule
		want []string
	}{
		{
			name: "morning window with buffer",
			rule: weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5),
			want: []string{"09:00", "09:35", "10:10", "10:45", "11:20", "11:55"},
		},
		{
			name: "exact fit without buffer",
			rule: weekRule(testLoc, hm(9, 0), hm(10, 0), 30, 0),
			want: []string{"09:00", "09:30"},
		},
		{
			name: "last slot may run past closing",
			rule: weekRule(testLoc, hm(9, 0), hm(9, 20), 30, 0),
			want: []string{"09:00"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := timeStrings(SlotTimes(tc.rule))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SlotTimes() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSlotTimesFullDayCount(t *testing.T) {
	// 09:00 to 17:00 with 30min appointments and 5min buffer paces slots
	// 35 minutes apart; the 16:35 slot starts before closing and is kept.
	times := SlotTimes(weekRule(testLoc, hm(9, 0), hm(17, 0), 30, 5))
	if len(times) != 14 {
		t.Fatalf("expected 14 slots, got %d: %v", len(times), timeStrings(times))
	}
	if times[0] != hm(9, 0) || times[len(times)-1] != hm(16, 35) {
		t.Errorf("unexpected bounds: first %s last %s", times[0], times[len(times)-1])
	}
}

func TestResolveNoScheduleConfigured(t *testing.T) {
	res := Resolve(nil, nil, nil, testLoc, testDate, otherDay)
	if res.Status != models.NoScheduleConfigured {
		t.Fatalf("status = %s, want %s", res.Status, models.NoScheduleConfigured)
	}
	if len(res.Slots) != 0 || res.Slots == nil {
		t.Errorf("expected empty non-nil slot list, got %#v", res.Slots)
	}
}

func TestResolveOtherLocationRulesIgnored(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule("Northside Clinic", hm(9, 0), hm(12, 0), 30, 5)}
	res := Resolve(rules, nil, nil, testLoc, testDate, otherDay)
	if res.Status != models.NoScheduleConfigured {
		t.Errorf("status = %s, want %s", res.Status, models.NoScheduleConfigured)
	}
}

func TestResolveFullDayBlock(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)}
	blocks := []models.BlockRule{{
		ID:           "b1",
		LocationName: testLoc,
		StartDate:    testDate,
		EndDate:      testDate,
		Kind:         models.BlockFullDay,
		Reason:       "public holiday",
	}}

	res := Resolve(rules, blocks, nil, testLoc, testDate, otherDay)
	if res.Status != models.AvailabilityDateBlocked {
		t.Fatalf("status = %s, want %s", res.Status, models.AvailabilityDateBlocked)
	}
	if res.Reason != "public holiday" {
		t.Errorf("reason = %q, want %q", res.Reason, "public holiday")
	}
	if len(res.Slots) != 0 {
		t.Errorf("expected no slots, got %v", slotStrings(res.Slots))
	}
}

func TestResolveFullDayBlockWinsOverTimeRange(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)}
	blocks := []models.BlockRule{
		{
			ID: "b1", LocationName: testLoc, StartDate: testDate, EndDate: testDate,
			Kind: models.BlockTimeRange, Start: hm(10, 0), End: hm(11, 0), Reason: "staff meeting",
		},
		{
			ID: "b2", LocationName: testLoc, StartDate: testDate, EndDate: testDate,
			Kind: models.BlockFullDay, Reason: "building closed",
		},
	}

	res := Resolve(rules, blocks, nil, testLoc, testDate, otherDay)
	if res.Status != models.AvailabilityDateBlocked || res.Reason != "building closed" {
		t.Errorf("got status %s reason %q, want dateBlocked with full-day reason", res.Status, res.Reason)
	}
}

func TestResolveTimeRangeBlock(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)}
	blocks := []models.BlockRule{{
		ID:           "b1",
		LocationName: testLoc,
		StartDate:    testDate,
		EndDate:      testDate,
		Kind:         models.BlockTimeRange,
		Start:        hm(10, 0),
		End:          hm(11, 0),
		Reason:       "staff training",
	}}

	res := Resolve(rules, blocks, nil, testLoc, testDate, otherDay)
	if res.Status != models.AvailabilityOK {
		t.Fatalf("status = %s, want %s", res.Status, models.AvailabilityOK)
	}
	// 10:10 and 10:45 start inside [10:00, 11:00) and go; a slot starting
	// at exactly 11:00 would stay.
	want := []string{"09:00", "09:35", "11:20", "11:55"}
	if got := slotStrings(res.Slots); !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestResolveTimeRangeBlocksAccumulate(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)}
	blocks := []models.BlockRule{
		{
			ID: "b1", LocationName: testLoc, StartDate: testDate, EndDate: testDate,
			Kind: models.BlockTimeRange, Start: hm(9, 0), End: hm(10, 0),
		},
		{
			ID: "b2", LocationName: testLoc, StartDate: testDate, EndDate: testDate,
			Kind: models.BlockTimeRange, Start: hm(11, 0), End: hm(12, 0),
		},
	}

	res := Resolve(rules, blocks, nil, testLoc, testDate, otherDay)
	want := []string{"10:10", "10:45"}
	if got := slotStrings(res.Slots); !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestResolveActiveBookingRemovesSlot(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)}
	bookings := []models.Booking{
		{ID: "bk1", LocationName: testLoc, Date: testDate, Time: hm(9, 35), Status: models.BookingConfirmed},
		{ID: "bk2", LocationName: testLoc, Date: testDate, Time: hm(10, 10), Status: models.BookingCancelled},
		{ID: "bk3", LocationName: testLoc, Date: "2025-06-12", Time: hm(10, 45), Status: models.BookingConfirmed},
	}

	res := Resolve(rules, nil, bookings, testLoc, testDate, otherDay)
	// The cancelled booking and the other-date booking free their slots.
	want := []string{"09:00", "10:10", "10:45", "11:20", "11:55"}
	if got := slotStrings(res.Slots); !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestResolveTodayPastSlotsExcluded(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)}

	// now is 09:35 on the queried date: the 09:00 slot is past and the
	// 09:35 slot starts exactly now, so both go.
	now := time.Date(2025, 6, 11, 9, 35, 0, 0, time.UTC)
	res := Resolve(rules, nil, nil, testLoc, testDate, now)
	want := []string{"10:10", "10:45", "11:20", "11:55"}
	if got := slotStrings(res.Slots); !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}

	// The same clock on a different queried date removes nothing.
	res = Resolve(rules, nil, nil, testLoc, "2025-06-12", now)
	if got := slotStrings(res.Slots); len(got) != 6 {
		t.Errorf("future date should keep all 6 slots, got %v", got)
	}
}

func TestResolveUnionOfOverlappingRules(t *testing.T) {
	rules := []models.AvailabilityRule{
		weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5),
		{
			ID: "r2", LocationName: testLoc, Start: hm(10, 0), End: hm(12, 0),
			DurationMinutes: 60, BufferMinutes: 0,
			StartDate: "2025-06-09", EndDate: "2025-06-15",
		},
	}

	res := Resolve(rules, nil, nil, testLoc, testDate, otherDay)
	// Each rule generates independently; the sets interleave and 10:00,
	// 11:00 come only from the hour-grid rule.
	want := []string{"09:00", "09:35", "10:00", "10:10", "10:45", "11:00", "11:20", "11:55"}
	if got := slotStrings(res.Slots); !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestResolveDuplicateRulesDeduplicate(t *testing.T) {
	r1 := weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)
	r2 := r1
	r2.ID = "r2"

	single := Resolve([]models.AvailabilityRule{r1}, nil, nil, testLoc, testDate, otherDay)
	double := Resolve([]models.AvailabilityRule{r1, r2}, nil, nil, testLoc, testDate, otherDay)
	if !reflect.DeepEqual(single, double) {
		t.Errorf("duplicate rule changed the result: %v vs %v", slotStrings(single.Slots), slotStrings(double.Slots))
	}
}

func TestResolveDeterministic(t *testing.T) {
	rules := []models.AvailabilityRule{
		weekRule(testLoc, hm(13, 0), hm(15, 0), 30, 0),
		weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5),
	}
	reversed := []models.AvailabilityRule{rules[1], rules[0]}

	a := Resolve(rules, nil, nil, testLoc, testDate, otherDay)
	b := Resolve(reversed, nil, nil, testLoc, testDate, otherDay)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("rule order changed the result: %v vs %v", slotStrings(a.Slots), slotStrings(b.Slots))
	}
	for i := 1; i < len(a.Slots); i++ {
		if a.Slots[i-1].Time >= a.Slots[i].Time {
			t.Fatalf("slots not strictly ascending at %d: %v", i, slotStrings(a.Slots))
		}
	}
}

func TestResolveAllSlotsBlocked(t *testing.T) {
	rules := []models.AvailabilityRule{weekRule(testLoc, hm(9, 0), hm(12, 0), 30, 5)}
	blocks := []models.BlockRule{{
		ID: "b1", LocationName: testLoc, StartDate: testDate, EndDate: testDate,
		Kind: models.BlockTimeRange, Start: hm(9, 0), End: hm(12, 0),
	}}

	res := Resolve(rules, blocks, nil, testLoc, testDate, otherDay)
	if res.Status != models.AvailabilityAllBlocked {
		t.Fatalf("status = %s, want %s", res.Status, models.AvailabilityAllBlocked)
	}
	if res.Reason == "" {
		t.Error("expected a human-readable reason")
	}
}

func TestResolveRecurringRule(t *testing.T) {
	rule := models.AvailabilityRule{
		ID:              "r1",
		LocationName:    testLoc,
		Start:           hm(9, 0),
		End:             hm(12, 0),
		DurationMinutes: 30,
		BufferMinutes:   5,
		StartDate:       "2025-01-01",
		RecurrenceDays:  []time.Weekday{time.Monday, time.Wednesday},
	}
	rules := []models.AvailabilityRule{rule}

	// 2025-06-11 is a Wednesday, 2025-06-10 a Tuesday.
	if res := Resolve(rules, nil, nil, testLoc, testDate, otherDay); res.Status != models.AvailabilityOK {
		t.Errorf("Wednesday: status = %s, want %s", res.Status, models.AvailabilityOK)
	}
	if res := Resolve(rules, nil, nil, testLoc, "2025-06-10", otherDay); res.Status != models.NoScheduleConfigured {
		t.Errorf("Tuesday: status = %s, want %s", res.Status, models.NoScheduleConfigured)
	}
	// Open-ended recurrence has no upper bound.
	if res := Resolve(rules, nil, nil, testLoc, "2031-06-09", otherDay); res.Status != models.AvailabilityOK {
		t.Errorf("far-future Monday: status = %s, want %s", res.Status, models.AvailabilityOK)
	}
	// Dates before the start date never apply.
	if res := Resolve(rules, nil, nil, testLoc, "2024-12-30", otherDay); res.Status != models.NoScheduleConfigured {
		t.Errorf("before start date: status = %s, want %s", res.Status, models.NoScheduleConfigured)
	}
}
