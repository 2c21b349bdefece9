package models

import "testing"

func validBlock() BlockRule {
	return BlockRule{
		ID:           "b1",
		LocationName: "Downtown Clinic",
		StartDate:    "2025-06-11",
		EndDate:      "2025-06-12",
		Kind:         BlockFullDay,
		Reason:       "public holiday",
	}
}

func TestBlockRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BlockRule)
		wantErr bool
	}{
		{"valid full day", func(b *BlockRule) {}, false},
		{"valid time range", func(b *BlockRule) {
			b.Kind = BlockTimeRange
			b.Start, b.End = 600, 660
		}, false},
		{"missing location", func(b *BlockRule) { b.LocationName = "" }, true},
		{"bad start date", func(b *BlockRule) { b.StartDate = "tomorrow" }, true},
		{"end date before start date", func(b *BlockRule) { b.EndDate = "2025-06-01" }, true},
		{"time range without times", func(b *BlockRule) { b.Kind = BlockTimeRange }, true},
		{"time range start after end", func(b *BlockRule) {
			b.Kind = BlockTimeRange
			b.Start, b.End = 660, 600
		}, true},
		{"unknown kind", func(b *BlockRule) { b.Kind = "weekly" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := validBlock()
			tc.mutate(&b)
			err := b.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestBlockRuleCoversDate(t *testing.T) {
	b := validBlock()
	for date, want := range map[string]bool{
		"2025-06-10": false,
		"2025-06-11": true,
		"2025-06-12": true,
		"2025-06-13": false,
	} {
		if got := b.CoversDate(date); got != want {
			t.Errorf("CoversDate(%s) = %v, want %v", date, got, want)
		}
	}
}

func TestBlockRuleExcludesSlot(t *testing.T) {
	b := validBlock()
	b.Kind = BlockTimeRange
	b.Start, b.End = 600, 660 // [10:00, 11:00)

	for slot, want := range map[TimeOfDay]bool{
		599: false,
		600: true,
		659: true,
		660: false, // end boundary is exclusive
	} {
		if got := b.ExcludesSlot(slot); got != want {
			t.Errorf("ExcludesSlot(%d) = %v, want %v", slot, got, want)
		}
	}

	// Full-day blocks never exclude individual slots; they empty the day
	// earlier in the pipeline.
	full := validBlock()
	if full.ExcludesSlot(600) {
		t.Error("full-day block should not match slot exclusion")
	}
}
