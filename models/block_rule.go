package models

import (
	"fmt"
	"time"
)

// BlockKind selects how a BlockRule removes availability.
type BlockKind string

const (
	BlockFullDay   BlockKind = "fullDay"
	BlockTimeRange BlockKind = "timeRange"
)

// BlockRule overrides availability for a location across a date range.
// A fullDay block empties every covered date; a timeRange block removes
// only slots starting inside [Start, End).
type BlockRule struct {
	ID           string    `bson:"id" json:"id"`
	LocationName string    `bson:"locationName" json:"locationName"`
	StartDate    string    `bson:"startDate" json:"startDate"` // "2006-01-02"
	EndDate      string    `bson:"endDate" json:"endDate"`
	Kind         BlockKind `bson:"kind" json:"kind"`
	Start        TimeOfDay `bson:"start,omitempty" json:"start,omitempty"` // timeRange only
	End          TimeOfDay `bson:"end,omitempty" json:"end,omitempty"`
	Reason       string    `bson:"reason" json:"reason"` // e.g. "public holiday", "staff training"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Validate rejects malformed block rules at the boundary.
func (b *BlockRule) Validate() error {
	if b.LocationName == "" {
		return fmt.Errorf("locationName is required")
	}
	start, err := ParseDate(b.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseDate(b.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("endDate %s precedes startDate %s", b.EndDate, b.StartDate)
	}
	switch b.Kind {
	case BlockFullDay:
	case BlockTimeRange:
		if !b.Start.Valid() || !b.End.Valid() {
			return fmt.Errorf("start and end must be valid times of day")
		}
		if b.Start >= b.End {
			return fmt.Errorf("start time %s must be before end time %s", b.Start, b.End)
		}
	default:
		return fmt.Errorf("unknown block kind %q", b.Kind)
	}
	return nil
}

// CoversDate reports whether the block's date range contains the date.
func (b *BlockRule) CoversDate(date string) bool {
	return date >= b.StartDate && date <= b.EndDate
}

// ExcludesSlot reports whether a timeRange block removes a slot starting
// at t. The exclusion interval is half-open: [Start, End).
func (b *BlockRule) ExcludesSlot(t TimeOfDay) bool {
	return b.Kind == BlockTimeRange && t >= b.Start && t < b.End
}
