package models

import "time"

// Slot is a bookable start time derived from an availability rule. Slots
// are ephemeral: the engine computes them per request and never stores
// them.
type Slot struct {
	Time  TimeOfDay `json:"time"`  // minutes from midnight
	Label string    `json:"label"` // e.g. "9:35 AM"
}

// NewSlot builds a slot with its display label.
func NewSlot(t TimeOfDay) Slot {
	return Slot{Time: t, Label: t.Label()}
}

// AvailabilityStatus classifies the outcome of a slot resolution so the
// caller can show an accurate message. An empty slot list alone cannot
// distinguish "nothing configured" from "everything blocked".
type AvailabilityStatus string

const (
	AvailabilityOK          AvailabilityStatus = "ok"
	NoScheduleConfigured    AvailabilityStatus = "noScheduleConfigured"
	AvailabilityDateBlocked AvailabilityStatus = "dateBlocked"
	AvailabilityAllBlocked  AvailabilityStatus = "allSlotsBlocked"
)

// AvailabilityResult is the bookable slot set for one (location, date).
type AvailabilityResult struct {
	Slots  []Slot             `json:"slots"`
	Status AvailabilityStatus `json:"status"`
	Reason string             `json:"reason,omitempty"`
}

// Conflict records one day on which a candidate availability rule overlaps
// an existing rule for the same location.
type Conflict struct {
	Date         string       `json:"date"`
	Weekday      time.Weekday `json:"weekday"`
	RuleID       string       `json:"ruleId"`
	LocationName string       `json:"locationName"`
	Start        TimeOfDay    `json:"start"` // conflicting rule's window
	End          TimeOfDay    `json:"end"`
}
