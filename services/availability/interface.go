package availability

import (
	"context"
	"time"

	"clinicbook/models"
)

// AvailabilityService resolves bookable slots and vets schedule rules.
// Resolution itself is a pure function of a snapshot (see Resolve); this
// interface owns fetching the snapshot and caching the result.
type AvailabilityService interface {
	// GetAvailableSlots computes the bookable slot set for a location and
	// date. `now` is threaded explicitly so callers (and tests) control
	// the clock.
	GetAvailableSlots(ctx context.Context, locationName, date string, now time.Time) (models.AvailabilityResult, error)

	// CheckRuleConflicts runs the conflict detector for a candidate rule
	// against the stored rules for its location, skipping the candidate's
	// own ID when editing.
	CheckRuleConflicts(ctx context.Context, candidate models.AvailabilityRule) ([]models.Conflict, error)

	// InvalidateLocation drops cached slot sets for a location after a
	// rule, block or booking write.
	InvalidateLocation(ctx context.Context, locationName string)
}
