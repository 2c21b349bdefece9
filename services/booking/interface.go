package booking

import (
	"context"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/services/notification"

	"github.com/hibiken/asynq"
)

// BookingService creates and manages patient appointments on top of the
// availability engine.
type BookingService interface {
	// CreateBooking books a slot. It re-resolves availability for the
	// requested date, verifies the slot is actually offered, and performs
	// a conditional insert; a lost race surfaces as CodeSlotTaken so the
	// caller can re-resolve and prompt again.
	CreateBooking(ctx context.Context, in models.BookingInput, now time.Time) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
	SetStatus(ctx context.Context, id, status string) (*models.Booking, error)
	ListForDate(ctx context.Context, locationName, date string) ([]models.Booking, error)
	// ExpireStalePending marks pending bookings older than maxAge as
	// deleted so their slots free up. Run from the background worker.
	ExpireStalePending(ctx context.Context, maxAge time.Duration, now time.Time) (int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Availability availability.AvailabilityService
	Notifier     notification.Notifier
	TaskClient   *asynq.Client // nil disables reminder scheduling
	ReminderLead time.Duration // how long before the appointment the reminder fires
}
