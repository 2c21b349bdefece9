// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by TryCreate when an active booking already
// occupies the (location, date, time) key. Two concurrent callers can both
// see a slot as free; the unique index makes exactly one insert win.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository persists patient appointments.
type BookingRepository interface {
	// TryCreate inserts the booking only if no active booking exists for
	// its slot key. Returns ErrSlotTaken on a lost race.
	TryCreate(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListActive(ctx context.Context, locationName, date string) ([]models.Booking, error)
	ListByLocationAndDate(ctx context.Context, locationName, date string) ([]models.Booking, error)
	ListStalePending(ctx context.Context, createdBefore time.Time) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("clinicbook")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
