package notification

import (
	"context"

	"clinicbook/models"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// Notifier is the outbound notification port. Delivery channels (email,
// SMS, WhatsApp, push) live outside this service; the portal only decides
// when a notification is due and hands it over.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *models.Booking) error
	NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error
	NotifyBookingReminder(ctx context.Context, booking *models.Booking) error
}

// LogNotifier is the default Notifier: it records the event and does
// nothing else. Swap in a real delivery adapter at wiring time.
type LogNotifier struct{}

func (LogNotifier) NotifyBookingCreated(_ context.Context, booking *models.Booking) error {
	utils.GetLogger().Info("booking created notification",
		zap.String("bookingID", booking.ID),
		zap.String("location", booking.LocationName),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time.String()))
	return nil
}

func (LogNotifier) NotifyBookingCancelled(_ context.Context, booking *models.Booking) error {
	utils.GetLogger().Info("booking cancelled notification",
		zap.String("bookingID", booking.ID))
	return nil
}

func (LogNotifier) NotifyBookingReminder(_ context.Context, booking *models.Booking) error {
	utils.GetLogger().Info("booking reminder notification",
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time.String()))
	return nil
}
