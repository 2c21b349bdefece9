package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	"clinicbook/models"
	"clinicbook/services/tasks"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) CreateBooking(ctx context.Context, in models.BookingInput, now time.Time) (*models.Booking, error) {
	logger := utils.GetLogger()

	slotTime, err := in.Validate()
	if err != nil {
		return nil, newBookingError(CodeInvalidInput, err.Error())
	}

	// Re-resolve availability so a slot that was blocked, booked or has
	// slipped into the past since the caller last looked is rejected.
	result, err := s.Availability.GetAvailableSlots(ctx, in.LocationName, in.Date, now)
	if err != nil {
		return nil, err
	}
	if !slotOffered(result, slotTime) {
		reason := result.Reason
		if reason == "" {
			reason = fmt.Sprintf("slot %s is not available on %s", slotTime, in.Date)
		}
		return nil, newBookingError(CodeSlotUnavailable, reason)
	}

	booking := &models.Booking{
		LocationName: in.LocationName,
		Date:         in.Date,
		Time:         slotTime,
		Status:       models.BookingPending,
		PatientName:  in.PatientName,
		PatientPhone: in.PatientPhone,
		PatientEmail: in.PatientEmail,
		Notes:        in.Notes,
	}
	if err := s.Repo.TryCreate(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, newBookingError(CodeSlotTaken, "this slot was just booked by someone else, please pick another")
		}
		return nil, err
	}

	s.Availability.InvalidateLocation(ctx, in.LocationName)

	if err := s.Notifier.NotifyBookingCreated(ctx, booking); err != nil {
		logger.Warn("failed to send booking notification", zap.String("bookingID", booking.ID), zap.Error(err))
	}
	s.scheduleReminder(booking)

	return booking, nil
}

// slotOffered checks the resolved slot list for an exact start-time match.
func slotOffered(result models.AvailabilityResult, t models.TimeOfDay) bool {
	if result.Status != models.AvailabilityOK {
		return false
	}
	for _, slot := range result.Slots {
		if slot.Time == t {
			return true
		}
	}
	return false
}

// scheduleReminder enqueues the reminder task to fire before the
// appointment. Reminders in the past are skipped, not fired immediately.
func (s *DefaultBookingService) scheduleReminder(booking *models.Booking) {
	if s.TaskClient == nil {
		return
	}
	logger := utils.GetLogger()

	day, err := models.ParseDate(booking.Date)
	if err != nil {
		return
	}
	fireAt := day.Add(time.Duration(booking.Time) * time.Minute).Add(-s.ReminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(booking.ID, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.setStatus(ctx, id, models.BookingCancelled)
	if err != nil {
		return nil, err
	}
	if err := s.Notifier.NotifyBookingCancelled(ctx, booking); err != nil {
		utils.GetLogger().Warn("failed to send cancellation notification", zap.String("bookingID", id), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultBookingService) SetStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, newBookingError(CodeInvalidStatus, fmt.Sprintf("unknown booking status %q", status))
	}
	return s.setStatus(ctx, id, status)
}

func (s *DefaultBookingService) setStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newBookingError(CodeNotFound, fmt.Sprintf("booking %s not found", id))
		}
		return nil, err
	}
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Availability.InvalidateLocation(ctx, booking.LocationName)
	return booking, nil
}

func (s *DefaultBookingService) ListForDate(ctx context.Context, locationName, date string) ([]models.Booking, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, newBookingError(CodeInvalidInput, err.Error())
	}
	return s.Repo.ListByLocationAndDate(ctx, locationName, date)
}

func (s *DefaultBookingService) ExpireStalePending(ctx context.Context, maxAge time.Duration, now time.Time) (int, error) {
	logger := utils.GetLogger()

	stale, err := s.Repo.ListStalePending(ctx, now.Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to list stale pending bookings: %w", err)
	}

	expired := 0
	for i := range stale {
		b := &stale[i]
		if err := s.Repo.UpdateStatus(ctx, b.ID, models.BookingDeleted); err != nil {
			logger.Warn("failed to expire stale booking", zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		s.Availability.InvalidateLocation(ctx, b.LocationName)
		expired++
	}
	if expired > 0 {
		logger.Info("expired stale pending bookings", zap.Int("count", expired))
	}
	return expired, nil
}
