package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeSendReminder  = "reminder:send"
	TypeExpirePending = "booking:expire"
)

// ReminderPayload identifies the booking a scheduled reminder refers to.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

// NewReminderTask builds a reminder task scheduled for fireAt.
func NewReminderTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReminderPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewExpirePendingTask builds the periodic sweep that frees slots held by
// stale pending bookings.
func NewExpirePendingTask() *asynq.Task {
	return asynq.NewTask(TypeExpirePending, nil)
}
