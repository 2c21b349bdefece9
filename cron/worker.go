package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"clinicbook/config"
	"clinicbook/models"
	"clinicbook/services/booking"
	"clinicbook/services/notification"
	"clinicbook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitBookingWorker runs the async worker in background. It dispatches
// scheduled appointment reminders and periodically expires stale pending
// bookings so their slots free up.
func InitBookingWorker(bookingSvc booking.BookingService, notifSvc notification.Notifier) *asynq.Client {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bookingSvc, notifSvc))
	mux.HandleFunc(tasks.TypeExpirePending, handleExpireTask(bookingSvc))

	client := asynq.NewClient(redisOpts)

	go runExpirySweep(client)

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	return client
}

func handleReminderTask(bookingSvc booking.BookingService, notifSvc notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		current, err := findBooking(ctx, bookingSvc, p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] Booking %s not found, skipping reminder", p.BookingID)
			return nil
		}
		// Cancelled or deleted bookings get no reminder.
		if !current.IsActive() {
			return nil
		}

		if err := notifSvc.NotifyBookingReminder(ctx, current); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder for %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

func findBooking(ctx context.Context, bookingSvc booking.BookingService, bookingID string) (*models.Booking, error) {
	svc, ok := bookingSvc.(*booking.DefaultBookingService)
	if !ok {
		return nil, asynq.SkipRetry
	}
	return svc.Repo.GetByID(ctx, bookingID)
}

func handleExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		maxAge := time.Duration(config.AppConfig.PendingExpiryHours) * time.Hour
		_, err := bookingSvc.ExpireStalePending(ctx, maxAge, time.Now())
		return err
	}
}

// runExpirySweep enqueues the expiry task on a fixed interval.
func runExpirySweep(client *asynq.Client) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := client.Enqueue(tasks.NewExpirePendingTask()); err != nil {
			log.Printf("[BookingWorker] Failed to enqueue expiry sweep: %v", err)
		}
	}
}
