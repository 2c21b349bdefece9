// File: clinicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/cron"
	"clinicbook/database"
	blockRepoPkg "clinicbook/database/repository/block"
	bookingRepoPkg "clinicbook/database/repository/booking"
	ruleRepoPkg "clinicbook/database/repository/rule"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/availability"
	"clinicbook/services/booking"
	"clinicbook/services/notification"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	ruleRepo := ruleRepoPkg.NewMongoRuleRepo()
	blockRepo := blockRepoPkg.NewMongoBlockRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	if err := ruleRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure rule indexes: %v", err)
	}
	if err := blockRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure block indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Rules:       ruleRepo,
		Blocks:      blockRepo,
		Bookings:    bookingRepo,
		Cache:       utils.GetCacheClient(),
		CacheTTL:    time.Duration(config.AppConfig.AvailabilityCacheTTLSecs) * time.Second,
		HorizonDays: config.AppConfig.RecurrenceHorizonDays,
	}

	notificationService := &notification.LogNotifier{}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Availability: availabilityService,
		Notifier:     notificationService,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
	}

	// The worker handles reminders and the pending-expiry sweep; its client
	// is how the booking service schedules reminders.
	bookingService.TaskClient = cron.InitBookingWorker(bookingService, notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Rules:        handlers.NewRuleHandler(ruleRepo, availabilityService),
		Blocks:       handlers.NewBlockHandler(blockRepo, availabilityService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
