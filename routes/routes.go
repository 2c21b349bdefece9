package routes

import (
	"net/http"
	"time"

	"clinicbook/handlers"
	"clinicbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public slot lookup used by the
// booking form.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability", hb.Availability.GetAvailableSlotsHandler)
	}
}

// RegisterBookingRoutes registers the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterAdminRoutes sets up the schedule-management endpoints. Login is
// public; everything else requires an admin JWT.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", handlers.AdminLoginHandler)

		// Protected routes (Require Authentication)
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.POST("/rules", hb.Rules.CreateRuleHandler)
		adminGroup.POST("/rules/check", hb.Rules.CheckRuleHandler)
		adminGroup.GET("/rules", hb.Rules.ListRulesHandler)
		adminGroup.PUT("/rules/:id", hb.Rules.UpdateRuleHandler)
		adminGroup.DELETE("/rules/:id", hb.Rules.DeleteRuleHandler)

		adminGroup.POST("/blocks", hb.Blocks.CreateBlockHandler)
		adminGroup.GET("/blocks", hb.Blocks.ListBlocksHandler)
		adminGroup.DELETE("/blocks/:id", hb.Blocks.DeleteBlockHandler)

		adminGroup.GET("/bookings", hb.Booking.ListBookingsHandler)
		adminGroup.PUT("/bookings/:id/status", hb.Booking.UpdateBookingStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "clinicbook is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
