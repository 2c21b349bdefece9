package handlers

import (
	"net/http"
	"time"

	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the bookable slot lookups used by the booking
// form and the admin schedule screens.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailableSlotsHandler handles GET /api/availability?location=&date=.
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	location := c.Query("location")
	date := c.Query("date")
	if location == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location and date query parameters are required"})
		return
	}
	if _, err := models.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The clock is captured once here so the whole resolution sees a
	// single consistent "now".
	result, err := h.Service.GetAvailableSlots(c.Request.Context(), location, date, time.Now())
	if err != nil {
		if _, ok := err.(*availability.ServiceError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to resolve available slots",
			zap.String("location", location), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve available slots"})
		return
	}

	c.JSON(http.StatusOK, result)
}
