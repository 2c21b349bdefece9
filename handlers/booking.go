package handlers

import (
	"net/http"
	"time"

	"clinicbook/models"
	"clinicbook/services/booking"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves slot booking and booking management.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// bookingErrorStatus maps service error codes to HTTP statuses.
func bookingErrorStatus(code string) int {
	switch code {
	case booking.CodeInvalidInput, booking.CodeInvalidStatus:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeSlotTaken, booking.CodeSlotUnavailable:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), input, time.Now())
	if err != nil {
		if be, ok := err.(*booking.BookingError); ok {
			c.JSON(bookingErrorStatus(be.Code), gin.H{"error": be.Message, "code": be.Code})
			return
		}
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID in path"})
		return
	}

	cancelled, err := h.Service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		if be, ok := err.(*booking.BookingError); ok {
			c.JSON(bookingErrorStatus(be.Code), gin.H{"error": be.Message, "code": be.Code})
			return
		}
		logger.Error("Failed to cancel booking", zap.String("bookingID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": cancelled})
}

// UpdateBookingStatusHandler handles PUT /api/admin/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid status in request body"})
		return
	}

	updated, err := h.Service.SetStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		if be, ok := err.(*booking.BookingError); ok {
			c.JSON(bookingErrorStatus(be.Code), gin.H{"error": be.Message, "code": be.Code})
			return
		}
		logger.Error("Failed to update booking status", zap.String("bookingID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// ListBookingsHandler handles GET /api/admin/bookings?location=&date=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	location := c.Query("location")
	date := c.Query("date")
	if location == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location and date query parameters are required"})
		return
	}

	bookings, err := h.Service.ListForDate(c.Request.Context(), location, date)
	if err != nil {
		if be, ok := err.(*booking.BookingError); ok {
			c.JSON(bookingErrorStatus(be.Code), gin.H{"error": be.Message, "code": be.Code})
			return
		}
		logger.Error("Failed to list bookings", zap.String("location", location), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
