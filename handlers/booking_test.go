package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinicbook/models"
	"clinicbook/services/booking"

	"github.com/gin-gonic/gin"
)

type stubBookingService struct {
	err     error
	booking *models.Booking
}

func (s *stubBookingService) CreateBooking(_ context.Context, _ models.BookingInput, _ time.Time) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) CancelBooking(_ context.Context, _ string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) SetStatus(_ context.Context, _, _ string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) ListForDate(_ context.Context, _, _ string) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Booking{}, nil
}

func (s *stubBookingService) ExpireStalePending(_ context.Context, _ time.Duration, _ time.Time) (int, error) {
	return 0, s.err
}

func bookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.POST("/api/bookings/:id/cancel", h.CancelBookingHandler)
	return r
}

const bookingPayload = `{
	"locationName": "Downtown Clinic",
	"date": "2025-06-11",
	"time": "09:35",
	"patientName": "Jordan Smith"
}`

func TestCreateBookingHandler(t *testing.T) {
	stub := &stubBookingService{booking: &models.Booking{
		ID: "bk-1", LocationName: "Downtown Clinic", Date: "2025-06-11",
		Time: 575, Status: models.BookingPending, PatientName: "Jordan Smith",
	}}
	router := bookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingPayload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{booking.CodeInvalidInput, http.StatusBadRequest},
		{booking.CodeInvalidStatus, http.StatusBadRequest},
		{booking.CodeNotFound, http.StatusNotFound},
		{booking.CodeSlotTaken, http.StatusConflict},
		{booking.CodeSlotUnavailable, http.StatusConflict},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			stub := &stubBookingService{err: &booking.BookingError{Code: tc.code, Message: "boom"}}
			router := bookingRouter(stub)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingPayload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestCreateBookingHandlerRejectsBadPayload(t *testing.T) {
	router := bookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"date": "2025-06-11"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCancelBookingHandler(t *testing.T) {
	stub := &stubBookingService{booking: &models.Booking{
		ID: "bk-1", Status: models.BookingCancelled,
	}}
	router := bookingRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bk-1/cancel", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}
