package models

import (
	"fmt"
	"time"
)

// Booking statuses. Only non-cancelled, non-deleted bookings occupy a slot.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingDeleted   = "deleted"
	BookingCompleted = "completed"
	BookingNoShow    = "no-show"
)

// Booking is a patient appointment occupying one slot. Slot identity is
// (locationName, date, time).
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	LocationName string    `bson:"locationName" json:"locationName"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	Time         TimeOfDay `bson:"time" json:"time"` // minutes from midnight
	Status       string    `bson:"status" json:"status"`
	// Active mirrors Status for the partial unique index that makes
	// booking creation race-free; the repository maintains it.
	Active       bool      `bson:"active" json:"-"`
	PatientName  string    `bson:"patientName" json:"patientName"`
	PatientPhone string    `bson:"patientPhone,omitempty" json:"patientPhone,omitempty"`
	PatientEmail string    `bson:"patientEmail,omitempty" json:"patientEmail,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsActive reports whether the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelled && b.Status != BookingDeleted
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled,
		BookingDeleted, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}

// BookingInput is the payload a caller supplies when booking a slot.
type BookingInput struct {
	LocationName string `json:"locationName" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"` // "HH:MM"
	PatientName  string `json:"patientName" binding:"required"`
	PatientPhone string `json:"patientPhone"`
	PatientEmail string `json:"patientEmail"`
	Notes        string `json:"notes"`
}

// Validate checks the payload and returns the parsed slot time.
func (in *BookingInput) Validate() (TimeOfDay, error) {
	if in.LocationName == "" {
		return 0, fmt.Errorf("locationName is required")
	}
	if _, err := ParseDate(in.Date); err != nil {
		return 0, err
	}
	t, err := ParseTimeOfDay(in.Time)
	if err != nil {
		return 0, err
	}
	if in.PatientName == "" {
		return 0, fmt.Errorf("patientName is required")
	}
	return t, nil
}
