package booking

import "fmt"

const (
	CodeSlotTaken       = "slotTaken"
	CodeSlotUnavailable = "slotUnavailable"
	CodeNotFound        = "bookingNotFound"
	CodeInvalidInput    = "invalidInput"
	CodeInvalidStatus   = "invalidStatus"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBookingError(code, msg string) error {
	return &BookingError{Code: code, Message: msg}
}
