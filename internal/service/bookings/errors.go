package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given id
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidTransition is returned for a status change the lifecycle forbids
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrSlotUnavailable is returned when a restore fails because another
	// booking took the slot after the cancellation
	ErrSlotUnavailable = errors.New("bookings: slot is no longer available")

	// ErrCannotDelete is returned when deletion is requested for a booking
	// that is not cancelled
	ErrCannotDelete = errors.New("bookings: only cancelled bookings can be deleted")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("bookings: internal error")
)
