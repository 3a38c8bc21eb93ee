package create_booking

import "errors"

var (
	// ErrDateInPast is returned when the requested date is before today
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateBlocked is returned when the date is closed by rule (specific date or weekday)
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrDateTooFar is returned when the date is beyond the booking horizon
	ErrDateTooFar = errors.New("create_booking: date is too far in the future")

	// ErrOutsideNotice is returned when the slot starts inside the minimum advance window
	ErrOutsideNotice = errors.New("create_booking: slot violates the minimum advance notice")

	// ErrSlotTaken is returned when an active booking already holds the slot
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrTimeNotOffered is returned when the start time is not one of the configured available times
	ErrTimeNotOffered = errors.New("create_booking: time is not an offered slot")

	// ErrInvalidInput is returned for malformed or incomplete request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for unexpected usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)
