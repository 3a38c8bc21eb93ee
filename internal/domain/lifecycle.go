package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus is returned when a string is not a known booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned for a status change the lifecycle does not allow
	ErrInvalidTransition = errors.New("invalid status transition")
)

// allowedTransitions is the booking lifecycle:
//
//	pending   -> confirmed | cancelled
//	confirmed -> cancelled
//	cancelled -> pending (operator restore; the slot must be re-validated)
//
// There is no terminal state: a mis-cancellation is reversible.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {StatusPending},
}

// CanTransition reports whether the lifecycle allows from -> to
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition unless from -> to is allowed
func ValidateTransition(from, to BookingStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// ParseStatus converts a string into a BookingStatus with validation
func ParseStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// IsRestore reports whether the transition re-activates a cancelled booking,
// which requires the slot to be free again.
func IsRestore(from, to BookingStatus) bool {
	return from == StatusCancelled && to == StatusPending
}
