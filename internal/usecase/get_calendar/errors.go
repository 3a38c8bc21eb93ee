package get_calendar

import "errors"

var (
	// ErrInvalidInput is returned for a malformed month value
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal is returned for unexpected usecase failures
	ErrInternal = errors.New("get_calendar: internal error")
)
