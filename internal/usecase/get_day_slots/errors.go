package get_day_slots

import "errors"

var (
	// ErrInvalidInput is returned for a malformed date value
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal is returned for unexpected usecase failures
	ErrInternal = errors.New("get_day_slots: internal error")
)
