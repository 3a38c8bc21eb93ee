package rules

import "errors"

var (
	// ErrInvalidRules is returned when a submitted rule set fails validation
	ErrInvalidRules = errors.New("rules: invalid availability rules")

	// ErrInternal is returned for unexpected service failures
	ErrInternal = errors.New("rules: internal error")
)
