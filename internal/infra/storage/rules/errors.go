package rules

import "errors"

var (
	// ErrRulesNotFound is returned when no availability rules row exists
	ErrRulesNotFound = errors.New("rules.repository: availability rules not found")

	// ErrMalformedRules is returned when the persisted row fails validation.
	// Malformed configuration is an error at the storage boundary, never
	// silently patched with defaults.
	ErrMalformedRules = errors.New("rules.repository: persisted availability rules are malformed")

	// ErrBuildQuery is returned when SQL query construction fails
	ErrBuildQuery = errors.New("rules.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails
	ErrExecQuery = errors.New("rules.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("rules.repository: failed to scan row")
)
