package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given id
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when the active-slot uniqueness constraint
	// rejects a write: another non-cancelled booking already holds the
	// (date, time) pair.
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery is returned when SQL query construction fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
