package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/haeum-studio/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Customer holds the contact details submitted with a booking request
type Customer struct {
	Name      string
	Email     string
	Phone     string
	Company   *string
	Instagram *string
	TikTok    *string
}

// Booking represents a reservation of one studio time slot
type Booking struct {
	ID          uuid.UUID
	BookingDate time.Time // calendar date in KST, time of day always midnight
	StartTime   types.TimeString
	EndTime     types.TimeString
	Service     string // request category (profile, model, meeting, ...); interpreted by the UI layer
	Customer    Customer
	Status      BookingStatus
	Notes       *string // operator annotation, independent of status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the booking holds its slot.
// Cancelled bookings are kept for history but free the slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeDeleted returns true if the booking may be physically removed.
// Deletion is an explicit operator action permitted only after cancellation.
func (b *Booking) CanBeDeleted() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter narrows operator booking queries
type BookingsFilter struct {
	StartDate        *time.Time     // start of period, inclusive (nil = unbounded)
	EndDate          *time.Time     // end of period, inclusive (nil = unbounded)
	Status           *BookingStatus // exact status (nil = any)
	IncludeCancelled bool           // include cancelled bookings when Status is nil
}

// ActiveOnDate is the filter used by availability checks: every booking
// still holding a slot on the given date.
func ActiveOnDate(date time.Time) BookingsFilter {
	day := DateOf(date)
	return BookingsFilter{
		StartDate: &day,
		EndDate:   &day,
	}
}
