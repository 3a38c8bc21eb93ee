package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/haeum-studio/booking-service/internal/domain"
	"github.com/haeum-studio/booking-service/pkg/types"
)

// Request is the booking creation input after wire-format parsing
type Request struct {
	Date      time.Time        // calendar date in KST (no time of day)
	StartTime types.TimeString // "HH:MM", must match a configured available time
	Service   string           // request category (profile, model, meeting, ...)
	Customer  domain.Customer
	Notes     *string
}

// Response is the created booking
type Response struct {
	ID        uuid.UUID
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Service   string
	Customer  domain.Customer
	Status    string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		Date:      b.BookingDate,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Service:   b.Service,
		Customer:  b.Customer,
		Status:    string(b.Status),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
