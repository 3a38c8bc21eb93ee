package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/haeum-studio/booking-service/internal/domain"
)

// BookingRepository is the booking store surface the operator service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionManager runs restore's check-and-write atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the levelled printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
