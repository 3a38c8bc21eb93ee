package create_booking

import (
	"context"
	"time"

	"github.com/haeum-studio/booking-service/internal/domain"
)

// BookingRepository is the booking store surface this usecase needs
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RulesRepository provides the availability rules singleton
type RulesRepository interface {
	Get(ctx context.Context) (*domain.AvailabilityRules, error)
}

// TransactionManager runs the check-and-write sequence atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the levelled printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
