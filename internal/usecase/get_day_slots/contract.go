package get_day_slots

import (
	"context"
	"time"

	"github.com/haeum-studio/booking-service/internal/domain"
)

// BookingRepository is the booking store surface this usecase needs
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RulesRepository provides the availability rules singleton
type RulesRepository interface {
	Get(ctx context.Context) (*domain.AvailabilityRules, error)
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
