package rules

import (
	"context"

	"github.com/haeum-studio/booking-service/internal/domain"
)

// RulesRepository is the storage surface for the availability rules singleton
type RulesRepository interface {
	Get(ctx context.Context) (*domain.AvailabilityRules, error)
	Save(ctx context.Context, rules *domain.AvailabilityRules) (*domain.AvailabilityRules, error)
}

// Logger is the levelled printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
