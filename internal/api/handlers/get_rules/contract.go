package get_rules

import (
	"context"

	"github.com/haeum-studio/booking-service/internal/service/rules/models"
)

type RulesService interface {
	Get(ctx context.Context) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
