package update_rules

import (
	"context"

	"github.com/haeum-studio/booking-service/internal/service/rules/models"
)

type RulesService interface {
	Update(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
