package rules

import (
	"context"
	"fmt"

	rulesRepo "github.com/haeum-studio/booking-service/internal/infra/storage/rules"
	"github.com/haeum-studio/booking-service/internal/service/rules/models"
)

// Service manages the availability rules singleton
type Service struct {
	rulesRepo RulesRepository
	logger    Logger
}

// NewService creates the rules service
func NewService(rulesRepo RulesRepository, logger Logger) *Service {
	return &Service{
		rulesRepo: rulesRepo,
		logger:    logger,
	}
}

// Get returns the current rules. A missing singleton row falls back to
// the built-in defaults so a fresh deployment is usable before the first
// operator edit.
func (s *Service) Get(ctx context.Context) (*models.RulesResponse, error) {
	rules, err := rulesRepo.OrDefaults(s.rulesRepo.Get(ctx))
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(rules), nil
}

// Update replaces the rule set wholesale. The submitted rules are
// normalized and validated before they are persisted; existing bookings
// are never touched by a rules change.
func (s *Service) Update(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error) {
	rules, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: malformed rules: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	rules.Normalize()
	if err := rules.Validate(); err != nil {
		s.logger.Warn("Update: rules failed validation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	saved, err := s.rulesRepo.Save(ctx, rules)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: rules saved, %d times, %d blocked dates, %d blocked weekdays",
		len(saved.AvailableTimes), len(saved.BlockedDates), len(saved.BlockedWeekdays))

	return models.FromDomain(saved), nil
}
