package rules

import (
	"errors"

	"github.com/haeum-studio/booking-service/internal/domain"
)

// OrDefaults substitutes the built-in defaults when the singleton row is
// missing, so a fresh database answers reads before the first operator
// edit. Every rules read goes through this one fallback; any other error,
// including a malformed row, passes through untouched.
func OrDefaults(rules *domain.AvailabilityRules, err error) (*domain.AvailabilityRules, error) {
	if errors.Is(err, ErrRulesNotFound) {
		return domain.DefaultRules(), nil
	}
	return rules, err
}
