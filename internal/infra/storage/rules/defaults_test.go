package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeum-studio/booking-service/internal/domain"
)

func TestOrDefaults(t *testing.T) {
	t.Run("missing row yields defaults", func(t *testing.T) {
		rules, err := OrDefaults(nil, ErrRulesNotFound)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultRules(), rules)
	})

	t.Run("stored rules pass through", func(t *testing.T) {
		stored := domain.DefaultRules()
		stored.MinAdvanceHours = 48

		rules, err := OrDefaults(stored, nil)

		require.NoError(t, err)
		assert.Equal(t, stored, rules)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		scanErr := errors.New("scan failed")

		_, err := OrDefaults(nil, scanErr)

		assert.Equal(t, scanErr, err)
	})

	t.Run("malformed rules are not defaulted", func(t *testing.T) {
		_, err := OrDefaults(nil, ErrMalformedRules)

		assert.ErrorIs(t, err, ErrMalformedRules)
	})
}
