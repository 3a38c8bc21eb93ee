package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haeum-studio/booking-service/internal/domain"
	rulesRepo "github.com/haeum-studio/booking-service/internal/infra/storage/rules"
	"github.com/haeum-studio/booking-service/internal/service/rules/models"
	"github.com/haeum-studio/booking-service/pkg/types"
)

type mockRulesRepo struct {
	mock.Mock
}

func (m *mockRulesRepo) Get(ctx context.Context) (*domain.AvailabilityRules, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityRules), args.Error(1)
}

func (m *mockRulesRepo) Save(ctx context.Context, rules *domain.AvailabilityRules) (*domain.AvailabilityRules, error) {
	args := m.Called(ctx, rules)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityRules), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdate() *models.UpdateRulesRequest {
	return &models.UpdateRulesRequest{
		AvailableTimes:  []string{"10:00", "11:00", "14:00"},
		BlockedDates:    []string{"2025-05-05"},
		BlockedWeekdays: []int{0},
		MinAdvanceHours: 24,
		MaxAdvanceDays:  60,
		SlotDuration:    60,
	}
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	repo := new(mockRulesRepo)
	repo.On("Get", mock.Anything).Return(nil, rulesRepo.ErrRulesNotFound)

	svc := NewService(repo, nopLogger{})
	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	defaults := domain.DefaultRules()
	assert.Len(t, resp.AvailableTimes, len(defaults.AvailableTimes))
	assert.Equal(t, defaults.MinAdvanceHours, resp.MinAdvanceHours)
}

func TestUpdate_PersistsNormalizedRules(t *testing.T) {
	repo := new(mockRulesRepo)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(r *domain.AvailabilityRules) bool {
		return len(r.AvailableTimes) == 3 && r.AvailableTimes[0] == "10:00"
	})).Return(&domain.AvailabilityRules{
		AvailableTimes:  []types.TimeString{"10:00", "11:00", "14:00"},
		BlockedWeekdays: []time.Weekday{time.Sunday},
		MinAdvanceHours: 24,
		MaxAdvanceDays:  60,
		SlotDuration:    60,
		UpdatedAt:       time.Now(),
	}, nil)

	svc := NewService(repo, nopLogger{})
	resp, err := svc.Update(context.Background(), validUpdate())

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00", "14:00"}, resp.AvailableTimes)
	repo.AssertExpectations(t)
}

func TestUpdate_RejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpdateRulesRequest)
	}{
		{"no available times", func(r *models.UpdateRulesRequest) { r.AvailableTimes = nil }},
		{"malformed time", func(r *models.UpdateRulesRequest) { r.AvailableTimes = []string{"25:00"} }},
		{"malformed date", func(r *models.UpdateRulesRequest) { r.BlockedDates = []string{"05/05/2025"} }},
		{"weekday out of range", func(r *models.UpdateRulesRequest) { r.BlockedWeekdays = []int{7} }},
		{"every weekday blocked", func(r *models.UpdateRulesRequest) { r.BlockedWeekdays = []int{0, 1, 2, 3, 4, 5, 6} }},
		{"negative notice", func(r *models.UpdateRulesRequest) { r.MinAdvanceHours = -1 }},
		{"zero slot duration", func(r *models.UpdateRulesRequest) { r.SlotDuration = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdate()
			tt.mutate(req)

			repo := new(mockRulesRepo)
			svc := NewService(repo, nopLogger{})
			_, err := svc.Update(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidRules)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}
