package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeum-studio/booking-service/pkg/types"
)

func TestDefaultRulesAreValid(t *testing.T) {
	rules := DefaultRules()
	require.NoError(t, rules.Validate())
	assert.True(t, rules.IsWeekdayBlocked(time.Date(2025, time.March, 9, 0, 0, 0, 0, KST))) // Sunday
	assert.False(t, rules.HasTime("13:00"), "lunch break is not offered")
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AvailabilityRules)
	}{
		{"no times", func(r *AvailabilityRules) { r.AvailableTimes = nil }},
		{"bad time", func(r *AvailabilityRules) { r.AvailableTimes = []types.TimeString{"25:99"} }},
		{"weekday out of range", func(r *AvailabilityRules) { r.BlockedWeekdays = []time.Weekday{8} }},
		{"all weekdays blocked", func(r *AvailabilityRules) {
			r.BlockedWeekdays = []time.Weekday{0, 1, 2, 3, 4, 5, 6}
		}},
		{"negative notice", func(r *AvailabilityRules) { r.MinAdvanceHours = -1 }},
		{"notice above limit", func(r *AvailabilityRules) { r.MinAdvanceHours = MinAdvanceHoursLimit + 1 }},
		{"zero horizon", func(r *AvailabilityRules) { r.MaxAdvanceDays = 0 }},
		{"horizon above limit", func(r *AvailabilityRules) { r.MaxAdvanceDays = MaxAdvanceDaysLimit + 1 }},
		{"slot too short", func(r *AvailabilityRules) { r.SlotDuration = MinSlotDurationMinutes - 1 }},
		{"slot too long", func(r *AvailabilityRules) { r.SlotDuration = MaxSlotDurationMinutes + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(rules)
			assert.ErrorIs(t, rules.Validate(), ErrInvalidRules)
		})
	}
}

func TestNormalize(t *testing.T) {
	rules := &AvailabilityRules{
		AvailableTimes: []types.TimeString{"14:00", "10:00", "14:00", "09:00"},
		BlockedDates: []time.Time{
			time.Date(2025, time.May, 5, 18, 30, 0, 0, KST), // time of day is dropped
			time.Date(2025, time.May, 5, 0, 0, 0, 0, KST),
			time.Date(2025, time.March, 1, 0, 0, 0, 0, KST),
		},
		BlockedWeekdays: []time.Weekday{time.Saturday, time.Sunday, time.Saturday},
		MinAdvanceHours: 24,
		MaxAdvanceDays:  60,
		SlotDuration:    60,
	}

	rules.Normalize()

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "14:00"}, rules.AvailableTimes)

	require.Len(t, rules.BlockedDates, 2)
	assert.Equal(t, "2025-03-01", rules.BlockedDates[0].Format(DateFormat))
	assert.Equal(t, "2025-05-05", rules.BlockedDates[1].Format(DateFormat))
	assert.Equal(t, 0, rules.BlockedDates[1].Hour())

	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, rules.BlockedWeekdays)
}

func TestSlotEnd(t *testing.T) {
	rules := DefaultRules()

	end, err := rules.SlotEnd("17:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), end)

	rules.SlotDuration = 480
	_, err = rules.SlotEnd("20:00")
	assert.ErrorIs(t, err, types.ErrTimeOutOfRange)
}
