package models

import (
	"fmt"
	"time"

	"github.com/haeum-studio/booking-service/internal/domain"
	"github.com/haeum-studio/booking-service/pkg/types"
)

// UpdateRulesRequest is the full replacement rule set submitted by an operator
type UpdateRulesRequest struct {
	AvailableTimes  []string `json:"availableTimes"`
	BlockedDates    []string `json:"blockedDates"`
	BlockedWeekdays []int    `json:"blockedWeekdays"`
	MinAdvanceHours int      `json:"minAdvanceHours"`
	MaxAdvanceDays  int      `json:"maxAdvanceDays"`
	SlotDuration    int      `json:"slotDurationMinutes"`
}

// ToDomain parses the wire shape into domain rules. Times are "HH:MM",
// dates "YYYY-MM-DD" interpreted in KST.
func (r *UpdateRulesRequest) ToDomain() (*domain.AvailabilityRules, error) {
	rules := &domain.AvailabilityRules{
		MinAdvanceHours: r.MinAdvanceHours,
		MaxAdvanceDays:  r.MaxAdvanceDays,
		SlotDuration:    r.SlotDuration,
	}

	for _, s := range r.AvailableTimes {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("available time %q: %w", s, err)
		}
		rules.AvailableTimes = append(rules.AvailableTimes, t)
	}

	for _, s := range r.BlockedDates {
		date, err := time.ParseInLocation(domain.DateFormat, s, domain.KST)
		if err != nil {
			return nil, fmt.Errorf("blocked date %q: expected YYYY-MM-DD", s)
		}
		rules.BlockedDates = append(rules.BlockedDates, date)
	}

	for _, d := range r.BlockedWeekdays {
		rules.BlockedWeekdays = append(rules.BlockedWeekdays, time.Weekday(d))
	}

	return rules, nil
}

// RulesResponse is the rule set as returned to operators
type RulesResponse struct {
	AvailableTimes  []string  `json:"availableTimes"`
	BlockedDates    []string  `json:"blockedDates"`
	BlockedWeekdays []int     `json:"blockedWeekdays"`
	MinAdvanceHours int       `json:"minAdvanceHours"`
	MaxAdvanceDays  int       `json:"maxAdvanceDays"`
	SlotDuration    int       `json:"slotDurationMinutes"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomain converts domain rules into the wire DTO
func FromDomain(rules *domain.AvailabilityRules) *RulesResponse {
	resp := &RulesResponse{
		AvailableTimes:  make([]string, 0, len(rules.AvailableTimes)),
		BlockedDates:    make([]string, 0, len(rules.BlockedDates)),
		BlockedWeekdays: make([]int, 0, len(rules.BlockedWeekdays)),
		MinAdvanceHours: rules.MinAdvanceHours,
		MaxAdvanceDays:  rules.MaxAdvanceDays,
		SlotDuration:    rules.SlotDuration,
		UpdatedAt:       rules.UpdatedAt,
	}

	for _, t := range rules.AvailableTimes {
		resp.AvailableTimes = append(resp.AvailableTimes, t.String())
	}
	for _, d := range rules.BlockedDates {
		resp.BlockedDates = append(resp.BlockedDates, d.Format(domain.DateFormat))
	}
	for _, d := range rules.BlockedWeekdays {
		resp.BlockedWeekdays = append(resp.BlockedWeekdays, int(d))
	}

	return resp
}
