package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/haeum-studio/booking-service/pkg/types"
)

// ErrInvalidRules is returned when availability rules fail validation
var ErrInvalidRules = errors.New("invalid availability rules")

// AvailabilityRules is the singleton business configuration describing
// which dates and times are eligible for booking. All values are
// wall-clock in KST.
type AvailabilityRules struct {
	AvailableTimes  []types.TimeString // bookable start times per day, chronological, deduplicated
	BlockedDates    []time.Time        // specific dates fully closed
	BlockedWeekdays []time.Weekday     // recurring weekly closures
	MinAdvanceHours int                // slots starting sooner than this are not bookable
	MaxAdvanceDays  int                // dates further out than this are not bookable
	SlotDuration    int                // minutes, used to derive end times

	UpdatedAt time.Time
}

// DefaultRules returns the configuration used to seed a fresh installation
func DefaultRules() *AvailabilityRules {
	return &AvailabilityRules{
		AvailableTimes: []types.TimeString{
			"10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00",
		},
		BlockedDates:    []time.Time{},
		BlockedWeekdays: []time.Weekday{time.Sunday},
		MinAdvanceHours: DefaultMinAdvanceHours,
		MaxAdvanceDays:  DefaultMaxAdvanceDays,
		SlotDuration:    DefaultSlotDurationMinutes,
	}
}

// Validate checks every field against the business limits
func (r *AvailabilityRules) Validate() error {
	if len(r.AvailableTimes) == 0 {
		return fmt.Errorf("%w: at least one available time is required", ErrInvalidRules)
	}
	for _, t := range r.AvailableTimes {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: available time: %v", ErrInvalidRules, err)
		}
	}

	for _, d := range r.BlockedWeekdays {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: weekday must be 0-6, got %d", ErrInvalidRules, d)
		}
	}
	if len(r.BlockedWeekdays) == 7 {
		return fmt.Errorf("%w: blocking every weekday leaves nothing bookable", ErrInvalidRules)
	}

	if r.MinAdvanceHours < 0 || r.MinAdvanceHours > MinAdvanceHoursLimit {
		return fmt.Errorf("%w: minAdvanceHours must be between 0 and %d", ErrInvalidRules, MinAdvanceHoursLimit)
	}
	if r.MaxAdvanceDays <= 0 || r.MaxAdvanceDays > MaxAdvanceDaysLimit {
		return fmt.Errorf("%w: maxAdvanceDays must be between 1 and %d", ErrInvalidRules, MaxAdvanceDaysLimit)
	}
	if r.SlotDuration < MinSlotDurationMinutes || r.SlotDuration > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDuration must be between %d and %d minutes",
			ErrInvalidRules, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}

	return nil
}

// Normalize deduplicates and orders the rule sets: available times
// chronological, blocked dates truncated to KST midnight and sorted,
// weekdays sorted. Safe to call repeatedly.
func (r *AvailabilityRules) Normalize() {
	r.AvailableTimes = dedupTimes(r.AvailableTimes)

	dates := make([]time.Time, 0, len(r.BlockedDates))
	seen := make(map[string]struct{}, len(r.BlockedDates))
	for _, d := range r.BlockedDates {
		day := DateOf(d)
		key := day.Format(DateFormat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	r.BlockedDates = dates

	weekdays := make([]time.Weekday, 0, len(r.BlockedWeekdays))
	seenDays := make(map[time.Weekday]struct{}, len(r.BlockedWeekdays))
	for _, d := range r.BlockedWeekdays {
		if _, ok := seenDays[d]; ok {
			continue
		}
		seenDays[d] = struct{}{}
		weekdays = append(weekdays, d)
	}
	sort.Slice(weekdays, func(i, j int) bool { return weekdays[i] < weekdays[j] })
	r.BlockedWeekdays = weekdays
}

// HasTime reports whether t is one of the configured start times
func (r *AvailabilityRules) HasTime(t types.TimeString) bool {
	for _, available := range r.AvailableTimes {
		if available == t {
			return true
		}
	}
	return false
}

// IsDateBlocked reports whether the specific calendar date is closed
func (r *AvailabilityRules) IsDateBlocked(date time.Time) bool {
	for _, blocked := range r.BlockedDates {
		if SameDay(blocked, date) {
			return true
		}
	}
	return false
}

// IsWeekdayBlocked reports whether the date's weekday is a recurring closure
func (r *AvailabilityRules) IsWeekdayBlocked(date time.Time) bool {
	weekday := date.Weekday()
	for _, blocked := range r.BlockedWeekdays {
		if blocked == weekday {
			return true
		}
	}
	return false
}

// SlotEnd derives the end time for a slot starting at start
func (r *AvailabilityRules) SlotEnd(start types.TimeString) (types.TimeString, error) {
	return start.AddMinutes(r.SlotDuration)
}

func dedupTimes(times []types.TimeString) []types.TimeString {
	result := make([]types.TimeString, 0, len(times))
	seen := make(map[types.TimeString]struct{}, len(times))
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IsBefore(result[j]) })
	return result
}
