// Package availability classifies calendar dates and time slots against the
// studio's availability rules and existing bookings. Every function is pure:
// the reference instant is always passed in, never read from the clock.
package availability

import (
	"time"

	"github.com/haeum-studio/booking-service/internal/domain"
	"github.com/haeum-studio/booking-service/pkg/types"
)

// ClassifyDate classifies a calendar date as past, tooFar, blocked or open.
// Past and tooFar are checked before blocked: the calendar dims
// out-of-range dates regardless of closures.
func ClassifyDate(date time.Time, rules *domain.AvailabilityRules, now time.Time) domain.DateStatus {
	day := domain.DateOf(date)
	today := domain.Today(now)

	if day.Before(today) {
		return domain.DatePast
	}

	horizon := today.AddDate(0, 0, rules.MaxAdvanceDays)
	if day.After(horizon) {
		return domain.DateTooFar
	}

	if rules.IsDateBlocked(day) || rules.IsWeekdayBlocked(day) {
		return domain.DateBlocked
	}

	return domain.DateOpen
}

// ClassifySlot classifies a (date, time) pair. A slot on a non-open date
// inherits the date classification; otherwise the advance-notice window and
// existing active bookings are checked per slot, because both depend on
// wall-clock time rather than static configuration.
func ClassifySlot(
	date time.Time,
	start types.TimeString,
	rules *domain.AvailabilityRules,
	bookings []*domain.Booking,
	now time.Time,
) domain.SlotStatus {
	switch ClassifyDate(date, rules, now) {
	case domain.DatePast:
		return domain.SlotPast
	case domain.DateTooFar:
		return domain.SlotTooFar
	case domain.DateBlocked:
		return domain.SlotBlocked
	}

	if outsideNotice(date, start, rules.MinAdvanceHours, now) {
		return domain.SlotOutsideNotice
	}

	if isTaken(date, start, bookings) {
		return domain.SlotTaken
	}

	return domain.SlotFree
}

// BuildDaySchedule computes the slot list for one date by running every
// configured start time through ClassifySlot.
func BuildDaySchedule(
	date time.Time,
	rules *domain.AvailabilityRules,
	bookings []*domain.Booking,
	now time.Time,
) []domain.SlotView {
	slots := make([]domain.SlotView, 0, len(rules.AvailableTimes))

	for _, start := range rules.AvailableTimes {
		end, err := rules.SlotEnd(start)
		if err != nil {
			// A start time too close to midnight for the configured
			// duration cannot form a valid slot; skip it.
			continue
		}

		slots = append(slots, domain.SlotView{
			StartTime: start,
			EndTime:   end,
			Status:    ClassifySlot(date, start, rules, bookings, now),
		})
	}

	return slots
}

// HasFreeSlot reports whether at least one slot on the date is bookable
func HasFreeSlot(
	date time.Time,
	rules *domain.AvailabilityRules,
	bookings []*domain.Booking,
	now time.Time,
) bool {
	for _, start := range rules.AvailableTimes {
		if ClassifySlot(date, start, rules, bookings, now) == domain.SlotFree {
			return true
		}
	}
	return false
}

// BuildCalendar aggregates per-date summaries for every day from first to
// last (inclusive). bookings may span the whole range and may include
// cancelled records; they only contribute to the history counters.
func BuildCalendar(
	first, last time.Time,
	rules *domain.AvailabilityRules,
	bookings []*domain.Booking,
	now time.Time,
) []domain.DaySummary {
	byDate := groupByDate(bookings)

	days := make([]domain.DaySummary, 0, 31)
	for day := domain.DateOf(first); !day.After(domain.DateOf(last)); day = day.AddDate(0, 0, 1) {
		dayBookings := byDate[day.Format(domain.DateFormat)]

		summary := domain.DaySummary{
			Date:   day,
			Status: ClassifyDate(day, rules, now),
		}

		for _, b := range dayBookings {
			switch b.Status {
			case domain.StatusPending:
				summary.PendingCount++
			case domain.StatusConfirmed:
				summary.ConfirmedCount++
			case domain.StatusCancelled:
				summary.CancelledCount++
			}
		}

		if summary.Status == domain.DateOpen {
			summary.HasFreeSlots = HasFreeSlot(day, rules, dayBookings, now)
		}

		days = append(days, summary)
	}

	return days
}

// outsideNotice reports whether the slot's start instant is strictly less
// than minAdvanceHours ahead of now. A slot starting exactly at the notice
// boundary is still bookable.
func outsideNotice(date time.Time, start types.TimeString, minAdvanceHours int, now time.Time) bool {
	startInstant, err := start.OnDate(domain.DateOf(date))
	if err != nil {
		return true
	}

	earliest := now.Add(time.Duration(minAdvanceHours) * time.Hour)
	return startInstant.Before(earliest)
}

// isTaken reports whether an active booking already holds the exact
// (date, time) pair. Cancelled bookings never block a slot.
func isTaken(date time.Time, start types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if domain.SameDay(b.BookingDate, date) && b.StartTime == start {
			return true
		}
	}
	return false
}

func groupByDate(bookings []*domain.Booking) map[string][]*domain.Booking {
	byDate := make(map[string][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		key := b.BookingDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], b)
	}
	return byDate
}
