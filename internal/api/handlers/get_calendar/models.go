package get_calendar

import (
	"github.com/haeum-studio/booking-service/internal/domain"
	getCalendar "github.com/haeum-studio/booking-service/internal/usecase/get_calendar"
)

// DayPayload is one calendar day on the wire
type DayPayload struct {
	Date           string `json:"date"` // "2025-03-10"
	Status         string `json:"status"`
	HasFreeSlots   bool   `json:"hasFreeSlots"`
	PendingCount   int    `json:"pendingCount"`
	ConfirmedCount int    `json:"confirmedCount"`
	CancelledCount int    `json:"cancelledCount"`
}

// CalendarResponse is the month view on the wire
type CalendarResponse struct {
	Month string       `json:"month"` // "2025-03"
	Days  []DayPayload `json:"days"`
}

// FromUseCaseResponse converts the usecase result into the wire shape
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Month: resp.Month.Format(domain.MonthFormat),
		Days:  make([]DayPayload, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		out.Days = append(out.Days, DayPayload{
			Date:           day.Date.Format(domain.DateFormat),
			Status:         string(day.Status),
			HasFreeSlots:   day.HasFreeSlots,
			PendingCount:   day.PendingCount,
			ConfirmedCount: day.ConfirmedCount,
			CancelledCount: day.CancelledCount,
		})
	}

	return out
}
