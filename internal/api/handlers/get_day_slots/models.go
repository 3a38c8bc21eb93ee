package get_day_slots

import (
	"github.com/haeum-studio/booking-service/internal/domain"
	getDaySlots "github.com/haeum-studio/booking-service/internal/usecase/get_day_slots"
)

// SlotPayload is one time slot on the wire
type SlotPayload struct {
	Time    string `json:"time"` // "14:00"
	EndTime string `json:"endTime"`
	Status  string `json:"status"`
}

// DaySlotsResponse is the day view on the wire
type DaySlotsResponse struct {
	Date       string        `json:"date"` // "2025-03-10"
	DateStatus string        `json:"dateStatus"`
	Slots      []SlotPayload `json:"slots"`
}

// FromUseCaseResponse converts the usecase result into the wire shape
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	out := &DaySlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		DateStatus: string(resp.DateStatus),
		Slots:      make([]SlotPayload, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotPayload{
			Time:    slot.StartTime.String(),
			EndTime: slot.EndTime.String(),
			Status:  string(slot.Status),
		})
	}

	return out
}
