package domain

import (
	"time"

	"github.com/haeum-studio/booking-service/pkg/types"
)

// DateStatus classifies a calendar date for booking purposes
type DateStatus string

const (
	DatePast    DateStatus = "past"
	DateBlocked DateStatus = "blocked"
	DateTooFar  DateStatus = "tooFar"
	DateOpen    DateStatus = "open"
)

// SlotStatus classifies a (date, time) pair
type SlotStatus string

const (
	SlotFree          SlotStatus = "free"
	SlotTaken         SlotStatus = "taken"
	SlotBlocked       SlotStatus = "blocked"
	SlotPast          SlotStatus = "past"
	SlotTooFar        SlotStatus = "tooFar"
	SlotOutsideNotice SlotStatus = "outsideNotice"
)

// SlotView is one time slot with its computed availability state
type SlotView struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
}

// IsBookable reports whether a booking request for this slot would be accepted
func (s *SlotView) IsBookable() bool {
	return s.Status == SlotFree
}

// DaySummary is the per-date aggregate consumed by calendar views
type DaySummary struct {
	Date           time.Time
	Status         DateStatus
	HasFreeSlots   bool // false for fully booked open dates
	PendingCount   int  // bookings awaiting operator confirmation
	ConfirmedCount int
	CancelledCount int // retained for history badges
}
