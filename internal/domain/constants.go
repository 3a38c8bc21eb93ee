package domain

import "time"

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// KST is the business timezone. Every date and wall-clock time in the
// system is interpreted in it; Korea does not observe DST, so a fixed
// offset is exact.
var KST = time.FixedZone("KST", 9*60*60)

// Default availability rule values
const (
	DefaultSlotDurationMinutes = 60
	DefaultMinAdvanceHours     = 24
	DefaultMaxAdvanceDays      = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours
	MinAdvanceHoursLimit   = 720 // 30 days, upper bound for minAdvanceHours
	MaxAdvanceDaysLimit    = 365 // 1 year

	MaxCustomerNameLength = 100
	MaxEmailLength        = 254
	MaxPhoneLength        = 30
	MaxCompanyLength      = 150
	MaxHandleLength       = 100
	MaxServiceLength      = 50
	MaxNotesLength        = 1000
)

// Today truncates now to its calendar day in KST
func Today(now time.Time) time.Time {
	return DateOf(now.In(KST))
}

// DateOf strips the time of day, keeping the calendar date in t's location.
// Used to normalize DATE columns scanned as UTC midnight back into KST.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, KST)
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
