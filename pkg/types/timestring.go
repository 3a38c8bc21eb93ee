package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" (24h) format.
// It deliberately carries no date and no timezone: the business
// timezone is applied by the caller when an instant is needed.
type TimeString string

var (
	// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" time
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange is returned when arithmetic on a TimeString leaves the 00:00-23:59 range
	ErrTimeOutOfRange = errors.New("time is out of the 00:00-23:59 range")
)

const timeStringLayout = "15:04"

// NewTimeString builds a TimeString from the wall-clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(parsed.Format(timeStringLayout)), nil
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for an unset TimeString
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return nil
}

// Minutes returns the value as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes.
// Crossing midnight in either direction is an error: a slot never
// spans two business days.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := minutes + m
	if total < 0 || total > 23*60+59 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Zero-padded "HH:MM" strings compare correctly byte-wise.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// OnDate combines the time of day with a calendar date in the date's location
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, minutes/60, minutes%60, 0, 0, date.Location()), nil
}

// Value implements driver.Valuer so TimeString can be written as a plain string column
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner, accepting string, []byte and TIME values
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres TIME columns come back as "HH:MM:SS"; trim the seconds
	if len(s) > len(timeStringLayout) {
		s = s[:len(timeStringLayout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
