// Package timefmt holds the wire formats used at the API boundary. Clients
// exchange clock times as "hh:mm a" (e.g. "09:15 AM"), dates as "d MMMM yyyy"
// (e.g. "5 March 2025") and day keys as "2006-01-02". Everything internal is
// time.Time in the clinic's location.
package timefmt

import (
	"fmt"
	"time"
)

const (
	// ClockLayout is the 12-hour wall-clock wire format.
	ClockLayout = "03:04 PM"
	// DateLayout is the human-readable date wire format.
	DateLayout = "2 January 2006"
	// DayLayout is the canonical day key used in store documents.
	DayLayout = "2006-01-02"
)

// Clock formats an instant as "09:15 AM".
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// Date formats an instant as "5 March 2025".
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Day formats an instant as a canonical day key, "2025-03-05".
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses a canonical day key in the given location. The result is
// midnight of that day, clinic-local.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", day, err)
	}
	return t, nil
}

// ParseClock parses a wall-clock string like "09:15 AM" onto the given day.
func ParseClock(s string, day time.Time) (time.Time, error) {
	t, err := time.ParseInLocation(ClockLayout, s, day.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
