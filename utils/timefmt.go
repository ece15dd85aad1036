package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Booking windows and slots are held as minutes from midnight; wall-clock
// strings like "09:30" appear only at the HTTP and store boundary.

// ParseClock converts a "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight to a "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a calendar date in "YYYY-MM-DD" form. The date string is
// the authoritative calendar day; no timezone arithmetic is applied.
func ParseDate(date string) (time.Time, error) {
	return time.Parse("2006-01-02", date)
}

// CombineDateAndMinutes builds the instant for a wall-clock offset on the
// given calendar date, in the supplied location.
func CombineDateAndMinutes(date string, minutes int, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(minutes) * time.Minute), nil
}

// DayName returns the canonical weekday name used in stylist working-hour
// configurations ("Monday" .. "Sunday").
func DayName(d time.Weekday) string {
	return d.String()
}
