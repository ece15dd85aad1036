// File: services/lifecycle/countdown.go
package lifecycle

import (
	"time"

	"stylebook/models"
)

// TimeRemaining returns how long the booking has left before automatic
// rejection, floored at zero. Non-increasing as now advances.
func TimeRemaining(b *models.Booking, now time.Time, p Policy) time.Duration {
	remaining := p.ResponseWindow - now.Sub(b.CreatedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CountdownFor builds the countdown projection for a booking. Only
// PENDING bookings carry a countdown; for any other status the result is
// nil. Derived on every read, never persisted.
func CountdownFor(b *models.Booking, now time.Time, p Policy) *models.Countdown {
	if b == nil || b.Status != models.StatusPending {
		return nil
	}

	// Expired mirrors the overdue classification: strictly past the
	// window, so at exactly zero remaining the booking is not expired yet.
	raw := p.ResponseWindow - now.Sub(b.CreatedAt)
	remaining := raw
	if remaining < 0 {
		remaining = 0
	}
	c := &models.Countdown{
		Days:           int(remaining / (24 * time.Hour)),
		Hours:          int(remaining % (24 * time.Hour) / time.Hour),
		Minutes:        int(remaining % time.Hour / time.Minute),
		TotalSeconds:   int64(remaining / time.Second),
		Expired:        raw < 0,
		WillExpireSoon: remaining < p.ExpireSoonWindow,
	}
	return c
}
