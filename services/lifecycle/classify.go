// File: services/lifecycle/classify.go
package lifecycle

import (
	"fmt"
	"time"

	"stylebook/models"
	"stylebook/utils"
)

// Policy holds the lifecycle timing knobs. These are policy, not
// mechanism, and are loaded from configuration.
type Policy struct {
	// ResponseWindow is how long a provider has to answer a PENDING
	// booking before it is rejected automatically.
	ResponseWindow time.Duration
	// ExpireSoonWindow marks countdowns as "expiring soon" when less
	// time than this remains.
	ExpireSoonWindow time.Duration
}

// DefaultPolicy returns the stock 48h response / 24h warning policy.
func DefaultPolicy() Policy {
	return Policy{
		ResponseWindow:   48 * time.Hour,
		ExpireSoonWindow: 24 * time.Hour,
	}
}

// OverdueReason renders the rejection reason for the configured window.
func (p Policy) OverdueReason() string {
	return fmt.Sprintf("no response within %dh", int(p.ResponseWindow.Hours()))
}

// Rejection reasons for the two time-based causes. The overdue reason
// depends on the policy window and comes from Policy.OverdueReason.
const (
	ReasonDatePassed = "date passed"
	ReasonTimePassed = "time passed"
)

// Decision is the outcome of classifying one booking.
type Decision struct {
	ShouldReject bool
	Reason       string
}

// Classify decides whether a booking must be auto-rejected at the given
// instant. Pure decision function: it never errors and performs no I/O.
// Checks run in strict priority order, first match wins:
//
//  1. the booking's calendar date is strictly before today (date only),
//  2. the date+start instant is strictly before now,
//  3. the booking is still PENDING past the response window.
//
// Only PENDING and CONFIRMED bookings are evaluated; terminal states are
// left untouched, which makes reclassification a no-op.
func Classify(b *models.Booking, now time.Time, p Policy) Decision {
	if b == nil || b.Status.IsTerminal() {
		return Decision{}
	}
	switch b.Status {
	case models.StatusPending, models.StatusConfirmed:
	default:
		return Decision{}
	}

	if datePassed(b.Date, now) {
		return Decision{ShouldReject: true, Reason: ReasonDatePassed}
	}
	if timePassed(b.Date, b.Start, now) {
		return Decision{ShouldReject: true, Reason: ReasonTimePassed}
	}
	if b.Status == models.StatusPending && now.Sub(b.CreatedAt) > p.ResponseWindow {
		return Decision{ShouldReject: true, Reason: p.OverdueReason()}
	}
	return Decision{}
}

// datePassed compares year/month/day only; an unparseable date never
// triggers a rejection on its own.
func datePassed(date string, now time.Time) bool {
	d, err := utils.ParseDate(date)
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	booked := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return booked.Before(today)
}

// timePassed combines the calendar date with the start offset in now's
// location and compares the resulting instant with now.
func timePassed(date string, startMinutes int, now time.Time) bool {
	instant, err := utils.CombineDateAndMinutes(date, startMinutes, now.Location())
	if err != nil {
		return false
	}
	return instant.Before(now)
}
