// File: services/lifecycle/interface.go
package lifecycle

import (
	"context"
	"time"

	bookingRepo "stylebook/database/repository/booking"
	"stylebook/models"
)

// LifecycleService keeps booking status consistent with the passage of
// time: stale pending requests and bookings whose date or start time has
// passed are moved to REJECTED before any caller sees them.
type LifecycleService interface {
	// Sweep evaluates every PENDING/CONFIRMED booking and persists the
	// rejection transition for matches. Best-effort per record: a single
	// failed update is logged and does not abort the pass.
	Sweep(ctx context.Context, now time.Time) (models.SweepResult, error)

	// CheckOne applies the same classification to a single booking,
	// returning whether a rejection was persisted. Used as a pre-read
	// guard and before honoring provider status changes.
	CheckOne(ctx context.Context, bookingID string, now time.Time) (bool, error)
}

// TaskEnqueuer queues follow-up work (push notifications) for bookings
// the sweeper rejects. May be nil, in which case rejections are silent.
type TaskEnqueuer interface {
	EnqueueAutoReject(ctx context.Context, payload models.AutoRejectPayload) error
}

// DefaultLifecycleService is the production implementation.
type DefaultLifecycleService struct {
	Repo   bookingRepo.BookingRepository
	Tasks  TaskEnqueuer
	Policy Policy
}
