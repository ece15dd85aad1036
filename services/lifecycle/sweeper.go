// File: services/lifecycle/sweeper.go
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"stylebook/models"
	"stylebook/utils"

	"go.uber.org/zap"
)

// Sweep loads every PENDING/CONFIRMED booking across all providers,
// classifies each against now and persists the rejection transition for
// matches. The transition is a conditional store update, so concurrent
// sweeps (timer plus opportunistic pre-read checks) converge on the same
// terminal state; only the writer whose update actually fired counts and
// notifies.
func (s *DefaultLifecycleService) Sweep(ctx context.Context, now time.Time) (models.SweepResult, error) {
	logger := utils.GetLogger()

	bookings, err := s.Repo.ListByStatus(ctx, models.ActiveStatuses())
	if err != nil {
		return models.SweepResult{}, fmt.Errorf("sweep: failed to load active bookings: %w", err)
	}

	result := models.SweepResult{Total: len(bookings)}
	for i := range bookings {
		b := &bookings[i]
		decision := Classify(b, now, s.Policy)
		if !decision.ShouldReject {
			continue
		}

		applied, err := s.Repo.MarkRejected(ctx, b.ID, now, decision.Reason)
		if err != nil {
			// Best-effort batch: one failed record must not block the rest.
			logger.Error("sweep: failed to reject booking",
				zap.String("bookingID", b.ID),
				zap.String("reason", decision.Reason),
				zap.Error(err))
			continue
		}
		if !applied {
			// Another writer got there first.
			continue
		}

		result.Rejected++
		switch decision.Reason {
		case ReasonDatePassed:
			result.Reasons.DatePassed++
		case ReasonTimePassed:
			result.Reasons.TimePassed++
		default:
			result.Reasons.Overdue++
		}

		s.notify(ctx, b, decision.Reason)
	}

	logger.Info("sweep completed",
		zap.Int("rejected", result.Rejected),
		zap.Int("total", result.Total),
		zap.Int("datePassed", result.Reasons.DatePassed),
		zap.Int("timePassed", result.Reasons.TimePassed),
		zap.Int("overdue", result.Reasons.Overdue))
	return result, nil
}

// CheckOne classifies a single booking and persists the rejection if it
// matches. Returns whether a transition was applied. Safe to call on
// already-terminal bookings: classification skips them.
func (s *DefaultLifecycleService) CheckOne(ctx context.Context, bookingID string, now time.Time) (bool, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("check: failed to load booking %s: %w", bookingID, err)
	}

	decision := Classify(b, now, s.Policy)
	if !decision.ShouldReject {
		return false, nil
	}

	applied, err := s.Repo.MarkRejected(ctx, bookingID, now, decision.Reason)
	if err != nil {
		return false, fmt.Errorf("check: failed to reject booking %s: %w", bookingID, err)
	}
	if applied {
		s.notify(ctx, b, decision.Reason)
	}
	return applied, nil
}

func (s *DefaultLifecycleService) notify(ctx context.Context, b *models.Booking, reason string) {
	if s.Tasks == nil {
		return
	}
	payload := models.AutoRejectPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		Date:      b.Date,
		StartTime: utils.FormatClock(b.Start),
		Reason:    reason,
	}
	if err := s.Tasks.EnqueueAutoReject(ctx, payload); err != nil {
		utils.GetLogger().Warn("failed to enqueue auto-reject notification",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}
