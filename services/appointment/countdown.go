// File: services/appointment/countdown.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylebook/models"
	"stylebook/services/lifecycle"

	"go.mongodb.org/mongo-driver/mongo"
)

// CountdownFor returns a booking together with its live countdown. The
// rejection check runs first so an expired countdown and a stale PENDING
// status are never reported together.
func (s *DefaultAppointmentService) CountdownFor(ctx context.Context, actor Actor, id string, now time.Time) (*models.EnrichedBooking, *models.Countdown, error) {
	enriched, err := s.GetByID(ctx, actor, id, now)
	if err != nil {
		return nil, nil, err
	}
	return enriched, enriched.Countdown, nil
}

// CheckRejection exposes the single-booking rejection check directly.
func (s *DefaultAppointmentService) CheckRejection(ctx context.Context, id string, now time.Time) (bool, error) {
	rejected, err := s.Lifecycle.CheckOne(ctx, id, now)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, ErrNotFound
		}
		return false, err
	}
	return rejected, nil
}

// CountdownStats aggregates countdown state over a client's PENDING
// bookings: totals, how many expire within the warning window, how many
// are critical (under 6h) and the average time remaining in milliseconds.
func (s *DefaultAppointmentService) CountdownStats(ctx context.Context, userID string, now time.Time) (models.CountdownStats, error) {
	bookings, err := s.Bookings.GetByClientID(ctx, userID)
	if err != nil {
		return models.CountdownStats{}, fmt.Errorf("failed to load bookings for user %s: %w", userID, err)
	}

	var stats models.CountdownStats
	var totalRemaining time.Duration
	for i := range bookings {
		b := &bookings[i]
		if b.Status != models.StatusPending {
			continue
		}
		remaining := lifecycle.TimeRemaining(b, now, s.Policy)
		stats.Total++
		totalRemaining += remaining
		if remaining < s.Policy.ExpireSoonWindow {
			stats.ExpiringSoon++
		}
		if remaining < criticalWindow {
			stats.Critical++
		}
	}
	if stats.Total > 0 {
		stats.AverageTimeRemaining = (totalRemaining / time.Duration(stats.Total)).Milliseconds()
	}
	return stats, nil
}

// criticalWindow flags countdowns that are about to expire.
const criticalWindow = 6 * time.Hour

// RejectPast triggers an immediate full sweep, outside the timer schedule.
func (s *DefaultAppointmentService) RejectPast(ctx context.Context, now time.Time) (models.SweepResult, error) {
	return s.Lifecycle.Sweep(ctx, now)
}
