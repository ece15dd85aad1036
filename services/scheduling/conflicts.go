// File: services/scheduling/conflicts.go
package scheduling

import (
	"context"
	"fmt"

	"stylebook/models"
)

// BusyIntervals loads the intervals that block slots for a provider on a
// date: every PENDING or CONFIRMED booking, projected to minute windows.
// REJECTED and CANCELLED bookings never block a slot. A store failure
// propagates untouched; availability is never computed from partial
// conflict data.
func (s *DefaultAvailabilityService) BusyIntervals(ctx context.Context, kind models.ProviderKind, providerID, date string) ([]models.BusyInterval, error) {
	bookings, err := s.Bookings.GetByProviderAndDate(ctx, kind, providerID, date, models.ActiveStatuses())
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s %s on %s: %w", kind, providerID, date, err)
	}

	intervals := make([]models.BusyInterval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, models.BusyInterval{Start: b.Start, End: b.End})
	}
	return intervals, nil
}
