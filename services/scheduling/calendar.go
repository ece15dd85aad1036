// File: services/scheduling/calendar.go
package scheduling

import (
	"context"
	"fmt"
	"time"

	"stylebook/models"
	"stylebook/utils"
)

// ResolveSchedule determines the working window for a provider on the
// given calendar date. A nil schedule with a nil error means the provider
// is not configured to work that day ("closed", not an error). The
// returned workingDays list is the provider's configured weekday names,
// used by clients to render a booking calendar.
func (s *DefaultAvailabilityService) ResolveSchedule(ctx context.Context, kind models.ProviderKind, providerID, date string) (*models.DaySchedule, []string, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	switch kind {
	case models.KindStylist:
		// Bookings reference the stylist's owning user account.
		stylist, err := s.Stylists.GetByUserID(ctx, providerID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load stylist %s: %w", providerID, err)
		}
		hours := stylist.WorkingHours
		dayName := utils.DayName(day.Weekday())
		for i, d := range hours.Days {
			if d != dayName {
				continue
			}
			if i >= len(hours.TimeSlots) {
				return nil, nil, fmt.Errorf("stylist %s working hours misconfigured: day %q has no window", providerID, dayName)
			}
			w := hours.TimeSlots[i]
			return &models.DaySchedule{Start: w.Start, End: w.End}, hours.Days, nil
		}
		return nil, hours.Days, nil

	case models.KindSalon:
		salon, err := s.Salons.GetByID(ctx, providerID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load salon %s: %w", providerID, err)
		}
		workingDays := make([]string, 0, len(salon.OpeningHours))
		var schedule *models.DaySchedule
		for _, h := range salon.OpeningHours {
			workingDays = append(workingDays, utils.DayName(time.Weekday(h.Day)))
			if h.Day == int(day.Weekday()) {
				schedule = &models.DaySchedule{Start: h.Start, End: h.End}
			}
		}
		return schedule, workingDays, nil

	default:
		return nil, nil, fmt.Errorf("unknown provider kind %q", kind)
	}
}
