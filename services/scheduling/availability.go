// File: services/scheduling/availability.go
package scheduling

import (
	"context"

	"stylebook/models"
	"stylebook/utils"

	"go.uber.org/zap"
)

// GetAvailableSlots resolves the provider's working window for the date,
// subtracts existing bookings and returns the bookable start times.
// Available=false means the provider is closed that day; an open day on
// which nothing fits still reports Available=true with an empty slot list.
func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, kind models.ProviderKind, providerID, date string, durationMinutes int) (models.AvailableSlotsResult, error) {
	logger := utils.GetLogger()

	schedule, workingDays, err := s.ResolveSchedule(ctx, kind, providerID, date)
	if err != nil {
		return models.AvailableSlotsResult{}, err
	}
	if schedule == nil {
		return models.AvailableSlotsResult{
			Available:   false,
			WorkingDays: workingDays,
			Slots:       []string{},
		}, nil
	}

	busy, err := s.BusyIntervals(ctx, kind, providerID, date)
	if err != nil {
		return models.AvailableSlotsResult{}, err
	}

	step := s.StepMinutes
	if step <= 0 {
		step = DefaultStepMinutes
	}

	starts := GenerateSlots(schedule, busy, durationMinutes, step)
	slots := make([]string, 0, len(starts))
	for _, m := range starts {
		slots = append(slots, utils.FormatClock(m))
	}

	logger.Debug("computed available slots",
		zap.String("providerKind", string(kind)),
		zap.String("providerID", providerID),
		zap.String("date", date),
		zap.Int("busy", len(busy)),
		zap.Int("slots", len(slots)))

	return models.AvailableSlotsResult{
		Available:   true,
		WorkingDays: workingDays,
		Slots:       slots,
	}, nil
}
