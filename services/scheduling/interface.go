// File: services/scheduling/interface.go
package scheduling

import (
	"context"

	bookingRepo "stylebook/database/repository/booking"
	salonRepo "stylebook/database/repository/salon"
	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/models"
)

// AvailabilityService computes bookable start times for a provider on a
// calendar date. Slot generation holds no locks and performs no writes;
// a concurrent booking creation can still win a slot returned here, so
// callers must treat the result as advisory.
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, kind models.ProviderKind, providerID, date string, durationMinutes int) (models.AvailableSlotsResult, error)
}

// DefaultAvailabilityService is the production implementation, backed by
// the provider directory and the booking store.
type DefaultAvailabilityService struct {
	Stylists stylistRepo.StylistRepository
	Salons   salonRepo.SalonRepository
	Bookings bookingRepo.BookingRepository

	// StepMinutes is the wall-clock tick between offered start times.
	// Zero falls back to DefaultStepMinutes.
	StepMinutes int
}

// DefaultStepMinutes is the slot step used when none is configured.
const DefaultStepMinutes = 60
