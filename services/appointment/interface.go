// File: services/appointment/interface.go
package appointment

import (
	"context"
	"errors"
	"time"

	bookingRepo "stylebook/database/repository/booking"
	salonRepo "stylebook/database/repository/salon"
	serviceRepo "stylebook/database/repository/service"
	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/models"
	"stylebook/services/lifecycle"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound      = errors.New("appointment not found")
	ErrForbidden     = errors.New("not allowed for this appointment")
	ErrInvalidStatus = errors.New("invalid status transition")
	ErrSlotTaken     = errors.New("the requested slot is no longer available")
	ErrValidation    = errors.New("invalid appointment request")
)

// CreateRequest is the inbound shape for booking an appointment. Start
// arrives as a wall-clock "HH:MM" string; the end time is derived from the
// service's duration, never supplied by the client.
type CreateRequest struct {
	StylistID string `json:"stylistId"`
	SalonID   string `json:"salonId"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Start     string `json:"start" binding:"required"`
}

// Actor identifies who is performing an operation, resolved from the
// auth token by the middleware.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool   { return a.Role == "admin" }
func (a Actor) IsStylist() bool { return a.Role == "stylist" }

// AppointmentService is the application surface over the booking store:
// creation with conflict checking, lifecycle-guarded reads and status
// changes, countdowns and the manual sweep.
type AppointmentService interface {
	Create(ctx context.Context, actor Actor, req CreateRequest, now time.Time) (*models.Booking, error)
	GetByID(ctx context.Context, actor Actor, id string, now time.Time) (*models.EnrichedBooking, error)
	ListForClient(ctx context.Context, userID string, now time.Time) ([]models.EnrichedBooking, error)
	ListForStylist(ctx context.Context, stylistUserID string, now time.Time) ([]models.EnrichedBooking, error)
	ListForSalon(ctx context.Context, actor Actor, salonID string, now time.Time) ([]models.EnrichedBooking, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, raw string, now time.Time) (*models.Booking, error)
	Delete(ctx context.Context, actor Actor, id string) error

	CountdownFor(ctx context.Context, actor Actor, id string, now time.Time) (*models.EnrichedBooking, *models.Countdown, error)
	CheckRejection(ctx context.Context, id string, now time.Time) (bool, error)
	CountdownStats(ctx context.Context, userID string, now time.Time) (models.CountdownStats, error)
	RejectPast(ctx context.Context, now time.Time) (models.SweepResult, error)
}

// DefaultAppointmentService is the production implementation. Cache is
// optional; when nil, enriched reads always hit the directories.
type DefaultAppointmentService struct {
	Bookings  bookingRepo.BookingRepository
	Services  serviceRepo.ServiceRepository
	Stylists  stylistRepo.StylistRepository
	Salons    salonRepo.SalonRepository
	Lifecycle lifecycle.LifecycleService
	Policy    lifecycle.Policy
	Cache     SummaryCache
}
