// File: services/appointment/appointment.go
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylebook/models"
	"stylebook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Create books a PENDING appointment. The end time comes from the service
// catalog, and the requested window is checked against existing active
// bookings before the write. The check and the insert are not atomic, so a
// duplicate can still slip through under heavy contention; the provider
// resolves those by confirming one and rejecting the other.
func (s *DefaultAppointmentService) Create(ctx context.Context, actor Actor, req CreateRequest, now time.Time) (*models.Booking, error) {
	if (req.StylistID == "") == (req.SalonID == "") {
		return nil, fmt.Errorf("%w: exactly one of stylistId or salonId is required", ErrValidation)
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	start, err := utils.ParseClock(req.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	svc, err := s.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: unknown service %s", ErrValidation, req.ServiceID)
		}
		return nil, fmt.Errorf("failed to load service %s: %w", req.ServiceID, err)
	}
	end := start + svc.Duration

	b := &models.Booking{
		UserID:    actor.UserID,
		StylistID: req.StylistID,
		SalonID:   req.SalonID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Start:     start,
		End:       end,
		Status:    models.StatusPending,
	}

	kind, providerID := b.ProviderRef()
	existing, err := s.Bookings.GetByProviderAndDate(ctx, kind, providerID, req.Date, models.ActiveStatuses())
	if err != nil {
		return nil, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	for _, other := range existing {
		iv := models.BusyInterval{Start: other.Start, End: other.End}
		if iv.Overlaps(start, end) {
			return nil, ErrSlotTaken
		}
	}

	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("userID", actor.UserID),
		zap.String("date", b.Date),
		zap.Int("start", b.Start))
	return b, nil
}

// GetByID runs the single-booking rejection check before the read, so a
// client never sees a stale PENDING state, then returns the enriched view.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, actor Actor, id string, now time.Time) (*models.EnrichedBooking, error) {
	if _, err := s.Lifecycle.CheckOne(ctx, id, now); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !s.canView(ctx, actor, b) {
		return nil, ErrForbidden
	}

	enriched := s.enrich(ctx, b, now)
	return &enriched, nil
}

// ListForClient sweeps first so every booking returned already reflects
// time-based rejections, then enriches the client's bookings.
func (s *DefaultAppointmentService) ListForClient(ctx context.Context, userID string, now time.Time) ([]models.EnrichedBooking, error) {
	if _, err := s.Lifecycle.Sweep(ctx, now); err != nil {
		utils.GetLogger().Warn("pre-read sweep failed", zap.Error(err))
	}

	bookings, err := s.Bookings.GetByClientID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for user %s: %w", userID, err)
	}
	return s.enrichAll(ctx, bookings, now), nil
}

// ListForStylist returns the bookings addressed to a stylist's user
// account, sweep-first like the client listing.
func (s *DefaultAppointmentService) ListForStylist(ctx context.Context, stylistUserID string, now time.Time) ([]models.EnrichedBooking, error) {
	if _, err := s.Lifecycle.Sweep(ctx, now); err != nil {
		utils.GetLogger().Warn("pre-read sweep failed", zap.Error(err))
	}

	bookings, err := s.Bookings.GetByStylistID(ctx, stylistUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for stylist %s: %w", stylistUserID, err)
	}
	return s.enrichAll(ctx, bookings, now), nil
}

// ListForSalon returns the bookings addressed to a salon. Only the salon's
// owner or an admin may list them.
func (s *DefaultAppointmentService) ListForSalon(ctx context.Context, actor Actor, salonID string, now time.Time) ([]models.EnrichedBooking, error) {
	sa, err := s.Salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load salon %s: %w", salonID, err)
	}
	if !actor.IsAdmin() && actor.UserID != sa.OwnerID {
		return nil, ErrForbidden
	}

	if _, err := s.Lifecycle.Sweep(ctx, now); err != nil {
		utils.GetLogger().Warn("pre-read sweep failed", zap.Error(err))
	}

	bookings, err := s.Bookings.GetBySalonID(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for salon %s: %w", salonID, err)
	}
	return s.enrichAll(ctx, bookings, now), nil
}

// UpdateStatus applies a manual status transition. The rejection check runs
// first: a provider cannot confirm a booking the clock has already
// rejected. Clients may only cancel their own bookings; the booked stylist
// or the owner of the booked salon confirms, rejects or completes; admins
// act on anything. The write itself is conditional on the booking still
// being active, so a sweep that lands in between wins.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, actor Actor, id string, raw string, now time.Time) (*models.Booking, error) {
	status := models.NormalizeStatus(raw)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, raw)
	}

	rejected, err := s.Lifecycle.CheckOne(ctx, id, now)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rejected {
		return nil, fmt.Errorf("%w: booking was rejected automatically", ErrInvalidStatus)
	}

	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.authorizeTransition(ctx, actor, b, status); err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: booking is already %s", ErrInvalidStatus, b.Status)
	}
	if !legalTransition(b.Status, status) {
		return nil, fmt.Errorf("%w: cannot go from %s to %s", ErrInvalidStatus, b.Status, status)
	}

	updated, err := s.Bookings.UpdateStatusIfActive(ctx, id, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// The booking left the active set between the read and the
			// write, usually because a sweep rejected it.
			return nil, fmt.Errorf("%w: booking is no longer active", ErrInvalidStatus)
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return updated, nil
}

// legalTransition encodes the manual status graph: confirmation and
// rejection answer a PENDING request, completion requires a prior
// confirmation, and cancellation stays open while the booking is active.
func legalTransition(from, to models.BookingStatus) bool {
	switch from {
	case models.StatusPending:
		return to == models.StatusConfirmed || to == models.StatusRejected || to == models.StatusCancelled
	case models.StatusConfirmed:
		return to == models.StatusCompleted || to == models.StatusRejected || to == models.StatusCancelled
	}
	return false
}

func (s *DefaultAppointmentService) authorizeTransition(ctx context.Context, actor Actor, b *models.Booking, status models.BookingStatus) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.UserID == b.UserID {
		// Clients only ever cancel.
		if status != models.StatusCancelled {
			return fmt.Errorf("%w: clients may only cancel", ErrForbidden)
		}
		return nil
	}
	if s.isProvider(ctx, actor, b) {
		switch status {
		case models.StatusConfirmed, models.StatusRejected, models.StatusCompleted:
			return nil
		}
		return fmt.Errorf("%w: providers may confirm, reject or complete", ErrForbidden)
	}
	return ErrForbidden
}

// Delete removes a booking record entirely. Owner or admin only.
func (s *DefaultAppointmentService) Delete(ctx context.Context, actor Actor, id string) error {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if !actor.IsAdmin() && actor.UserID != b.UserID {
		return ErrForbidden
	}
	return s.Bookings.Delete(ctx, id)
}

func (s *DefaultAppointmentService) canView(ctx context.Context, actor Actor, b *models.Booking) bool {
	return actor.IsAdmin() || actor.UserID == b.UserID || s.isProvider(ctx, actor, b)
}

// isProvider reports whether the actor is the booked provider. Stylist
// bookings reference the stylist's user account directly; salon bookings
// are resolved through the salon directory to its owner.
func (s *DefaultAppointmentService) isProvider(ctx context.Context, actor Actor, b *models.Booking) bool {
	switch kind, providerID := b.ProviderRef(); kind {
	case models.KindStylist:
		return providerID != "" && actor.UserID == providerID
	case models.KindSalon:
		if providerID == "" {
			return false
		}
		sa, err := s.Salons.GetByID(ctx, providerID)
		if err != nil {
			utils.GetLogger().Debug("salon lookup failed during authorization",
				zap.String("salonID", providerID), zap.Error(err))
			return false
		}
		return actor.UserID == sa.OwnerID
	}
	return false
}
