// File: services/appointment/enrich.go
package appointment

import (
	"context"
	"encoding/json"
	"time"

	"stylebook/models"
	"stylebook/services/lifecycle"
	"stylebook/utils"

	"go.uber.org/zap"
)

// summaryTTL bounds how stale a cached directory summary may get.
const summaryTTL = 5 * time.Minute

// enrich attaches the service and provider summaries plus the countdown.
// Lookups are best effort: a missing catalog entry degrades the view, it
// never fails the read.
func (s *DefaultAppointmentService) enrich(ctx context.Context, b *models.Booking, now time.Time) models.EnrichedBooking {
	e := models.EnrichedBooking{Booking: *b}

	if svc, err := s.Services.GetByID(ctx, b.ServiceID); err == nil {
		e.Service = &models.ServiceSummary{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
			Duration:    svc.Duration,
			Category:    svc.Category,
			ImageURL:    svc.ImageURL,
		}
	} else {
		utils.GetLogger().Debug("enrich: service lookup failed",
			zap.String("serviceID", b.ServiceID), zap.Error(err))
	}

	switch kind, providerID := b.ProviderRef(); kind {
	case models.KindStylist:
		e.Stylist = s.stylistSummary(ctx, providerID)
	case models.KindSalon:
		e.Salon = s.salonSummary(ctx, providerID)
	}

	e.Countdown = lifecycle.CountdownFor(b, now, s.Policy)
	return e
}

func (s *DefaultAppointmentService) enrichAll(ctx context.Context, bookings []models.Booking, now time.Time) []models.EnrichedBooking {
	out := make([]models.EnrichedBooking, 0, len(bookings))
	for i := range bookings {
		out = append(out, s.enrich(ctx, &bookings[i], now))
	}
	return out
}

// stylistSummary resolves the stylist directory entry for a booking,
// serving repeat lookups from the summary cache.
func (s *DefaultAppointmentService) stylistSummary(ctx context.Context, userID string) *models.StylistSummary {
	key := "summary:stylist:" + userID
	var cached models.StylistSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached
	}

	st, err := s.Stylists.GetByUserID(ctx, userID)
	if err != nil {
		utils.GetLogger().Debug("enrich: stylist lookup failed",
			zap.String("stylistUserID", userID), zap.Error(err))
		return nil
	}
	sum := &models.StylistSummary{
		ID:           st.ID,
		UserID:       st.UserID,
		Pseudo:       st.Pseudo,
		ProfileImage: st.ProfileImage,
		Address:      st.Address,
		City:         st.City,
		PostalCode:   st.PostalCode,
		Rating:       st.Rating,
		Specialties:  st.Specialties,
	}
	s.cachePut(ctx, key, sum)
	return sum
}

// salonSummary is the salon counterpart of stylistSummary.
func (s *DefaultAppointmentService) salonSummary(ctx context.Context, salonID string) *models.SalonSummary {
	key := "summary:salon:" + salonID
	var cached models.SalonSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached
	}

	sa, err := s.Salons.GetByID(ctx, salonID)
	if err != nil {
		utils.GetLogger().Debug("enrich: salon lookup failed",
			zap.String("salonID", salonID), zap.Error(err))
		return nil
	}
	sum := &models.SalonSummary{
		ID:       sa.ID,
		Name:     sa.Name,
		Address:  sa.Address,
		City:     sa.City,
		Phone:    sa.Phone,
		ImageURL: sa.ImageURL,
	}
	s.cachePut(ctx, key, sum)
	return sum
}

func (s *DefaultAppointmentService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.Cache == nil {
		return false
	}
	raw, ok := s.Cache.Get(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *DefaultAppointmentService) cachePut(ctx context.Context, key string, v interface{}) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, key, string(raw), summaryTTL)
}
