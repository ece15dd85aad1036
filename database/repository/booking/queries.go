// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"stylebook/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("booking query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByProviderAndDate fetches a provider's bookings on one calendar date,
// optionally restricted to a status set. No ordering is guaranteed; the
// slot generator treats the result as an unordered set.
func (r *mongoBookingRepo) GetByProviderAndDate(ctx context.Context, kind models.ProviderKind, providerID, date string, statuses []models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"date": date}
	switch kind {
	case models.KindStylist:
		filter["stylistId"] = providerID
	case models.KindSalon:
		filter["salonId"] = providerID
	default:
		return nil, fmt.Errorf("unknown provider kind %q", kind)
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return r.find(ctx, filter)
}

func (r *mongoBookingRepo) GetByClientID(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *mongoBookingRepo) GetByStylistID(ctx context.Context, stylistID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"stylistId": stylistID})
}

func (r *mongoBookingRepo) GetBySalonID(ctx context.Context, salonID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"salonId": salonID})
}

// ListByStatus loads every booking in the given states, across all
// providers. Used by the rejection sweeper.
func (r *mongoBookingRepo) ListByStatus(ctx context.Context, statuses []models.BookingStatus) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"status": bson.M{"$in": statuses}})
}
