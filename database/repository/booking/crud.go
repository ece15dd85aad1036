// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"stylebook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *mongoBookingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateStatusIfActive applies a manual status change under the same guard
// MarkRejected uses: the write matches only while the booking is still
// PENDING or CONFIRMED. When an automatic rejection lands first, the manual
// write matches nothing and surfaces as mongo.ErrNoDocuments, so a terminal
// state is never overwritten.
func (r *mongoBookingRepo) UpdateStatusIfActive(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if !to.IsValid() {
		return nil, fmt.Errorf("invalid booking status %q", to)
	}

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": models.ActiveStatuses()},
	}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var b models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// MarkRejected is the conditional PENDING/CONFIRMED -> REJECTED transition.
// The status filter makes concurrent sweeps converge: the first writer wins
// and every later attempt matches nothing.
func (r *mongoBookingRepo) MarkRejected(ctx context.Context, id string, at time.Time, reason string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": models.ActiveStatuses()},
	}
	update := bson.M{
		"$set": bson.M{
			"status":          models.StatusRejected,
			"rejectedAt":      at,
			"rejectionReason": reason,
			"updatedAt":       at,
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark booking %s rejected: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}
