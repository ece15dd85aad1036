// File: database/repository/stylist/crud.go
package stylistRepo

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

// updatableStylistFields enumerates the profile fields open to updates.
// WorkingHours has its own dedicated write path.
var updatableStylistFields = map[string]bool{
	"pseudo":       true,
	"specialties":  true,
	"address":      true,
	"city":         true,
	"postalCode":   true,
	"rating":       true,
	"profileImage": true,
	"salonId":      true,
}

func (r *mongoStylistRepo) Create(ctx context.Context, s *models.Stylist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert stylist: %w", err)
	}
	return nil
}

func (r *mongoStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStylistRepo) GetByUserID(ctx context.Context, userID string) (*models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStylistRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		if !updatableStylistFields[k] {
			return nil, fmt.Errorf("stylist field %q is not updatable", k)
		}
		set[k] = v
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var s models.Stylist
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoStylistRepo) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(hours.Days) != len(hours.TimeSlots) {
		return fmt.Errorf("working hours: %d days but %d windows", len(hours.Days), len(hours.TimeSlots))
	}

	update := bson.M{"$set": bson.M{"workingHours": hours, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update working hours: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStylistRepo) List(ctx context.Context) ([]models.Stylist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("stylist query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	if err := cursor.All(ctx, &stylists); err != nil {
		return nil, fmt.Errorf("failed to decode stylists: %w", err)
	}
	return stylists, nil
}

func (r *mongoStylistRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete stylist: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
