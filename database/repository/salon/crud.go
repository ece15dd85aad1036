// File: database/repository/salon/crud.go
package salonRepo

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

var updatableSalonFields = map[string]bool{
	"name":        true,
	"description": true,
	"address":     true,
	"city":        true,
	"postalCode":  true,
	"phone":       true,
	"imageUrl":    true,
}

func (r *mongoSalonRepo) Create(ctx context.Context, s *models.Salon) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert salon: %w", err)
	}
	return nil
}

func (r *mongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoSalonRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		if !updatableSalonFields[k] {
			return nil, fmt.Errorf("salon field %q is not updatable", k)
		}
		set[k] = v
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var s models.Salon
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoSalonRepo) UpdateOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, h := range hours {
		if h.Day < 0 || h.Day > 6 {
			return fmt.Errorf("opening hours: invalid weekday %d", h.Day)
		}
		if h.End <= h.Start {
			return fmt.Errorf("opening hours: window end %d not after start %d", h.End, h.Start)
		}
	}

	update := bson.M{"$set": bson.M{"openingHours": hours, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update opening hours: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSalonRepo) List(ctx context.Context) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("salon query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("failed to decode salons: %w", err)
	}
	return salons, nil
}

func (r *mongoSalonRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete salon: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
