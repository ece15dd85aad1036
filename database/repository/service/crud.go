// File: database/repository/service/crud.go
package serviceRepo

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

var updatableServiceFields = map[string]bool{
	"name":        true,
	"description": true,
	"price":       true,
	"duration":    true,
	"category":    true,
	"imageUrl":    true,
}

func (r *mongoServiceRepo) Create(ctx context.Context, s *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.Duration <= 0 {
		return fmt.Errorf("service duration must be positive, got %d", s.Duration)
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoServiceRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		if !updatableServiceFields[k] {
			return nil, fmt.Errorf("service field %q is not updatable", k)
		}
		set[k] = v
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var s models.Service
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoServiceRepo) ListByStylist(ctx context.Context, stylistID string) ([]models.Service, error) {
	return r.list(ctx, bson.M{"stylistId": stylistID})
}

func (r *mongoServiceRepo) ListBySalon(ctx context.Context, salonID string) ([]models.Service, error) {
	return r.list(ctx, bson.M{"salonId": salonID})
}

func (r *mongoServiceRepo) list(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *mongoServiceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
