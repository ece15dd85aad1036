// File: database/repository/stylist/interface.go
package stylistRepo

import (
	"context"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StylistRepository is the directory contract for stylist profiles.
// GetByUserID backs the Calendar Resolver: stylist bookings reference the
// owning user account, not the stylist profile ID.
type StylistRepository interface {
	Create(ctx context.Context, s *models.Stylist) error
	GetByID(ctx context.Context, id string) (*models.Stylist, error)
	GetByUserID(ctx context.Context, userID string) (*models.Stylist, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Stylist, error)
	UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error
	List(ctx context.Context) ([]models.Stylist, error)
	Delete(ctx context.Context, id string) error
}

type mongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoStylistRepo constructs a new MongoDB StylistRepository.
func NewMongoStylistRepo() StylistRepository {
	db := database.MongoClient.Database("stylebook")
	return &mongoStylistRepo{
		coll: db.Collection("stylists"),
	}
}
