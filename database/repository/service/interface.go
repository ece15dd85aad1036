// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository is the store contract for the bookable service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Service, error)
	ListByStylist(ctx context.Context, stylistID string) ([]models.Service, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Service, error)
	Delete(ctx context.Context, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("stylebook")
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
