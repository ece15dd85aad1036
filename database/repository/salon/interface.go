// File: database/repository/salon/interface.go
package salonRepo

import (
	"context"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SalonRepository is the directory contract for salons.
type SalonRepository interface {
	Create(ctx context.Context, s *models.Salon) error
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Salon, error)
	UpdateOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) error
	List(ctx context.Context) ([]models.Salon, error)
	Delete(ctx context.Context, id string) error
}

type mongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo constructs a new MongoDB SalonRepository.
func NewMongoSalonRepo() SalonRepository {
	db := database.MongoClient.Database("stylebook")
	return &mongoSalonRepo{
		coll: db.Collection("salons"),
	}
}
