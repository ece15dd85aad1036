// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the store contract for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("stylebook")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
