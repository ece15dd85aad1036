// File: database/repository/user/crud.go
package userRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stylebook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var updatableUserFields = map[string]bool{
	"firstName":    true,
	"lastName":     true,
	"phone":        true,
	"profileImage": true,
}

func (r *mongoUserRepo) Create(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u models.User
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		if !updatableUserFields[k] {
			return nil, fmt.Errorf("user field %q is not updatable", k)
		}
		set[k] = v
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var u models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoUserRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"fcmToken": token, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoUserRepo) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("user query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
