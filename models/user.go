package models

import "time"

// User is a platform account: a client, a stylist's owner account, or an admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"` // "client", "stylist" or "admin"
	PasswordHash string    `bson:"passwordHash" json:"-"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	IsAdmin      bool      `bson:"isAdmin,omitempty" json:"isAdmin,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
