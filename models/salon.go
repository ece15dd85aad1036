package models

import "time"

// Salon is a multi-stylist provider. OpeningHours drives the Calendar
// Resolver for salon availability.
type Salon struct {
	ID           string         `bson:"id" json:"id"`
	OwnerID      string         `bson:"ownerId" json:"ownerId"`
	Name         string         `bson:"name" json:"name"`
	Description  string         `bson:"description,omitempty" json:"description,omitempty"`
	Address      string         `bson:"address,omitempty" json:"address,omitempty"`
	City         string         `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode   string         `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Phone        string         `bson:"phone,omitempty" json:"phone,omitempty"`
	ImageURL     string         `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	OpeningHours []OpeningHours `bson:"openingHours" json:"openingHours"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// SalonSummary is the trimmed salon view embedded in enriched bookings.
type SalonSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Phone    string `json:"phone,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
