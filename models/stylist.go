package models

import "time"

// Stylist is an individual provider profile, owned by a User account.
// WorkingHours drives the Calendar Resolver for stylist availability.
type Stylist struct {
	ID           string       `bson:"id" json:"id"`
	UserID       string       `bson:"userId" json:"userId"`
	SalonID      string       `bson:"salonId,omitempty" json:"salonId,omitempty"`
	Pseudo       string       `bson:"pseudo" json:"pseudo"`
	Specialties  []string     `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Address      string       `bson:"address,omitempty" json:"address,omitempty"`
	City         string       `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode   string       `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Rating       float64      `bson:"rating,omitempty" json:"rating,omitempty"`
	ProfileImage string       `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	WorkingHours WorkingHours `bson:"workingHours" json:"workingHours"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// StylistSummary is the trimmed stylist view embedded in enriched bookings.
type StylistSummary struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	Pseudo       string   `json:"pseudo"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}
