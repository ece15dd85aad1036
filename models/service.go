package models

import "time"

// Service is a bookable catalog entry. Duration (minutes) fixes a
// booking's end time at creation.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	StylistID   string    `bson:"stylistId,omitempty" json:"stylistId,omitempty"`
	SalonID     string    `bson:"salonId,omitempty" json:"salonId,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceSummary is the trimmed service view embedded in enriched bookings.
type ServiceSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
