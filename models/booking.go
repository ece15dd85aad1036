package models

import (
	"strings"
	"time"
)

// BookingStatus is the canonical, upper-case booking state. Mixed-casing
// from older clients is normalized at the boundary with NormalizeStatus.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// NormalizeStatus maps a raw status string to its canonical form.
// Unknown values are returned upper-cased so they fail validation visibly
// instead of silently matching nothing.
func NormalizeStatus(raw string) BookingStatus {
	return BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsValid reports whether the status is one of the five canonical states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further automatic transition applies.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ActiveStatuses are the states the lifecycle engine evaluates; bookings in
// any other state never block a slot and are never auto-rejected.
func ActiveStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusConfirmed}
}

// Booking represents an appointment between a client and a provider
// (stylist or salon). Start and End are minutes from midnight on Date;
// End is derived from the service duration at creation and never edited
// independently.
type Booking struct {
	ID        string `bson:"id" json:"id"`
	UserID    string `bson:"userId" json:"userId"`                   // client who booked
	StylistID string `bson:"stylistId,omitempty" json:"stylistId,omitempty"`
	SalonID   string `bson:"salonId,omitempty" json:"salonId,omitempty"`
	ServiceID string `bson:"serviceId" json:"serviceId"`

	Date  string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start int    `bson:"start" json:"start"`
	End   int    `bson:"end" json:"end"`

	Status BookingStatus `bson:"status" json:"status"`

	// Payment metadata, opaque to the scheduling core.
	Amount        float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency      string  `bson:"currency,omitempty" json:"currency,omitempty"`
	PaymentStatus string  `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	// Set only on transition to REJECTED.
	RejectedAt      *time.Time `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	RejectionReason string     `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
}

// ProviderRef returns the kind and ID of the booked provider.
func (b *Booking) ProviderRef() (ProviderKind, string) {
	if b.StylistID != "" {
		return KindStylist, b.StylistID
	}
	return KindSalon, b.SalonID
}

// BusyInterval is a read-only projection of a booking used for conflict
// checking during slot generation. Never persisted.
type BusyInterval struct {
	Start int // minutes from midnight
	End   int
}

// Overlaps tests half-open interval overlap: an interval ending exactly
// when another starts does not conflict.
func (iv BusyInterval) Overlaps(start, end int) bool {
	return start < iv.End && end > iv.Start
}
