// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"stylebook/database"
	"stylebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the store contract for bookings. Status writes are
// conditional: both MarkRejected and UpdateStatusIfActive fire only while
// the booking is still PENDING or CONFIRMED, which makes the automatic
// rejection transition idempotent under concurrent sweeps and keeps manual
// writes from resurrecting a terminal booking.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error

	// UpdateStatusIfActive sets the status while the booking is still
	// PENDING or CONFIRMED. Returns mongo.ErrNoDocuments when the booking
	// is missing or no longer active.
	UpdateStatusIfActive(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error)

	// MarkRejected performs PENDING/CONFIRMED -> REJECTED. Returns false
	// when the booking was already terminal (no-op).
	MarkRejected(ctx context.Context, id string, at time.Time, reason string) (bool, error)

	GetByProviderAndDate(ctx context.Context, kind models.ProviderKind, providerID, date string, statuses []models.BookingStatus) ([]models.Booking, error)
	GetByClientID(ctx context.Context, userID string) ([]models.Booking, error)
	GetByStylistID(ctx context.Context, stylistID string) ([]models.Booking, error)
	GetBySalonID(ctx context.Context, salonID string) ([]models.Booking, error)
	ListByStatus(ctx context.Context, statuses []models.BookingStatus) ([]models.Booking, error)

	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("stylebook")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
