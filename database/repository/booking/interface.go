package bookingRepo

import (
	"context"
	"time"

	"salonkit/database"
	"salonkit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository resolves and persists reservations. Read queries return
// the slim booked-interval projection the availability engine consumes;
// cancelled and no-show bookings are excluded, and each interval's end is
// max(totalEnd, serviceEnd).
type BookingRepository interface {
	// GetForStaffDate returns blocking intervals for one staff member on
	// the calendar day containing dayStart (midnight in the target zone).
	GetForStaffDate(ctx context.Context, staffID string, dayStart time.Time) ([]models.BookedInterval, error)
	// GetForUserDate returns blocking intervals booked by one customer on
	// that day, across all staff.
	GetForUserDate(ctx context.Context, userID string, dayStart time.Time) ([]models.BookedInterval, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	// UpdateStatus sets the booking's status (cancel, confirm, no-show).
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("salonkit")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
