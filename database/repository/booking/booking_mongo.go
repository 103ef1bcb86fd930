package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonkit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var nonBlockingStatuses = []string{models.BookingCancelled, models.BookingNoShow}

func (repo *mongoBookingRepo) GetForStaffDate(ctx context.Context, staffID string, dayStart time.Time) ([]models.BookedInterval, error) {
	filter := bson.M{"staffId": staffID}
	return repo.intervalsForDay(ctx, filter, dayStart)
}

func (repo *mongoBookingRepo) GetForUserDate(ctx context.Context, userID string, dayStart time.Time) ([]models.BookedInterval, error) {
	filter := bson.M{"userId": userID}
	return repo.intervalsForDay(ctx, filter, dayStart)
}

func (repo *mongoBookingRepo) intervalsForDay(ctx context.Context, filter bson.M, dayStart time.Time) ([]models.BookedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayEnd := dayStart.AddDate(0, 0, 1)
	filter["status"] = bson.M{"$nin": nonBlockingStatuses}
	// A booking belongs to the day its service starts on.
	filter["serviceStart"] = bson.M{"$gte": dayStart, "$lt": dayEnd}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	intervals := make([]models.BookedInterval, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		intervals = append(intervals, models.BookedInterval{
			Start: b.ServiceStart,
			End:   b.ConflictEnd(),
		})
	}
	return intervals, nil
}

func (repo *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (repo *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}
	return nil
}
