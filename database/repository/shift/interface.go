package shiftRepo

import (
	"context"

	"salonkit/database"
	"salonkit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ShiftRepository resolves per-staff monthly shift templates.
type ShiftRepository interface {
	// GetMonth returns the template for (staff, year, month) or nil when
	// none is registered. Working intervals are sanitized on read.
	GetMonth(ctx context.Context, staffID string, year, month int) (*models.ShiftEntry, error)
	// Upsert replaces the template for the entry's (staff, year, month).
	Upsert(ctx context.Context, entry *models.ShiftEntry) error
}

type mongoShiftRepo struct {
	coll *mongo.Collection
}

// NewMongoShiftRepo constructs a new MongoDB ShiftRepository.
func NewMongoShiftRepo() ShiftRepository {
	db := database.MongoClient.Database("salonkit")
	return &mongoShiftRepo{
		coll: db.Collection("shifts"),
	}
}
