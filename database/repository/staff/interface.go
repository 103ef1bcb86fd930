package staffRepo

import (
	"context"

	"salonkit/database"
	"salonkit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository resolves staff resources referenced by menus and shifts.
type StaffRepository interface {
	// GetByID returns the staff member or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	// GetByIDs returns the staff for the given ids, preserving the
	// requested order; missing ids are silently skipped.
	GetByIDs(ctx context.Context, ids []string) ([]models.Staff, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database("salonkit")
	return &mongoStaffRepo{
		coll: db.Collection("staff"),
	}
}
