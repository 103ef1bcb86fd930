package menuRepo

import (
	"context"

	"salonkit/database"
	"salonkit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MenuRepository resolves service menu definitions.
type MenuRepository interface {
	// GetByID returns the menu or nil when no menu carries the id.
	GetByID(ctx context.Context, id string) (*models.Menu, error)
	// List returns menus, optionally restricted to published ones.
	List(ctx context.Context, publishedOnly bool) ([]models.Menu, error)
}

type mongoMenuRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuRepo constructs a new MongoDB MenuRepository.
func NewMongoMenuRepo() MenuRepository {
	db := database.MongoClient.Database("salonkit")
	return &mongoMenuRepo{
		coll: db.Collection("menus"),
	}
}
