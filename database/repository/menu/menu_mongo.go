package menuRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonkit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoMenuRepo) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var menu models.Menu
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu %s: %w", id, err)
	}
	return &menu, nil
}

func (repo *mongoMenuRepo) List(ctx context.Context, publishedOnly bool) ([]models.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
		filter["archived"] = false
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menus: %w", err)
	}
	defer cursor.Close(ctx)

	var menus []models.Menu
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("error decoding menus: %w", err)
	}
	return menus, nil
}
