package staffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonkit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff %s: %w", id, err)
	}
	return &staff, nil
}

func (repo *mongoStaffRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Staff, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	defer cursor.Close(ctx)

	var found []models.Staff
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}

	byID := make(map[string]models.Staff, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	ordered := make([]models.Staff, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}
