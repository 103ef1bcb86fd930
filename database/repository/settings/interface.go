package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonkit/database"
	"salonkit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsRepository resolves the provider-wide scheduling defaults.
type SettingsRepository interface {
	// Get returns the normalized settings; a missing document degrades
	// to zero-value defaults (step falls back to 10).
	Get(ctx context.Context) (models.SchedulingSettings, error)
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository. The
// settings live in a singleton document.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database("salonkit")
	return &mongoSettingsRepo{
		coll: db.Collection("settings"),
	}
}

func (repo *mongoSettingsRepo) Get(ctx context.Context) (models.SchedulingSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.SchedulingSettings
	err := repo.coll.FindOne(ctx, bson.M{"id": "scheduling"}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SchedulingSettings{}.Normalized(), nil
	}
	if err != nil {
		return models.SchedulingSettings{}, fmt.Errorf("failed to fetch scheduling settings: %w", err)
	}
	return settings.Normalized(), nil
}
