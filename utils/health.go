package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// RecordHealth stores a health snapshot for GetHealthStatus to serve.
func RecordHealth(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The first check runs immediately so the health endpoint has a
// snapshot before the first tick.
func StartHealthMonitor(cacheClient *redis.Client, mongoClient *mongo.Client) {
	check := func() {
		ctx := context.Background()
		RecordHealth(HealthStatus{
			Mongo:     mongoClient.Ping(ctx, nil) == nil,
			Redis:     cacheClient.Ping(ctx).Err() == nil,
			CheckedAt: time.Now(),
		})
	}

	go func() {
		check()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
