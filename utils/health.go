package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest reachability snapshot of the backing
// stores: Mongo plus the two Redis databases (slot cache, auth cache).
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	SlotCache bool      `json:"slotCache"`
	AuthCache bool      `json:"authCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every backing store answered the last check.
func (h HealthStatus) Healthy() bool {
	return h.Mongo && h.SlotCache && h.AuthCache
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot. The zero
// value (CheckedAt unset) means the monitor has not run yet.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func recordHealth(h HealthStatus) {
	healthMu.Lock()
	currentHealth = h
	healthMu.Unlock()
}

// StartHealthMonitor pings the backing stores once a minute and keeps
// the snapshot served by the health endpoint current.
func StartHealthMonitor(slotCache, authCache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		check := func() {
			recordHealth(HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				SlotCache: slotCache.Ping(ctx).Err() == nil,
				AuthCache: authCache.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			})
		}

		check()
		for range ticker.C {
			check()
		}
	}()
}
