// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"roomquest/config"

	"github.com/go-redis/redis/v8"
)

// HoldCacheClient is the dedicated client for slot hold storage.
var HoldCacheClient *redis.Client

// InitHoldCache initializes the Redis client backing slot holds (using DB from
// AppConfig for hold storage).
func InitHoldCache() {
	HoldCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := HoldCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Hold Cache): %v", err)
	}
}

// GetHoldCacheClient returns the Redis client for slot hold storage.
func GetHoldCacheClient() *redis.Client {
	if HoldCacheClient == nil {
		InitHoldCache()
	}
	return HoldCacheClient
}
