package utils

import (
	"context"
	"log"
	"time"

	"buildlanka/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CatalogCacheClient caches rendered catalog snapshots.
	CatalogCacheClient *redis.Client
	// SessionCacheClient holds open registration-wizard sessions.
	SessionCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	CatalogCacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
}

// GetCatalogCacheClient returns the catalog cache client.
func GetCatalogCacheClient() *redis.Client {
	if CatalogCacheClient == nil {
		CatalogCacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CatalogCacheClient
}

// GetSessionCacheClient returns the Redis client holding wizard sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}
