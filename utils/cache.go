package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"roamify/config"
)

var (
	// SessionClient persists client sessions.
	SessionClient *redis.Client
	// CacheClient holds ephemeral data such as the latest live-search result.
	CacheClient *redis.Client
)

// InitRedis connects both Redis clients and fails fast when the store is
// unreachable at startup.
func InitRedis() {
	SessionClient = newRedisClient(config.AppConfig.RedisSessionDB)
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
}

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

// GetSessionClient returns the session store client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitRedis()
	}
	return SessionClient
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}
