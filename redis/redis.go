package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// BlacklistToken marks a token as revoked until it would have expired anyway.
func BlacklistToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, "blacklist:"+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token was revoked by logout.
func IsTokenBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "blacklist:"+token).Result()
	return err == nil && n > 0
}

// CacheStats stores the dashboard stats payload for a short window.
func CacheStats(key string, payload []byte, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, "stats:"+key, payload, ttl)
}

// GetCachedStats returns a previously cached stats payload, if any.
func GetCachedStats(key string) ([]byte, bool) {
	if Client == nil {
		return nil, false
	}
	b, err := Client.Get(Ctx, "stats:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}
