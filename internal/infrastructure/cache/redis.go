package redisclient

import (
	"context"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// NewRedisFromURL parses a redis:// URL and returns a client. A failed ping is logged but
// not fatal: the cache is optional and every caller tolerates cache errors.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Warnf("invalid REDIS_URL, falling back to defaults: %v", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnf("redis ping failed: %v", err)
	}
	return rdb
}

// Close releases the client's connections.
func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
