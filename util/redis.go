package util

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisClient dials a redis instance from a connection URL
// (redis://<user>:<pass>@<hostname>:6379/<db>) and verifies the connection.
//
// The returned client is pooled and safe for concurrent use; create it once
// at process start, share it across stores, and Close it at shutdown.
func RedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("could not configure redis client: %w", err)
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}
