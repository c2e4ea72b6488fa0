package countstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// prefix string for all the Redis keys this store uses
var redisCountPrefix string = "count/"

type RedisCountStore struct {
	Client *redis.Client
}

var _ CountStore = (*RedisCountStore)(nil)

// The caller owns the client lifecycle: dial (and Ping) once at process
// start, share the handle across stores, close at shutdown.
func NewRedisCountStore(client *redis.Client) *RedisCountStore {
	return &RedisCountStore{
		Client: client,
	}
}

func (s *RedisCountStore) Increment(ctx context.Context, name string) (int64, error) {
	return s.Client.Incr(ctx, redisCountPrefix+name).Result()
}

func (s *RedisCountStore) GetCount(ctx context.Context, name string) (int64, error) {
	c, err := s.Client.Get(ctx, redisCountPrefix+name).Int64()
	if err == redis.Nil {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return c, nil
}

func (s *RedisCountStore) Reset(ctx context.Context, name string) error {
	return s.Client.Del(ctx, redisCountPrefix+name).Err()
}
