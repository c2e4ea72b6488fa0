package histstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// prefix string for all the Redis keys this store uses
var redisHistPrefix string = "hist/"

type RedisHistoryStore struct {
	Client *redis.Client
}

var _ HistoryStore = (*RedisHistoryStore)(nil)

// The caller owns the client lifecycle: dial (and Ping) once at process
// start, share the handle across stores, close at shutdown.
func NewRedisHistoryStore(client *redis.Client) *RedisHistoryStore {
	return &RedisHistoryStore{
		Client: client,
	}
}

func inputsKey(name string) string {
	return redisHistPrefix + name + "/in"
}

func outputsKey(name string) string {
	return redisHistPrefix + name + "/out"
}

func (s *RedisHistoryStore) RecordInput(ctx context.Context, name, input string) error {
	return s.Client.RPush(ctx, inputsKey(name), input).Err()
}

func (s *RedisHistoryStore) RecordOutput(ctx context.Context, name, output string) error {
	return s.Client.RPush(ctx, outputsKey(name), output).Err()
}

func (s *RedisHistoryStore) Inputs(ctx context.Context, name string) ([]string, error) {
	return s.Client.LRange(ctx, inputsKey(name), 0, -1).Result()
}

func (s *RedisHistoryStore) Outputs(ctx context.Context, name string) ([]string, error) {
	return s.Client.LRange(ctx, outputsKey(name), 0, -1).Result()
}
