package recordstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// prefix string for all the Redis keys this store uses
var redisRecordPrefix string = "record/"

type RedisRecordStore struct {
	Client *redis.Client
}

var _ RecordStore = (*RedisRecordStore)(nil)

// The caller owns the client lifecycle: dial (and Ping) once at process
// start, share the handle across stores, close at shutdown.
func NewRedisRecordStore(client *redis.Client) *RedisRecordStore {
	return &RedisRecordStore{
		Client: client,
	}
}

func (s *RedisRecordStore) Set(ctx context.Context, key string, val []byte) error {
	return s.Client.Set(ctx, redisRecordPrefix+key, val, 0).Err()
}

func (s *RedisRecordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.Client.Get(ctx, redisRecordPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return b, true, nil
}
