package countstore

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCountStoreBasics(t *testing.T) {
	t.Skip("live test, need redis running locally")
	assert := assert.New(t)
	ctx := context.Background()

	opt, err := redis.ParseURL("redis://localhost:6379/0")
	if err != nil {
		t.Fatal(err)
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		t.Fatal(err)
	}
	cs := NewRedisCountStore(rdb)

	rdb.Del(ctx, redisCountPrefix+"test1")

	c, err := cs.GetCount(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(0), c)

	n, err := cs.Increment(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(1), n)
	n, err = cs.Increment(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(2), n)

	c, err = cs.GetCount(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(2), c)

	assert.NoError(cs.Reset(ctx, "test1"))
	c, err = cs.GetCount(ctx, "test1")
	assert.NoError(err)
	assert.Equal(int64(0), c)
}
