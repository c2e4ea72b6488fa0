package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDialMongoDocStoreUnreachable(t *testing.T) {
	assert := assert.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	// connecting is lazy; the ping is what fails, and the half-open client
	// must be torn down on that path
	_, err := DialMongoDocStore(ctx, "mongodb://127.0.0.1:1", "packrat_test")
	assert.Error(err)
}

func TestMongoDocStoreBasics(t *testing.T) {
	t.Skip("live test, need mongodb running locally")
	assert := assert.New(t)
	ctx := context.Background()

	ds, err := DialMongoDocStore(ctx, "mongodb://localhost:27017", "packrat_test")
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close(ctx)
	ds.DB.Collection("nginx").Drop(ctx)

	id, err := ds.InsertOne(ctx, "nginx", map[string]any{"method": "GET", "path": "/status"})
	assert.NoError(err)
	assert.NotEmpty(id)
	_, err = ds.InsertOne(ctx, "nginx", map[string]any{"method": "POST", "path": "/submit"})
	assert.NoError(err)

	n, err := ds.CountDocuments(ctx, "nginx", nil)
	assert.NoError(err)
	assert.Equal(int64(2), n)

	n, err = ds.CountDocuments(ctx, "nginx", map[string]any{"method": "GET", "path": "/status"})
	assert.NoError(err)
	assert.Equal(int64(1), n)

	ds.DB.Collection("nginx").Drop(ctx)
}
