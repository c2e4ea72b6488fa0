package webcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packrat-io/packrat/cachestore"
	"github.com/packrat-io/packrat/countstore"
)

type countingFetcher struct {
	mu    sync.Mutex
	calls int
	body  string
	err   error
}

func (f *countingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.body, nil
}

func (f *countingFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *countingFetcher) setBody(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.body = body
}

func newTestFetcher(inner Fetcher, ttl time.Duration) *CachedFetcher {
	return New(inner, cachestore.NewMemCacheStore(1000, ttl), countstore.NewMemCountStore())
}

func TestCachedFetcherCachesPages(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	inner := &countingFetcher{body: "<html>ok</html>"}
	cf := newTestFetcher(inner, time.Minute)

	body, cached, err := cf.FetchWithCacheState(ctx, "http://example.com")
	require.NoError(err)
	assert.Equal("<html>ok</html>", body)
	assert.False(cached)

	for i := 0; i < 2; i++ {
		body, cached, err = cf.FetchWithCacheState(ctx, "http://example.com")
		require.NoError(err)
		assert.Equal("<html>ok</html>", body)
		assert.True(cached)
	}

	// one origin fetch, three counted accesses
	assert.Equal(1, inner.count())
	c, err := cf.AccessCount(ctx, "http://example.com")
	assert.NoError(err)
	assert.Equal(int64(3), c)

	// other URLs are unaffected
	c, err = cf.AccessCount(ctx, "http://example.com/other")
	assert.NoError(err)
	assert.Equal(int64(0), c)
}

func TestCachedFetcherExpiry(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	inner := &countingFetcher{body: "one"}
	cf := newTestFetcher(inner, time.Millisecond*50)

	body, cached, err := cf.FetchWithCacheState(ctx, "http://example.com")
	require.NoError(err)
	assert.Equal("one", body)
	assert.False(cached)

	time.Sleep(time.Millisecond * 100)
	inner.setBody("two")

	// expired: the origin is fetched again and the new content replaces the old
	body, cached, err = cf.FetchWithCacheState(ctx, "http://example.com")
	require.NoError(err)
	assert.Equal("two", body)
	assert.False(cached)
	assert.Equal(2, inner.count())

	body, cached, err = cf.FetchWithCacheState(ctx, "http://example.com")
	require.NoError(err)
	assert.Equal("two", body)
	assert.True(cached)

	c, err := cf.AccessCount(ctx, "http://example.com")
	assert.NoError(err)
	assert.Equal(int64(3), c)
}

func TestCachedFetcherFetchError(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	boom := errors.New("origin down")
	inner := &countingFetcher{err: boom}
	cf := newTestFetcher(inner, time.Minute)

	_, _, err := cf.FetchWithCacheState(ctx, "http://example.com")
	assert.ErrorIs(err, boom)

	// the failed access still counts, and nothing was cached
	c, err := cf.AccessCount(ctx, "http://example.com")
	assert.NoError(err)
	assert.Equal(int64(1), c)

	inner.mu.Lock()
	inner.err = nil
	inner.mu.Unlock()
	_, cached, err := cf.FetchWithCacheState(ctx, "http://example.com")
	assert.NoError(err)
	assert.False(cached)
	assert.Equal(2, inner.count())
}

func TestCachedFetcherEmptyBody(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	inner := &countingFetcher{body: ""}
	cf := newTestFetcher(inner, time.Minute)

	body, cached, err := cf.FetchWithCacheState(ctx, "http://example.com")
	require.NoError(err)
	assert.Equal("", body)
	assert.False(cached)

	// an empty body is still a cacheable page
	body, cached, err = cf.FetchWithCacheState(ctx, "http://example.com")
	require.NoError(err)
	assert.Equal("", body)
	assert.True(cached)
	assert.Equal(1, inner.count())
}
