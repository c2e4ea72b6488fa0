package webcache

import (
	"context"
	"fmt"
	"time"

	"github.com/packrat-io/packrat/cachestore"
	"github.com/packrat-io/packrat/countstore"
)

// DefaultTTL is how long fetched pages stay cached unless configured
// otherwise.
const DefaultTTL = 10 * time.Second

// cacheName namespaces cached page bodies within the cache store.
var cacheName = "page"

func accessCountName(url string) string {
	return "url/" + url
}

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// CachedFetcher serves page bodies from a cache, falling back to the inner
// Fetcher on a miss, and counts every access per URL. It keeps no state of
// its own: all caching and counting lives in the backing stores, so
// concurrent fetchers sharing a store share hits and counts. Two concurrent
// misses for the same URL may both hit the origin; last write wins.
type CachedFetcher struct {
	Inner  Fetcher
	Cache  cachestore.CacheStore
	Counts countstore.CountStore
}

var _ Fetcher = (*CachedFetcher)(nil)

func New(inner Fetcher, cache cachestore.CacheStore, counts countstore.CountStore) *CachedFetcher {
	return &CachedFetcher{
		Inner:  inner,
		Cache:  cache,
		Counts: counts,
	}
}

// Fetch returns the body of url, from cache when fresh.
func (f *CachedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, _, err := f.FetchWithCacheState(ctx, url)
	return body, err
}

// FetchWithCacheState is Fetch plus whether the body came from cache. The
// access counter is incremented before anything else, so failed fetches are
// counted too; a counter failure aborts the whole operation.
func (f *CachedFetcher) FetchWithCacheState(ctx context.Context, url string) (string, bool, error) {
	if _, err := f.Counts.Increment(ctx, accessCountName(url)); err != nil {
		return "", false, fmt.Errorf("incrementing access counter: %w", err)
	}

	body, found, err := f.Cache.Get(ctx, cacheName, url)
	if err != nil {
		return "", false, fmt.Errorf("page cache read failed: %w", err)
	}
	if found {
		pageCacheHits.Inc()
		return body, true, nil
	}
	pageCacheMisses.Inc()

	body, err = f.Inner.Fetch(ctx, url)
	if err != nil {
		pageFetchErrors.Inc()
		return "", false, err
	}
	if err := f.Cache.Set(ctx, cacheName, url, body); err != nil {
		return "", false, fmt.Errorf("page cache write failed: %w", err)
	}
	return body, false, nil
}

// AccessCount reports how many times url has been requested through this
// fetcher's count store, including requests that failed.
func (f *CachedFetcher) AccessCount(ctx context.Context, url string) (int64, error) {
	return f.Counts.GetCount(ctx, accessCountName(url))
}
