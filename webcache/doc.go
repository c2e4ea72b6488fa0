// Cached fetching of web pages with per-URL access accounting.
//
// CachedFetcher wraps any Fetcher with a short-TTL page cache and an access
// counter. The counter is bumped on every request, hit or miss, so it tracks
// how often a URL was asked for rather than how often it was fetched. Cache
// expiry is left entirely to the backing store.
package webcache
