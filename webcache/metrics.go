package webcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "packrat_webcache_hits",
	Help: "Number of page requests served from cache",
})

var pageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
	Name: "packrat_webcache_misses",
	Help: "Number of page requests that missed the cache",
})

var pageFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "packrat_webcache_fetch_errors",
	Help: "Number of upstream page fetches that failed",
})
