package routing

import (
	"fmt"
	"sync"
	"sync/atomic"

	"wireroute/core"
	"wireroute/wire"
)

// cacheKey uniquely identifies a routing request.
type cacheKey struct {
	From, To string
	Wire     wire.Type
	Mode     core.RoutingMode
}

// resultCache memoizes routing results. Any environment mutation clears the
// whole cache; no partial invalidation is attempted.
type resultCache struct {
	mu      sync.RWMutex
	results map[cacheKey]Result
	maxSize int

	hits          int64 // atomic
	misses        int64 // atomic
	invalidations int64 // atomic
}

func newResultCache(maxSize int) *resultCache {
	return &resultCache{
		results: make(map[cacheKey]Result),
		maxSize: maxSize,
	}
}

// get retrieves a memoized result if present.
func (rc *resultCache) get(key cacheKey) (Result, bool) {
	rc.mu.RLock()
	result, found := rc.results[key]
	rc.mu.RUnlock()

	if found {
		atomic.AddInt64(&rc.hits, 1)
	} else {
		atomic.AddInt64(&rc.misses, 1)
	}
	return result, found
}

// put stores a result, evicting an arbitrary entry when full.
func (rc *resultCache) put(key cacheKey, result Result) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.maxSize > 0 && len(rc.results) >= rc.maxSize {
		for k := range rc.results {
			delete(rc.results, k)
			break
		}
	}
	rc.results[key] = result
}

// clear drops every entry and counts one invalidation.
func (rc *resultCache) clear() {
	rc.mu.Lock()
	rc.results = make(map[cacheKey]Result)
	rc.mu.Unlock()
	atomic.AddInt64(&rc.invalidations, 1)
}

// CacheStats reports cache effectiveness counters.
type CacheStats struct {
	Hits          int64
	Misses        int64
	Invalidations int64
	Size          int
}

func (rc *resultCache) stats() CacheStats {
	rc.mu.RLock()
	size := len(rc.results)
	rc.mu.RUnlock()

	return CacheStats{
		Hits:          atomic.LoadInt64(&rc.hits),
		Misses:        atomic.LoadInt64(&rc.misses),
		Invalidations: atomic.LoadInt64(&rc.invalidations),
		Size:          size,
	}
}

// String formats the stats for logs and the CLI.
func (s CacheStats) String() string {
	hitRate := 0.0
	if total := s.Hits + s.Misses; total > 0 {
		hitRate = float64(s.Hits) / float64(total) * 100
	}
	return fmt.Sprintf("ResultCache[size=%d, hits=%d, misses=%d, hitRate=%.1f%%, invalidations=%d]",
		s.Size, s.Hits, s.Misses, hitRate, s.Invalidations)
}
