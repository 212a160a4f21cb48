package query

import (
	"sync"
	"time"
)

const defaultTTL = 5 * time.Minute

type cacheEntry struct {
	results []Result
	expires time.Time
}

// ttlCache is a mutex-guarded result cache with per-entry expiry.
// Expired entries are dropped lazily on read. Stored and returned
// slices are copies, so callers can never mutate a cached result.
type ttlCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *ttlCache) get(key string) ([]Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return copyResults(entry.results), true
}

func (c *ttlCache) put(key string, results []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		results: copyResults(results),
		expires: c.now().Add(c.ttl),
	}
}

// Clear drops all cached entries.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len reports the live entry count without evicting.
func (c *ttlCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SetClock overrides the cache clock and TTL, for tests.
func (c *ttlCache) SetClock(now func() time.Time, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	if ttl > 0 {
		c.ttl = ttl
	}
}

func copyResults(in []Result) []Result {
	out := make([]Result, len(in))
	copy(out, in)
	return out
}
