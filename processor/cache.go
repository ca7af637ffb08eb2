package processor

import (
	"sync"

	"github.com/dshills/linekit/document"
)

// cacheKey scopes a cached bracket scan to one exact document state
// within one render generation.
type cacheKey struct {
	generation uint64
	text       string
	cursor     int
}

// positionsCache memoizes bracket-scan results across the lines of a
// render pass. It holds at most capacity entries and evicts the oldest
// insertion; the bound keeps stale generations from accumulating, the
// eviction order carries no weight. Safe for concurrent use.
type positionsCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey][]document.Position
	order    []cacheKey
}

func newPositionsCache(capacity int) *positionsCache {
	return &positionsCache{
		capacity: capacity,
		entries:  make(map[cacheKey][]document.Position, capacity),
	}
}

// get returns the value cached under key, computing and storing it on
// a miss.
func (c *positionsCache) get(key cacheKey, compute func() []document.Position) []document.Position {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		return v
	}
	v := compute()
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = v
	c.order = append(c.order, key)
	return v
}

// size returns the number of cached entries.
func (c *positionsCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
