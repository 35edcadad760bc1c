package news

import (
	"context"
	"sync"
	"time"

	"github.com/mdolezal/newsdesk/app/config"
)

type cacheEntry struct {
	cachedAt time.Time
	value    *CategoryResult
}

// Cache stores the latest aggregated result per category key and serves it
// for as long as it stays inside the freshness window. Entries are replaced
// wholesale; no reader ever observes a half-written entry.
type Cache struct {
	aggregator CategoryAggregator
	ttl        time.Duration
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	now        func() time.Time
}

func NewCache(aggregator CategoryAggregator, ttl time.Duration) *Cache {
	return &Cache{
		aggregator: aggregator,
		ttl:        ttl,
		entries:    make(map[string]cacheEntry),
		now:        time.Now,
	}
}

// GetOrRefresh serves a fresh cached result, or synchronously re-aggregates
// the category when its entry is missing or stale. Two concurrent refreshes
// of the same stale key may both run; the last write wins.
func (c *Cache) GetOrRefresh(ctx context.Context, category config.Category) *CategoryResult {
	now := c.now()

	c.mu.RLock()
	entry, ok := c.entries[category.Key]
	c.mu.RUnlock()

	if ok && now.Sub(entry.cachedAt) < c.ttl {
		return entry.value
	}

	result := c.aggregator.Run(ctx, category)

	c.mu.Lock()
	c.entries[category.Key] = cacheEntry{cachedAt: now, value: result}
	c.mu.Unlock()

	return result
}

// Len returns the number of cached category entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
