package catalog

import (
	"sync"
	"time"
)

// Cache is the in-memory lookup memo shared by all concurrent catalog
// calls. Unlike a pure process-lifetime memo it is bounded: entries carry a
// TTL and the map is capped, with oldest-expiry eviction when full.
// Concurrent first-time lookups for the same key may both miss and both hit
// the network; last writer wins, which is acceptable for idempotent
// upstream reads.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]cacheItem
	ttl      time.Duration
	maxItems int
}

type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// CacheConfig holds cache configuration.
type CacheConfig struct {
	TTL      time.Duration
	MaxItems int
}

// DefaultCacheConfig returns default cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL:      15 * time.Minute,
		MaxItems: 1000,
	}
}

// NewCache creates a new cache with the given configuration.
func NewCache(cfg CacheConfig) *Cache {
	if cfg.TTL == 0 {
		cfg.TTL = 15 * time.Minute
	}
	if cfg.MaxItems == 0 {
		cfg.MaxItems = 1000
	}

	c := &Cache{
		items:    make(map[string]cacheItem),
		ttl:      cfg.TTL,
		maxItems: cfg.MaxItems,
	}

	go c.cleanup()

	return c
}

// Get retrieves an item from the cache.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false
	}

	if time.Now().After(item.expiresAt) {
		return nil, false
	}

	return item.value, true
}

// Set stores an item in the cache.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= c.maxItems {
		c.evictOldest()
	}

	c.items[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheItem)
}

// Len returns the number of items in the cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// evictOldest removes expired items, then the oldest 10% if still at
// capacity (must be called with lock held).
func (c *Cache) evictOldest() {
	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}

	if len(c.items) < c.maxItems {
		return
	}

	toRemove := c.maxItems / 10
	if toRemove < 1 {
		toRemove = 1
	}

	var oldest []string
	var oldestTimes []time.Time

	for key, item := range c.items {
		if len(oldest) < toRemove {
			oldest = append(oldest, key)
			oldestTimes = append(oldestTimes, item.expiresAt)
			continue
		}
		for i, t := range oldestTimes {
			if item.expiresAt.Before(t) {
				oldest[i] = key
				oldestTimes[i] = item.expiresAt
				break
			}
		}
	}

	for _, key := range oldest {
		delete(c.items, key)
	}
}

// cleanup periodically removes expired items.
func (c *Cache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.items {
			if now.After(item.expiresAt) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}

// GetItems retrieves a cached canonical item list.
func (c *Cache) GetItems(key string) ([]Item, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	items, ok := val.([]Item)
	return items, ok
}

// GetRating retrieves a cached rating record.
func (c *Cache) GetRating(key string) (*RatingRecord, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	rec, ok := val.(*RatingRecord)
	return rec, ok
}

// GetGenres retrieves a cached genre table.
func (c *Cache) GetGenres(key string) ([]Genre, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	genres, ok := val.([]Genre)
	return genres, ok
}
