// Package cache is a small in-memory TTL cache. The API uses it to hold
// recent AI news-analysis results so re-rendering a supplier does not re-call
// the capability.
package cache

import (
	"sync"
	"time"
)

type item struct {
	value     interface{}
	expiresAt time.Time
}

// Cache is a concurrency-safe map with per-entry expiration.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
}

// New creates a cache and starts a background sweep for expired entries.
func New() *Cache {
	c := &Cache{items: make(map[string]item)}
	go func() {
		for {
			time.Sleep(time.Minute)
			c.DeleteExpired()
		}
	}()
	return c
}

// Set stores a value for the given duration.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item{value: value, expiresAt: time.Now().Add(ttl)}
}

// Get returns the value and whether a live entry was found.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, found := c.items[key]
	if !found || time.Now().After(it.expiresAt) {
		return nil, false
	}
	return it.value, true
}

// Delete removes one entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteExpired removes all expired entries.
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, it := range c.items {
		if now.After(it.expiresAt) {
			delete(c.items, k)
		}
	}
}

// Clear removes everything.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]item)
}
