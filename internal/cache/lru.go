package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU represents a LRU cache
type LRU[K comparable, V any] struct {
	cache *lru.Cache[K, V]
	mu    sync.Mutex
}

// NewLRU creates a new LRU Cache.
func NewLRU[K comparable, V any](maxEntries int) (*LRU[K, V], error) {
	cache, err := lru.New[K, V](maxEntries)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{
		cache: cache,
	}, nil
}

// Get looks up a key's value from the cache.
func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Get(key)
}

// Add adds a value to the cache.
func (c *LRU[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(key, value)
}

// Remove removes a key from the cache.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Remove(key)
}

// Clear purges all stored items from the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Purge()
}

// Len returns the number of items in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Len()
}
