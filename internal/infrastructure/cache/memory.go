// Package cache provides a thread-safe in-memory TTL cache used to avoid
// repeating external nutrition lookups for the same query.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
)

type item struct {
	value      interface{}
	expiration time.Time
}

// Memory is an in-memory implementation of domain.CacheRepository.
type Memory struct {
	mu   sync.RWMutex
	data map[string]item
	stop chan struct{}
}

// NewMemory creates a cache and starts a janitor that sweeps expired
// entries every 10 minutes until Close is called.
func NewMemory() *Memory {
	c := &Memory{
		data: make(map[string]item),
		stop: make(chan struct{}),
	}
	go c.janitor()
	return c
}

// Get returns the stored value or domain.ErrCacheMiss when the key is
// absent or expired.
func (c *Memory) Get(_ context.Context, key string) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.data[key]
	if !ok || time.Now().After(it.expiration) {
		return nil, domain.ErrCacheMiss
	}
	return it.value, nil
}

// Set stores a value with the given TTL.
func (c *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = item{value: value, expiration: time.Now().Add(ttl)}
	return nil
}

// Delete removes a key.
func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	return nil
}

// Len reports the current number of entries, expired ones included.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Close stops the janitor goroutine.
func (c *Memory) Close() {
	close(c.stop)
}

func (c *Memory) janitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, it := range c.data {
				if now.After(it.expiration) {
					delete(c.data, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
