// Package cache is a process-local, size-bounded key/value cache with
// per-entry expiry. It memoizes expensive read queries; it is never a source
// of truth and is not coherent across processes.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache holds at most maxEntries values of type V and evicts the least
// recently used entry on overflow. It is safe for concurrent use.
type Cache[V any] struct {
	mu      sync.Mutex
	lru     *simplelru.LRU[string, entry[V]]
	now     func() time.Time
	metrics *Metrics
}

type Option func(*options)

type options struct {
	now     func() time.Time
	metrics *Metrics
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithMetrics records hits, misses, expirations and evictions on m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// New creates an empty cache bounded to maxEntries.
func New[V any](maxEntries int, opts ...Option) (*Cache[V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("cache: maxEntries must be positive, got %d", maxEntries)
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache[V]{now: o.now, metrics: o.metrics}
	lru, err := simplelru.NewLRU[string, entry[V]](maxEntries, nil)
	if err != nil {
		return nil, err
	}
	c.lru = lru
	return c, nil
}

// MustNew is New for bounds known to be valid.
func MustNew[V any](maxEntries int, opts ...Option) *Cache[V] {
	c, err := New[V](maxEntries, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the live value for key and marks it most recently used.
// An expired entry is removed and reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	// Peek first so an expired entry is not promoted before removal.
	e, ok := c.lru.Peek(key)
	if !ok {
		c.metrics.missed()
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		c.removeExpired(key)
		c.metrics.missed()
		return zero, false
	}

	c.lru.Get(key)
	c.metrics.hit()
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl stores nothing.
// At most one entry is evicted per call.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lru.Add(key, entry[V]{value: value, expiresAt: c.now().Add(ttl)}) {
		c.metrics.evicted()
	}
}

// Delete drops key if present.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(key)
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Purge()
}

// Len counts held entries, including expired ones not yet read.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

func (c *Cache[V]) removeExpired(key string) {
	c.lru.Remove(key)
	c.metrics.expired()
}
