package cache

import (
	"strings"
	"sync"
	"time"

	cacheapi "github.com/bibliothecadao/eternum-viewcache/api"
	"github.com/bibliothecadao/eternum-viewcache/engine"
	evict "github.com/bibliothecadao/eternum-viewcache/eviction"
	"github.com/bibliothecadao/eternum-viewcache/expiration"
	"github.com/bibliothecadao/eternum-viewcache/types"
)

var _ cacheapi.Cache[any] = (*BoundedCache[any])(nil)

// Options configures a BoundedCache.
type Options struct {
	// TTL is the freshness window of every entry. Zero means expiration.DefaultTTL.
	TTL time.Duration

	// MaxSize caps the number of entries. Non-positive values are coerced to 1.
	MaxSize int

	// Metrics receives hit/miss/eviction/expire/invalidate events. Optional.
	Metrics types.Metrics

	// Clock replaces time.Now. Optional.
	Clock func() time.Time
}

/*
BoundedCache is a key -> value store with a fixed TTL per entry and a maximum
entry count, evicting the least recently used entry when a new key arrives on
a full cache.

It connects:
- storage (a plain map)
- eviction (recency list)
- the engine (expiration + metrics + clock)

One mutex covers all of them; every operation runs to completion under it.
*/
type BoundedCache[V any] struct {
	mu sync.Mutex

	// entries holds the stored values.
	entries map[string]*types.CacheEntry

	// eviction tracks recency for every key in entries.
	eviction evict.Policy

	// engine contains the rules: TTL, metrics and the clock.
	engine *engine.CacheEngine

	maxSize int
}

// NewBoundedCache builds an empty cache from opts.
func NewBoundedCache[V any](opts Options) *BoundedCache[V] {
	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = 1
	}

	return &BoundedCache[V]{
		entries:  make(map[string]*types.CacheEntry),
		eviction: evict.NewEvictionPolicy(evict.LRU),
		engine: engine.NewCacheEngine(
			&expiration.ExpireAfterWrite{TTL: opts.TTL},
			opts.Metrics,
			opts.Clock,
		),
		maxSize: maxSize,
	}
}

/*
Get retrieves a live value and refreshes its recency.
*/
func (c *BoundedCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		c.engine.Metrics.Miss()
		return zero, false
	}

	if c.engine.IsExpired(ent) {
		c.engine.Metrics.Expire()
		c.engine.Metrics.Miss()
		c.remove(key)
		return zero, false
	}

	c.engine.OnRead(ent)
	c.eviction.OnGet(key)

	v, _ := ent.Value.(V)
	return v, true
}

/*
Set stores value under key, restarting its TTL and recency.
*/
func (c *BoundedCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweepExpired()

	if _, exists := c.entries[key]; exists {
		// Delete and reinsert so the key ranks as freshest.
		c.remove(key)
	} else if len(c.entries) >= c.maxSize {
		if evicted := c.eviction.Evict(); evicted != "" {
			c.engine.Metrics.Eviction()
			delete(c.entries, evicted)
		}
	}

	ent := &types.CacheEntry{
		Key:   key,
		Value: value,
	}
	c.engine.OnWrite(ent)

	c.entries[key] = ent
	c.eviction.OnPut(key)
}

/*
Invalidate deletes a key. Missing keys are ignored.
*/
func (c *BoundedCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.engine.Metrics.Invalidate()
		c.remove(key)
	}
}

/*
InvalidateAll clears the cache.
*/
func (c *BoundedCache[V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for range c.entries {
		c.engine.Metrics.Invalidate()
	}
	c.entries = make(map[string]*types.CacheEntry)
	c.eviction = evict.NewEvictionPolicy(evict.LRU)
}

/*
InvalidateByPrefix deletes every key starting with prefix.
*/
func (c *BoundedCache[V]) InvalidateByPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.engine.Metrics.Invalidate()
			c.remove(key)
			removed++
		}
	}
	return removed
}

/*
Size returns the number of stored entries, expired or not.
*/
func (c *BoundedCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// sweepExpired drops every expired entry. Callers hold mu.
func (c *BoundedCache[V]) sweepExpired() {
	expired := c.engine.Sweeper()
	for key, ent := range c.entries {
		if expired(ent) {
			c.engine.Metrics.Expire()
			c.remove(key)
		}
	}
}

// remove deletes key from storage and recency tracking. Callers hold mu.
func (c *BoundedCache[V]) remove(key string) {
	delete(c.entries, key)
	c.eviction.Remove(key)
}
