package engine

import (
	"time"

	"github.com/bibliothecadao/eternum-viewcache/expiration"
	"github.com/bibliothecadao/eternum-viewcache/types"
)

/*
CacheEngine is the policy layer of the cache.
It decides the "rules", NOT storage.

It decides:
- When an entry is expired
- How timestamps are stamped on reads and writes
- How metrics are recorded
- What "now" is

It does NOT:
- Store data
- Handle locking
- Decide eviction order
*/
type CacheEngine struct {

	// Expiration controls when an entry stops being served.
	// If this is nil, entries never expire based on time.
	Expiration expiration.Strategy

	// Metrics is how we keep track of what the cache is doing.
	Metrics types.Metrics

	// Now is the clock. Tests replace it to step over TTL boundaries
	// without sleeping.
	Now func() time.Time
}

/*
NewCacheEngine creates a CacheEngine. A nil metrics sink or clock is replaced
by a no-op sink and time.Now.
*/
func NewCacheEngine(
	exp expiration.Strategy,
	metrics types.Metrics,
	now func() time.Time,
) *CacheEngine {
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if now == nil {
		now = time.Now
	}

	return &CacheEngine{
		Expiration: exp,
		Metrics:    metrics,
		Now:        now,
	}
}

// IsExpired checks whether a cache entry is expired at the engine's current time.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry) bool {
	return e.isExpiredAt(ent, e.Now())
}

func (e *CacheEngine) isExpiredAt(ent *types.CacheEntry, now time.Time) bool {
	return e.Expiration != nil && e.Expiration.IsExpired(ent, now)
}

// Sweeper returns a predicate bound to a single instant, so a full sweep
// judges every entry against the same clock reading.
func (e *CacheEngine) Sweeper() func(*types.CacheEntry) bool {
	now := e.Now()
	return func(ent *types.CacheEntry) bool {
		return e.isExpiredAt(ent, now)
	}
}

// OnRead is called every time the cache successfully returns a value.
func (e *CacheEngine) OnRead(ent *types.CacheEntry) {
	e.Metrics.Hit()
	if e.Expiration != nil {
		e.Expiration.OnAccess(ent, e.Now())
	}
}

// OnWrite stamps a fresh entry before it is stored.
func (e *CacheEngine) OnWrite(ent *types.CacheEntry) {
	now := e.Now()
	ent.CreatedAt = now
	if e.Expiration != nil {
		e.Expiration.OnWrite(ent, now)
	}
}
