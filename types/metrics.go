package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.
*/
type Metrics interface {

	// Hit is called when a Get returns a live value.
	Hit()

	// Miss is called when a Get finds nothing, or finds an entry that has already expired.
	Miss()

	// Eviction is called when a key is removed because the cache is full and needs space.
	Eviction()

	// Expire is called when a key is removed because it has passed its TTL,
	// either on read or during the sweep that precedes every Set.
	Expire()

	// Invalidate is called once per key removed by Invalidate, InvalidateAll or InvalidateByPrefix.
	Invalidate()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Callers that do not care about metrics still get a working cache,
without nil checks on every event.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Eviction()   {}
func (NoopMetrics) Expire()     {}
func (NoopMetrics) Invalidate() {}
