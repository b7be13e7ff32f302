// Package metrics provides types.Metrics implementations for the view cache.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bibliothecadao/eternum-viewcache/types"
)

var (
	_ types.Metrics = (*Counters)(nil)
	_ types.Metrics = (*Prometheus)(nil)
)

/*
Counters counts cache events in memory.
It is safe for concurrent use and cheap enough for the hot path.
*/
type Counters struct {
	hits        atomic.Uint64
	misses      atomic.Uint64
	evictions   atomic.Uint64
	expired     atomic.Uint64
	invalidated atomic.Uint64
}

func (c *Counters) Hit()        { c.hits.Add(1) }
func (c *Counters) Miss()       { c.misses.Add(1) }
func (c *Counters) Eviction()   { c.evictions.Add(1) }
func (c *Counters) Expire()     { c.expired.Add(1) }
func (c *Counters) Invalidate() { c.invalidated.Add(1) }

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Evictions   uint64 `json:"evictions"`
	Expired     uint64 `json:"expired"`
	Invalidated uint64 `json:"invalidated"`
}

// HitRatio is hits over lookups, 0 when nothing was looked up.
func (s Snapshot) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		Expired:     c.expired.Load(),
		Invalidated: c.invalidated.Load(),
	}
}

/*
Prometheus exports cache events as one counter vector,
eternum_view_cache_events_total, labelled by event.
*/
type Prometheus struct {
	events *prometheus.CounterVec

	hit, miss, eviction, expire, invalidate prometheus.Counter
}

// NewPrometheus registers the counter vector on reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eternum",
		Subsystem: "view_cache",
		Name:      "events_total",
		Help:      "Bounded view cache events by kind.",
	}, []string{"event"})
	if err := reg.Register(events); err != nil {
		return nil, err
	}

	return &Prometheus{
		events:     events,
		hit:        events.WithLabelValues("hit"),
		miss:       events.WithLabelValues("miss"),
		eviction:   events.WithLabelValues("eviction"),
		expire:     events.WithLabelValues("expire"),
		invalidate: events.WithLabelValues("invalidate"),
	}, nil
}

func (p *Prometheus) Hit()        { p.hit.Inc() }
func (p *Prometheus) Miss()       { p.miss.Inc() }
func (p *Prometheus) Eviction()   { p.eviction.Inc() }
func (p *Prometheus) Expire()     { p.expire.Inc() }
func (p *Prometheus) Invalidate() { p.invalidate.Inc() }

// Fanout forwards every event to each of its sinks.
type Fanout []types.Metrics

func (f Fanout) Hit() {
	for _, m := range f {
		m.Hit()
	}
}

func (f Fanout) Miss() {
	for _, m := range f {
		m.Miss()
	}
}

func (f Fanout) Eviction() {
	for _, m := range f {
		m.Eviction()
	}
}

func (f Fanout) Expire() {
	for _, m := range f {
		m.Expire()
	}
}

func (f Fanout) Invalidate() {
	for _, m := range f {
		m.Invalidate()
	}
}
