package invalidation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/bibliothecadao/eternum-viewcache"
	cacheapi "github.com/bibliothecadao/eternum-viewcache/api"
	"github.com/bibliothecadao/eternum-viewcache/views"
)

func seeded(t *testing.T, keys ...string) *cache.BoundedCache[any] {
	t.Helper()

	c := cache.NewBoundedCache[any](cache.Options{TTL: time.Minute, MaxSize: 100})
	for _, k := range keys {
		c.Set(k, k)
	}
	return c
}

func has(c cacheapi.Cache[any], key string) bool {
	_, ok := c.Get(key)
	return ok
}

func TestWorkerAppliesRoutedTargets(t *testing.T) {
	c := seeded(t,
		views.RealmKey(4, "0xabc"), views.RealmKey(4, "0x0"), views.RealmKey(42, "0xabc"),
		"player:0xabc", "mapArea:0:0:3", "market", "events::::50:0",
	)
	w := NewWorker(c, 8)

	assert.True(t, w.Submit(Route(Update{Model: "s1_eternum-Structure", EntityID: 4})))
	w.Close()

	assert.False(t, has(c, views.RealmKey(4, "0xabc")))
	assert.False(t, has(c, views.RealmKey(4, "0x0")), "every account's snapshot goes")
	assert.True(t, has(c, views.RealmKey(42, "0xabc")), "entity prefixes stop at the id")
	assert.False(t, has(c, "player:0xabc"))
	assert.False(t, has(c, "mapArea:0:0:3"))
	assert.True(t, has(c, "market"))
	assert.True(t, has(c, "events::::50:0"))
	assert.Zero(t, w.Dropped())
}

func TestWorkerCloseIsIdempotent(t *testing.T) {
	w := NewWorker(seeded(t), 0)
	w.Close()
	w.Close()
}

// blockingCache parks the worker inside Invalidate until released.
type blockingCache struct {
	cacheapi.Cache[any]
	started chan struct{}
	release chan struct{}
}

func (b *blockingCache) Invalidate(string) {
	b.started <- struct{}{}
	<-b.release
}

func TestWorkerDropsWhenQueueFull(t *testing.T) {
	bc := &blockingCache{
		Cache:   seeded(t),
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	w := NewWorker(bc, 1)

	require.True(t, w.Submit(Target{Keys: []string{"a"}}))
	<-bc.started

	assert.True(t, w.Submit(Target{Keys: []string{"b"}}))
	assert.False(t, w.Submit(Target{Keys: []string{"c"}}))
	assert.Equal(t, uint64(1), w.Dropped())

	close(bc.release)
	w.Close()
}

func TestRoute(t *testing.T) {
	tests := []struct {
		model string
		want  Target
	}{
		{"s1_eternum-Structure", Target{
			Keys:     []string{"bank:7", "hyperstructure:7"},
			Prefixes: []string{"realm:7:", "player:", "mapArea:"},
		}},
		{"s1_eternum-ExplorerTroops", Target{
			Prefixes: []string{"explorer:7:", "realm:", "player:", "mapArea:"},
		}},
		{"s1_eternum-Tile", Target{Prefixes: []string{views.PrefixMapArea}}},
		{"s1_eternum-Hyperstructure", Target{Keys: []string{"hyperstructure:7"}}},
		{"s1_eternum-SwapEvent", Target{Prefixes: []string{"market", "bank:"}}},
		{"s1_eternum-PlayerRegisteredPoints", Target{Prefixes: []string{"leaderboard:", "player:"}}},
		{"s1_eternum-StoryEvent", Target{Prefixes: []string{"events:"}}},
		{"s1_eternum-Unknown", Target{}},
	}
	for _, tc := range tests {
		t.Run(tc.model, func(t *testing.T) {
			assert.Equal(t, tc.want, Route(Update{Model: tc.model, EntityID: 7}))
		})
	}
}
