// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/bibliothecadao/eternum-viewcache/types"
)

/*
Strategy is the interface that all expiration rules must follow. The cache
asks the strategy whether an entry is still live and lets it stamp entries on
reads and writes, so the rule can change without touching the cache.
*/
type Strategy interface {

	// IsExpired reports whether the entry must no longer be served at now.
	IsExpired(*types.CacheEntry, time.Time) bool

	// OnAccess is called whenever a cache entry is read successfully.
	OnAccess(*types.CacheEntry, time.Time)

	// OnWrite is called whenever a cache entry is written or replaced.
	OnWrite(*types.CacheEntry, time.Time)
}
