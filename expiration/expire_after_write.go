package expiration

import (
	"time"

	"github.com/bibliothecadao/eternum-viewcache/types"
)

// DefaultTTL is the freshness window used when a caller does not pick one.
const DefaultTTL = 5 * time.Second

/*
ExpireAfterWrite gives every entry a fixed lifetime measured from its last
write. Reads do not extend it: a view computed at t is served until t+TTL and
never after, however often it is read.
*/
type ExpireAfterWrite struct {
	TTL time.Duration
}

// IsExpired is true from the ExpireAt instant onwards.
func (e *ExpireAfterWrite) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return !ent.ExpireAt.IsZero() && !now.Before(ent.ExpireAt)
}

// OnAccess leaves the entry alone.
func (e *ExpireAfterWrite) OnAccess(*types.CacheEntry, time.Time) {}

// OnWrite (re)starts the TTL clock at now. Only ExpireAt is touched; the
// engine owns CreatedAt.
func (e *ExpireAfterWrite) OnWrite(ent *types.CacheEntry, now time.Time) {
	ent.ExpireAt = now.Add(e.ttl())
}

func (e *ExpireAfterWrite) ttl() time.Duration {
	if e.TTL <= 0 {
		return DefaultTTL
	}
	return e.TTL
}
