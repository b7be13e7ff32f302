package types

import "time"

// CacheEntry is one stored value. It lives only inside the cache and is
// replaced, never updated in place, when its key is written again.
type CacheEntry struct {
	Key       string
	Value     any
	CreatedAt time.Time
	ExpireAt  time.Time // zero => no TTL
}
