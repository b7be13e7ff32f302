package cache

/*
Cache defines the PUBLIC contract of the bounded view cache.
The view layer and the write/transaction layer program against this interface;
eviction, expiration and locking stay hidden behind it.

Every operation is total: there is no error channel.
*/
type Cache[V any] interface {

	/*
		Get returns the value stored under key.

		BEHAVIOR:
		---------
		- Present and not expired: returns (value, true) and marks the key as most recently used
		- Expired: the entry is deleted as a side effect and (zero, false) is returned
		- Absent: (zero, false)
	*/
	Get(key string) (V, bool)

	/*
		Set stores value under key.

		BEHAVIOR:
		---------
		- Expired entries are swept first
		- A new key on a full cache evicts exactly one least-recently-used entry
		- An existing key is deleted and reinserted: TTL and recency both restart
	*/
	Set(key string, value V)

	/*
		Invalidate removes key. Removing a missing key is a no-op.
	*/
	Invalidate(key string)

	/*
		InvalidateAll removes every entry.
	*/
	InvalidateAll()

	/*
		InvalidateByPrefix removes every entry whose key starts with prefix
		and returns how many were removed.

		USE CASES:
		----------
		- Namespace-scoped invalidation after a mutation, e.g. "realm:" after a transfer
	*/
	InvalidateByPrefix(prefix string) int

	/*
		Size is the number of entries held, counting expired entries that
		no Get or Set has swept yet.
	*/
	Size() int
}
