package eviction

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the interface an eviction strategy follows.

The cache tells the policy about every read, write and removal, and asks it
for a victim only when a new key would push the entry count past MaxSize.
The cache never inspects the policy's bookkeeping.
*/
type Policy interface {

	// OnGet is called after a key is read successfully.
	OnGet(string)

	// OnPut is called after a key is written. A key the policy already
	// tracks is left where it is; the cache calls Remove first when it
	// wants a rewritten key to rank as fresh.
	OnPut(string)

	// Remove drops a key that left the cache for any reason other than Evict.
	Remove(string)

	// Evict picks the next key to drop and forgets it.
	// It returns "" when nothing is tracked.
	Evict() string
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used): evicts the key that has gone longest without a read or a write.
	LRU PolicyType = "LRU"
)

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy(t PolicyType) Policy {
	switch t {
	case LRU, "":
		return newLRU()
	default:
		panic("unknown eviction policy: " + string(t))
	}
}
