// This file implements LRU eviction.

package eviction

// lruNode is one key inside the recency list.
type lruNode struct {
	key string

	// prev is the node used more recently than this one.
	prev *lruNode

	// next is the node used less recently than this one.
	next *lruNode
}

// lru keeps keys in a doubly-linked list ordered by last use.
// head is the most recently used key, tail the least.
type lru struct {
	// nodes gives O(1) access to a key's place in the list.
	nodes map[string]*lruNode

	head *lruNode
	tail *lruNode
}

func newLRU() *lru {
	return &lru{nodes: make(map[string]*lruNode)}
}

// OnGet moves a read key to the front of the list.
func (l *lru) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
	}
}

// OnPut adds a new key at the front. Known keys are not touched.
func (l *lru) OnPut(k string) {
	if _, ok := l.nodes[k]; ok {
		return
	}
	n := &lruNode{key: k}
	l.nodes[k] = n
	l.addFront(n)
}

// Evict removes and returns the key at the tail.
func (l *lru) Evict() string {
	if l.tail == nil {
		return ""
	}

	k := l.tail.key
	l.unlink(l.tail)
	delete(l.nodes, k)
	return k
}

// Remove forgets a key that was deleted by the cache.
func (l *lru) Remove(k string) {
	if n, ok := l.nodes[k]; ok {
		l.unlink(n)
		delete(l.nodes, k)
	}
}

// tracked is the number of keys in the list.
func (l *lru) tracked() int {
	return len(l.nodes)
}

func (l *lru) addFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	if l.tail == nil {
		l.tail = n
	}
}

// unlink detaches n, fixing up its neighbours and the list ends.
func (l *lru) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (l *lru) moveToFront(n *lruNode) {
	if l.head == n {
		return
	}
	l.unlink(n)
	l.addFront(n)
}
