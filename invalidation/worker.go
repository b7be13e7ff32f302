// Package invalidation drops cached views when the indexer reports that the
// entities behind them changed.
package invalidation

import (
	"sync"
	"sync/atomic"

	cacheapi "github.com/bibliothecadao/eternum-viewcache/api"
)

/*
Target names what one update makes stale.

Keys are removed exactly; Prefixes remove whole namespaces. Entity prefixes
end in ':' so "realm:4:" never matches "realm:42:".
*/
type Target struct {
	Keys     []string
	Prefixes []string
}

func (t Target) empty() bool {
	return len(t.Keys) == 0 && len(t.Prefixes) == 0
}

/*
Worker applies invalidations to a cache in the background.

Submit never blocks. When the queue is full the target is dropped and
counted, and the affected views go stale until their TTL runs out.
*/
type Worker struct {
	cache cacheapi.Cache[any]

	// ch holds pending targets.
	ch chan Target

	dropped atomic.Uint64

	// wg waits for the worker during Close.
	wg sync.WaitGroup

	closeOnce sync.Once
}

// NewWorker starts one background worker with the given queue size.
func NewWorker(cache cacheapi.Cache[any], buffer int) *Worker {
	if buffer < 1 {
		buffer = 1
	}
	w := &Worker{
		cache: cache,
		ch:    make(chan Target, buffer),
	}

	w.wg.Add(1)
	go w.run()

	return w
}

// Submit queues t and reports whether it was accepted. Must not be called
// after Close.
func (w *Worker) Submit(t Target) bool {
	if t.empty() {
		return true
	}
	select {
	case w.ch <- t:
		return true
	default:
		w.dropped.Add(1)
		return false
	}
}

// Dropped is the number of targets rejected by a full queue.
func (w *Worker) Dropped() uint64 {
	return w.dropped.Load()
}

func (w *Worker) run() {
	defer w.wg.Done()

	for t := range w.ch {
		for _, key := range t.Keys {
			w.cache.Invalidate(key)
		}
		for _, prefix := range t.Prefixes {
			w.cache.InvalidateByPrefix(prefix)
		}
	}
}

/*
Close stops accepting targets and waits until every queued one is applied.
*/
func (w *Worker) Close() {
	w.closeOnce.Do(func() {
		close(w.ch)
	})
	w.wg.Wait()
}
