package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/urfave/cli"
)

// runBench reads realm views from many goroutines and prints throughput and
// cache counters. Ids cycle through 1..entities so most reads hit the cache.
func runBench(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	ctx := context.Background()

	goroutines := max(c.Int("goroutines"), 1)
	opsPerG := max(c.Int("ops"), 1)
	entities := max(c.Int("entities"), 1)

	fmt.Fprintln(m.w, "\n================ VIEW CACHE BENCHMARK =================")
	fmt.Fprintln(m.w, "CONFIG")
	fmt.Fprintln(m.w, "---------------------------------")
	fmt.Fprintln(m.w, "Cache TTL    :", m.cfg.CacheTTL)
	fmt.Fprintln(m.w, "Capacity     :", m.cfg.CacheMaxSize)
	fmt.Fprintln(m.w, "Entities     :", entities)
	fmt.Fprintln(m.w, "Goroutines   :", goroutines)
	fmt.Fprintln(m.w, "Ops/Goroutine:", opsPerG)
	fmt.Fprintln(m.w, "---------------------------------")

	// ---------------- Warmup ----------------
	for i := 0; i < entities; i++ {
		m.client.Realm(ctx, uint64(i+1))
	}

	// ---------------- Load Test ----------------
	start := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				m.client.Realm(ctx, uint64((id+j)%entities+1))
			}
		}(i)
	}

	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG
	s := m.counters.Snapshot()

	fmt.Fprintln(m.w, "\n================ RESULTS =================")
	fmt.Fprintf(m.w, "Total Operations : %d\n", totalOps)
	fmt.Fprintf(m.w, "Total Time       : %v\n", duration)
	fmt.Fprintf(m.w, "Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Fprintf(m.w, "Cache Size       : %d\n", m.store.Size())
	fmt.Fprintf(m.w, "Hit Ratio        : %.4f\n", s.HitRatio())
	fmt.Fprintln(m.w, "=========================================")

	return printJson(m.w, s)
}
