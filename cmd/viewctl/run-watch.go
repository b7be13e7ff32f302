package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"

	"github.com/bibliothecadao/eternum-viewcache/invalidation"
)

var errNoFeed = errors.New("no update feed: set TORII_UPDATES_URL or --updates")

func runWatch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	url := c.String("updates")
	if url == "" {
		url = m.cfg.UpdatesURL
	}
	if url == "" {
		return errNoFeed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := c.String("metrics-addr"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				m.log.Errorw("metrics server stopped", "addr", addr, "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		m.log.Infow("serving metrics", "addr", addr)
	}

	worker := invalidation.NewWorker(m.store, c.Int("queue"))
	defer worker.Close()

	m.log.Infow("watching update feed", "url", url)
	err := invalidation.NewListener(url, worker, m.log).Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	m.log.Infow("update feed closed",
		"dropped", worker.Dropped(),
		"invalidated", m.counters.Snapshot().Invalidated,
	)
	return err
}
