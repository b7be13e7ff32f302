// Command viewctl prints Eternum views as JSON and exercises the view cache.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	cache "github.com/bibliothecadao/eternum-viewcache"
	"github.com/bibliothecadao/eternum-viewcache/config"
	"github.com/bibliothecadao/eternum-viewcache/indexer"
	"github.com/bibliothecadao/eternum-viewcache/indexer/sqlite"
	"github.com/bibliothecadao/eternum-viewcache/metrics"
	"github.com/bibliothecadao/eternum-viewcache/tracing"
	"github.com/bibliothecadao/eternum-viewcache/views"
)

type metadata struct {
	cfg      config.Config
	client   *views.Client
	store    *cache.BoundedCache[any]
	counters *metrics.Counters
	registry *prometheus.Registry
	log      *zap.SugaredLogger
	closers  []func() error
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "viewctl: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "viewctl"
	app.Usage = "inspect cached Eternum views"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "env",
			Value: "",
			Usage: " load settings from `FILE` (default .env when present)",
		},
		cli.StringFlag{
			Name:  "sqlite, s",
			Value: "",
			Usage: " query a local indexer database `DSN` instead of Torii",
		},
		cli.StringFlag{
			Name:  "torii, t",
			Value: "",
			Usage: " Torii SQL endpoint `URL` (overrides TORII_SQL_URL)",
		},
		cli.StringFlag{
			Name:  "account, a",
			Value: "",
			Usage: " connected account `ADDRESS` (overrides VIEWS_ACCOUNT)",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {
		switch c.Args().Get(0) {
		case "", "version", "help", "h":
			return nil
		}

		m, err := setup(c)
		if err != nil {
			return err
		}
		m.w = c.App.Writer
		m.e = c.App.ErrWriter
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		var errs []error
		for _, closeFn := range m.closers {
			errs = append(errs, closeFn())
		}
		_ = m.log.Sync()
		return errors.Join(errs...)
	}

	return app
}

func loadEnv(file string) error {
	if file != "" {
		return godotenv.Load(file)
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setup wires config, logging, metrics, the indexer and the view client.
func setup(c *cli.Context) (*metadata, error) {
	if err := loadEnv(c.GlobalString("env")); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}
	if url := c.GlobalString("torii"); url != "" {
		cfg.ToriiURL = url
	}
	if account := c.GlobalString("account"); account != "" {
		cfg.Account = account
	}

	logger, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	log := logger.Sugar()

	m := &metadata{
		cfg:      cfg,
		counters: &metrics.Counters{},
		registry: prometheus.NewRegistry(),
		log:      log,
	}

	shutdown, err := tracing.Setup(context.Background(), "viewctl", cfg.TraceEndpoint)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}
	m.closers = append(m.closers, func() error { return shutdown(context.Background()) })

	prom, err := metrics.NewPrometheus(m.registry)
	if err != nil {
		return nil, err
	}

	var exec indexer.Executor
	if dsn := c.GlobalString("sqlite"); dsn != "" {
		db, err := sqlite.Open(dsn)
		if err != nil {
			return nil, err
		}
		m.closers = append(m.closers, db.Close)
		exec = db
	} else {
		exec = indexer.NewHTTPExecutor(cfg.ToriiURL, cfg.HTTPOptions())
	}

	m.store = cache.NewBoundedCache[any](cfg.CacheOptions(metrics.Fanout{m.counters, prom}))
	m.client = views.New(indexer.NewSQLAPI(exec), m.store,
		views.WithAccount(func() string { return cfg.Account }),
		views.WithLogger(log),
	)
	return m, nil
}
