// Package views assembles cached read models of game state from indexer rows.
package views

import (
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	cacheapi "github.com/bibliothecadao/eternum-viewcache/api"
	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

const instrumentationName = "github.com/bibliothecadao/eternum-viewcache/views"

// defaultFetchTimeout bounds one shared view build.
const defaultFetchTimeout = 30 * time.Second

// noOwner stands in for the owner when no account is connected.
const noOwner = "0x0"

/*
Logger receives fallback warnings. *zap.SugaredLogger satisfies it.
*/
type Logger interface {
	Warnw(msg string, keysAndValues ...interface{})
}

/*
Client serves the nine views through a shared cache.

Every view method is read-through: a fresh cached snapshot is returned as is;
otherwise the indexer is queried, the rows are shaped into a snapshot, and the
snapshot is cached. Concurrent misses on one key share a single indexer
round trip.

Returned views are copies; changing one does not affect the cache or other
callers.

View methods never fail. When the indexer errors, a zeroed snapshot of the
same shape is returned, a warning is logged, and nothing is cached.
*/
type Client struct {
	idx   indexer.Indexer
	cache cacheapi.Cache[any]

	account func() string
	now     func() time.Time
	log     Logger
	tracer  trace.Tracer

	fetchTimeout time.Duration

	flight singleflight.Group
}

type Option func(*Client)

// WithAccount sets the connected account lookup. It may return "".
func WithAccount(account func() string) Option {
	return func(c *Client) { c.account = account }
}

func WithLogger(l Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithFetchTimeout bounds one indexer build. Non-positive values keep the
// default of 30s.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

func New(idx indexer.Indexer, cache cacheapi.Cache[any], opts ...Option) *Client {
	c := &Client{
		idx:     idx,
		cache:   cache,
		account: func() string { return "" },
		now:     time.Now,
		log:     zap.NewNop().Sugar(),
		tracer:  otel.Tracer(instrumentationName),

		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache exposes the underlying cache so writers can invalidate after a
// state-changing transaction.
func (c *Client) Cache() cacheapi.Cache[any] {
	return c.cache
}

// owner is the connected account, or "0x0" when there is none.
func (c *Client) owner() string {
	if a := strings.TrimSpace(c.account()); a != "" {
		return a
	}
	return noOwner
}
