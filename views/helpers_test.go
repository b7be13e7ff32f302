package views

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	cache "github.com/bibliothecadao/eternum-viewcache"
	"github.com/bibliothecadao/eternum-viewcache/indexer"
	"github.com/bibliothecadao/eternum-viewcache/indexer/mocks"
)

var testNow = time.Unix(1000, 0)

type fixture struct {
	ctrl   *gomock.Controller
	idx    *mocks.MockIndexer
	cache  *cache.BoundedCache[any]
	logs   *observer.ObservedLogs
	spans  *tracetest.SpanRecorder
	client *Client
}

func newFixture(t *testing.T, account string) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	idx := mocks.NewMockIndexer(ctrl)
	return newFixtureWith(t, ctrl, idx, idx, account)
}

// rankedIndexer adds the direct leaderboard lookup to a mock indexer.
type rankedIndexer struct {
	*mocks.MockIndexer
	*mocks.MockAddressLeaderboard
}

func newRankedFixture(t *testing.T, account string) (*fixture, *mocks.MockAddressLeaderboard) {
	t.Helper()

	ctrl := gomock.NewController(t)
	idx := mocks.NewMockIndexer(ctrl)
	lb := mocks.NewMockAddressLeaderboard(ctrl)
	return newFixtureWith(t, ctrl, idx, rankedIndexer{idx, lb}, account), lb
}

func newFixtureWith(t *testing.T, ctrl *gomock.Controller, idx *mocks.MockIndexer, impl indexer.Indexer, account string) *fixture {
	t.Helper()

	core, logs := observer.New(zapcore.WarnLevel)
	spans := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(spans))

	c := cache.NewBoundedCache[any](cache.Options{
		TTL:     5 * time.Second,
		MaxSize: 100,
		Clock:   func() time.Time { return testNow },
	})

	client := New(impl, c,
		WithAccount(func() string { return account }),
		WithLogger(zap.New(core).Sugar()),
		WithClock(func() time.Time { return testNow }),
		WithTracer(tp.Tracer("test")),
	)

	return &fixture{
		ctrl:   ctrl,
		idx:    idx,
		cache:  c,
		logs:   logs,
		spans:  spans,
		client: client,
	}
}

func ptr[T any](v T) *T {
	return &v
}
