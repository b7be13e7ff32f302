package indexer_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

func TestHTTPExecutorSendsQuery(t *testing.T) {
	got := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"entity_id": 7, "coord_x": 1, "coord_y": 2}]`))
	}))
	defer srv.Close()

	api := indexer.NewSQLAPI(indexer.NewHTTPExecutor(srv.URL+"/sql", indexer.HTTPOptions{Timeout: time.Second}))

	structures, err := api.FetchAllStructures(context.Background())
	require.NoError(t, err)
	require.Len(t, structures, 1)
	assert.Equal(t, uint64(7), structures[0].EntityID)
	assert.Contains(t, <-got, "`s1_eternum-Structure`")
}

func TestHTTPExecutorStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	api := indexer.NewSQLAPI(indexer.NewHTTPExecutor(srv.URL, indexer.HTTPOptions{}))

	_, err := api.FetchEventsCount(context.Background())

	var qe *indexer.QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, http.StatusBadGateway, qe.Status)
	assert.Equal(t, "events_count", qe.Query)
	assert.ErrorIs(t, err, indexer.ErrUnavailable)
}

func TestHTTPExecutorRateLimitHonoursContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	exec := indexer.NewHTTPExecutor(srv.URL, indexer.HTTPOptions{RateLimit: 0.001, Burst: 1})

	_, err := exec.Query(context.Background(), "SELECT 1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = exec.Query(ctx, "SELECT 1")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
