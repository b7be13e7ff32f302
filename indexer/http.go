package indexer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// HTTPOptions configures an HTTPExecutor.
type HTTPOptions struct {
	// Timeout bounds one request. Zero means no timeout beyond ctx.
	Timeout time.Duration

	// RateLimit is queries per second. Zero disables limiting.
	RateLimit float64
	Burst     int

	// Client replaces http.DefaultClient's transport settings. Optional.
	Client *http.Client
}

/*
HTTPExecutor sends queries to Torii's SQL endpoint as
GET <endpoint>?query=<sql> and returns the raw JSON body.

Requests wait on a token bucket so a burst of cache misses cannot flood the
indexer.
*/
type HTTPExecutor struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

func NewHTTPExecutor(endpoint string, opts HTTPOptions) *HTTPExecutor {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	if opts.Timeout > 0 {
		c := *client
		c.Timeout = opts.Timeout
		client = &c
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &HTTPExecutor{
		endpoint: endpoint,
		client:   client,
		limiter:  limiter,
	}
}

func (e *HTTPExecutor) Query(ctx context.Context, query string) ([]byte, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(e.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &QueryError{Status: resp.StatusCode, Err: ErrUnavailable}
	}
	return body, nil
}
