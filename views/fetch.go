package views

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// outcome is the result of one view read. Cause is non-nil when View is the
// fallback snapshot.
type outcome[T any] struct {
	View  T
	Cause error
}

func (o outcome[T]) degraded() bool {
	return o.Cause != nil
}

// snapshot is a view type that can hand out copies of itself.
type snapshot[T any] interface {
	clone() T
}

/*
read runs the read-through template shared by every view.

Concurrent misses on one key share a single build. The build runs detached
from any one caller's cancellation and is bounded by the fetch timeout
instead; each caller stops waiting when its own ctx is done.

Every returned view is a copy, so callers never share memory with the cache.
*/
func read[T snapshot[T]](
	ctx context.Context,
	c *Client,
	kind, key string,
	input map[string]any,
	build func(context.Context) (T, error),
	fallback func() T,
) outcome[T] {
	ctx, span := c.tracer.Start(ctx, "views."+kind, trace.WithAttributes(
		attribute.String("view.kind", kind),
		attribute.String("view.key", key),
	))
	defer span.End()

	if v, ok := c.cache.Get(key); ok {
		if view, ok := v.(T); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return outcome[T]{View: view.clone()}
		}
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	ch := c.flight.DoChan(key, func() (any, error) {
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		view, err := build(bctx)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, view)
		return view, nil
	})

	var (
		v   any
		err error
	)
	select {
	case res := <-ch:
		v, err = res.Val, res.Err
		span.SetAttributes(attribute.Bool("flight.shared", res.Shared))
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fallback")
		c.log.Warnw(kind+" query failed; returning fallback",
			"view", kind,
			"error", err,
			"context", input,
		)
		return outcome[T]{View: fallback(), Cause: err}
	}
	return outcome[T]{View: v.(T).clone()}
}
