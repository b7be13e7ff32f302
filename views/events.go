package views

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

const defaultEventsLimit = 50

var emptyEventData = json.RawMessage(`{}`)

// Events returns one page of the story event feed, scoped by entity or owner.
func (c *Client) Events(ctx context.Context, q EventsQuery) EventsView {
	return c.events(ctx, q).View
}

func (q EventsQuery) withDefaults() EventsQuery {
	if q.Limit <= 0 {
		q.Limit = defaultEventsLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

func (c *Client) events(ctx context.Context, q EventsQuery) outcome[EventsView] {
	q = q.withDefaults()

	return read(ctx, c, "events", EventsKey(q),
		map[string]any{
			"entityId": q.EntityID,
			"owner":    q.Owner,
			"since":    q.Since,
			"limit":    q.Limit,
			"offset":   q.Offset,
		},
		func(ctx context.Context) (EventsView, error) {
			var (
				rows  []indexer.Event
				total int
			)

			scope := indexer.EventScope{Since: q.Since}
			switch {
			case q.EntityID != 0:
				scope.EntityID = q.EntityID
			case q.Owner != "":
				scope.Owner = q.Owner
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				rows, err = c.idx.FetchEvents(gctx, scope, q.Limit, q.Offset)
				return err
			})
			g.Go(func() (err error) {
				total, err = c.idx.FetchEventsCount(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return EventsView{}, err
			}

			view := emptyEvents()
			for _, e := range rows {
				ev := GameEvent{
					EventID:          e.ID,
					EventType:        strOr(e.Type, "unknown"),
					Timestamp:        e.Timestamp,
					Data:             e.Data,
					InvolvedEntities: e.InvolvedEntities,
				}
				if ev.Data == nil {
					ev.Data = emptyEventData
				}
				if ev.InvolvedEntities == nil {
					ev.InvolvedEntities = []uint64{}
				}
				view.Events = append(view.Events, ev)
			}
			view.TotalCount = total
			view.HasMore = q.Offset+len(view.Events) < total
			return view, nil
		},
		emptyEvents,
	)
}

func emptyEvents() EventsView {
	return EventsView{Events: []GameEvent{}}
}
