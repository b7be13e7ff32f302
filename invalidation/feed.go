package invalidation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/bibliothecadao/eternum-viewcache/resource"
)

const (
	// maxMessageSize bounds one feed frame.
	maxMessageSize = 512 * 1024

	handshakeTimeout = 10 * time.Second
)

// Submitter accepts invalidation targets. *Worker satisfies it.
type Submitter interface {
	Submit(Target) bool
}

/*
Listener reads entity updates from a websocket feed and submits the matching
invalidations.

Each text frame is either one update object or an array of them:

	{"model": "s1_eternum-Structure", "entity_id": 42}
	[{"model": "s1_eternum-Tile", "entity_id": "0x2a"}, ...]

Frames that do not parse are logged and skipped.
*/
type Listener struct {
	url    string
	sink   Submitter
	log    *zap.SugaredLogger
	dialer *websocket.Dialer
}

func NewListener(url string, sink Submitter, log *zap.SugaredLogger) *Listener {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Listener{
		url:  url,
		sink: sink,
		log:  log,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

/*
Run dials the feed and processes frames until ctx is done or the connection
fails. It returns ctx.Err() after cancellation, and nil when the server
closes the connection normally.
*/
func (l *Listener) Run(ctx context.Context) error {
	conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf("dial update feed: %w", err)
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read update feed: %w", err)
		}

		updates, err := ParseUpdates(payload)
		if err != nil {
			l.log.Warnw("skipping update frame", "error", err)
			continue
		}
		for _, u := range updates {
			t := Route(u)
			if t.empty() {
				continue
			}
			if !l.sink.Submit(t) {
				l.log.Warnw("invalidation queue full; update dropped",
					"model", u.Model,
					"entityId", u.EntityID,
				)
			}
		}
	}
}

var errBadFrame = errors.New("update frame is not an object or array")

// ParseUpdates decodes one feed frame. Entries without a model are skipped.
func ParseUpdates(payload []byte) ([]Update, error) {
	if !gjson.ValidBytes(payload) {
		return nil, errBadFrame
	}
	root := gjson.ParseBytes(payload)

	var items []gjson.Result
	switch {
	case root.IsArray():
		items = root.Array()
	case root.IsObject():
		items = []gjson.Result{root}
	default:
		return nil, errBadFrame
	}

	out := make([]Update, 0, len(items))
	for _, item := range items {
		model := item.Get("model").String()
		if model == "" {
			continue
		}
		out = append(out, Update{
			Model:    model,
			EntityID: resource.ParseCount(item.Get("entity_id").String()),
		})
	}
	return out, nil
}
