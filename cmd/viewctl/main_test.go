package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes viewctl against an empty local database, so every indexer
// query fails and views come back as fallbacks.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("VIEWS_LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	dsn := filepath.Join(t.TempDir(), "empty.db")
	argv := append([]string{"viewctl", "--sqlite", dsn}, args...)

	err := newApp(&out, &errOut).Run(argv)
	return out.String(), err
}

func TestRealmFallbackOutput(t *testing.T) {
	out, err := run(t, "--account", "0xabc", "realm", "--id", "42")
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, float64(42), view["entityId"])
	assert.Equal(t, "Realm #42", view["name"])
	assert.Equal(t, "0xabc", view["owner"])
}

func TestMissingArguments(t *testing.T) {
	_, err := run(t, "realm")
	assert.ErrorIs(t, err, errMissingID)

	_, err = run(t, "player")
	assert.ErrorIs(t, err, errMissingAddress)

	_, err = run(t, "watch")
	assert.ErrorIs(t, err, errNoFeed)
}

func TestLeaderboardDefaults(t *testing.T) {
	out, err := run(t, "leaderboard")
	require.NoError(t, err)
	assert.Contains(t, out, `"entries": []`)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "-g", "4", "-n", "5", "-k", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Total Operations : 20")
	// Fallbacks are never cached, so every read misses.
	assert.Contains(t, out, `"hits": 0`)
}

func TestVersionSkipsSetup(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newApp(&out, &out).Run([]string{"viewctl", "version"}))
	assert.Equal(t, "zero\n", out.String())
}

func TestWatchUntilFeedCloses(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteMessage(websocket.TextMessage, []byte(`{"model":"s1_eternum-Tile","entity_id":1}`))
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.ReadMessage()
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, err := run(t, "watch", "--updates", url)
	assert.NoError(t, err)
}
