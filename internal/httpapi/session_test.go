package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/core"
)

func dialSession(t *testing.T, srv *Server, slug string) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + Prefix + "/games/" + slug + "/session"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	return conn
}

// readUntil reads messages until match returns true or the deadline passes.
func readUntil(t *testing.T, conn *websocket.Conn, timeout time.Duration, match func(serverMessage) bool) serverMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(timeout)))
	for {
		var m serverMessage
		require.NoError(t, conn.ReadJSON(&m))
		if match(m) {
			return m
		}
	}
}

func TestLiveSnakeSession(t *testing.T) {
	srv, store := newTestServer(t, true)
	conn := dialSession(t, srv, "snake-game")

	hello := readUntil(t, conn, time.Second, func(m serverMessage) bool { return m.Type == "hello" })
	assert.Equal(t, "snake", hello.Game)
	assert.NotEmpty(t, hello.SessionID)
	assert.Equal(t, core.PhaseReady, hello.Phase)

	first := readUntil(t, conn, time.Second, func(m serverMessage) bool { return m.Type == "frame" })
	assert.Equal(t, core.PhaseReady, first.Phase)
	assert.NotNil(t, first.State)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "input", Action: "space"}))
	readUntil(t, conn, 2*time.Second, func(m serverMessage) bool { return m.Type == "event" && m.Event == "gameStart" })

	// Heading right from the middle of the grid the snake reaches the wall.
	over := readUntil(t, conn, 5*time.Second, func(m serverMessage) bool { return m.Type == "event" && m.Event == "gameOver" })
	assert.Equal(t, core.PhaseGameOver, over.Phase)

	n, err := store.PlayCount("snake")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLiveSessionRejectsBadInput(t *testing.T) {
	srv, _ := newTestServer(t, false)
	conn := dialSession(t, srv, "breakout")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "input", Action: "jump"}))
	msg := readUntil(t, conn, 2*time.Second, func(m serverMessage) bool { return m.Type == "error" })
	assert.Contains(t, msg.Message, "jump")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "wave"}))
	msg = readUntil(t, conn, 2*time.Second, func(m serverMessage) bool { return m.Type == "error" })
	assert.Contains(t, msg.Message, "wave")
}

func TestLiveBreakoutPointer(t *testing.T) {
	srv, _ := newTestServer(t, false)
	conn := dialSession(t, srv, "breakout")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "input", Action: "primary"}))
	readUntil(t, conn, 2*time.Second, func(m serverMessage) bool { return m.Phase == core.PhasePlaying })

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "pointer", X: 0}))
	readUntil(t, conn, 2*time.Second, func(m serverMessage) bool {
		if m.Type != "frame" {
			return false
		}
		state, ok := m.State.(map[string]any)
		if !ok {
			return false
		}
		paddle, ok := state["paddle"].(map[string]any)
		return ok && paddle["x"] == float64(0)
	})
}

func TestLiveSessionUnknownGame(t *testing.T) {
	srv, _ := newTestServer(t, false)
	rec, env := do(t, srv, http.MethodGet, "/games/tetris-classic/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestSessionSeed(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	random, err := New(Options{Catalog: cat})
	require.NoError(t, err)
	a, b := random.sessionSeed(), random.sessionSeed()
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b, "seed 0 should give every session its own food sequence")

	fixed, err := New(Options{Catalog: cat, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), fixed.sessionSeed())
	assert.Equal(t, int64(7), fixed.sessionSeed())
}
