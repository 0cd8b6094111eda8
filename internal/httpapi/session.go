package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/clock"
	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/host"
	"github.com/vovakirdan/gamevault/internal/lifecycle"
	"github.com/vovakirdan/gamevault/internal/registry"
)

const writeTimeout = 2 * time.Second

// seedCounter separates sessions started within the same clock reading.
var seedCounter atomic.Int64

// sessionSeed returns the configured seed, or a fresh one per session when
// it is 0.
func (s *Server) sessionSeed() int64 {
	if s.seed != 0 {
		return s.seed
	}
	return time.Now().UnixNano() + seedCounter.Add(1)
}

// clientMessage is sent by the browser embed.
type clientMessage struct {
	Type   string  `json:"type"` // "input" or "pointer"
	Action string  `json:"action,omitempty"`
	X      float64 `json:"x,omitempty"`
}

// serverMessage is pushed to the browser embed.
type serverMessage struct {
	Type      string     `json:"type"` // "hello", "frame", "event" or "error"
	SessionID string     `json:"sessionId,omitempty"`
	Game      string     `json:"game,omitempty"`
	Tick      uint64     `json:"tick,omitempty"`
	Phase     core.Phase `json:"phase"`
	Score     int        `json:"score"`
	State     any        `json:"state,omitempty"`
	Event     string     `json:"event,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// liveSession runs a built-in game for one websocket client. Inputs are
// batched into one InputFrame per tick.
func (s *Server) liveSession(w http.ResponseWriter, r *http.Request) {
	slug := catalog.Normalize(mux.Vars(r)["slug"])
	id, ok := catalog.Resolve(slug)
	if !ok || !registry.Exists(id) {
		writeError(w, s.logger, fmt.Errorf("local game %q: %w", slug, catalog.ErrNotFound))
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		s.logger.Warn("websocket upgrade failed", "game", slug, "error", err)
		return
	}
	defer conn.Close()

	var rec host.Recorder
	if s.store != nil {
		rec = s.store
	}
	// Plays count toward the catalog entry when the slug names one.
	recordAs := id
	if g, err := s.catalog.Game(slug); err == nil {
		recordAs = g.Slug
	}
	sess := host.NewSession(recordAs, id, rec, s.logger)
	ls := &liveState{conn: conn, pending: core.NewInputFrame()}

	game, err := registry.Create(id, lifecycle.Chain(sess.Hooks(), ls.eventHooks()))
	if err != nil {
		s.logger.Error("cannot create game", "game", id, "error", err)
		return
	}
	game.Reset(core.RuntimeConfig{TickRate: s.fps, Seed: s.sessionSeed()})

	log := s.logger.With("session", sess.ID, "game", id)
	log.Info("live session started", "remote", r.RemoteAddr)
	defer log.Info("live session ended", "plays", sess.Plays())

	if err := ls.send(serverMessage{Type: "hello", SessionID: sess.ID, Game: id, Phase: game.State().Phase}); err != nil {
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	loop := clock.Start(ctx, 0, func(time.Time) (time.Duration, bool) {
		in := ls.take()
		res := game.Step(in)

		msg := serverMessage{
			Type:  "frame",
			Tick:  ls.nextTick(),
			Phase: res.State.Phase,
			Score: res.State.Score,
		}
		if snap, ok := game.(registry.Snapshotter); ok {
			msg.State = snap.SnapshotAny()
		}
		if err := ls.send(msg); err != nil {
			return 0, false
		}
		for _, ev := range ls.drainEvents() {
			if err := ls.send(ev); err != nil {
				return 0, false
			}
		}
		return game.TickInterval(), true
	})
	defer loop.Stop()

	// Read until the client goes away, then the deferred cancel stops the loop.
	go func() {
		defer cancel()
		for {
			var m clientMessage
			if err := conn.ReadJSON(&m); err != nil {
				return
			}
			if err := ls.apply(m); err != nil {
				ls.send(serverMessage{Type: "error", Message: err.Error()}) //nolint:errcheck // reader exits on the next failed read
			}
		}
	}()

	select {
	case <-ctx.Done():
	case <-loop.Done():
	}
}

// liveState is shared by the reader goroutine and the loop goroutine.
type liveState struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	inputMu sync.Mutex
	pending core.InputFrame

	// Only touched from the loop goroutine.
	tick   uint64
	events []serverMessage
}

func (ls *liveState) send(m serverMessage) error {
	ls.writeMu.Lock()
	defer ls.writeMu.Unlock()
	ls.conn.SetWriteDeadline(time.Now().Add(writeTimeout)) //nolint:errcheck // a failed write reports it
	return ls.conn.WriteJSON(m)
}

func (ls *liveState) apply(m clientMessage) error {
	ls.inputMu.Lock()
	defer ls.inputMu.Unlock()

	switch m.Type {
	case "input":
		a, ok := core.ParseAction(m.Action)
		if !ok {
			return fmt.Errorf("unknown action %q", m.Action)
		}
		ls.pending.Set(a)
	case "pointer":
		ls.pending.SetPointer(m.X)
	default:
		return fmt.Errorf("unknown message type %q", m.Type)
	}
	return nil
}

// take hands the batched input to the step and starts a fresh batch.
func (ls *liveState) take() core.InputFrame {
	ls.inputMu.Lock()
	defer ls.inputMu.Unlock()
	in := ls.pending
	ls.pending = core.NewInputFrame()
	return in
}

func (ls *liveState) nextTick() uint64 {
	ls.tick++
	return ls.tick
}

func (ls *liveState) drainEvents() []serverMessage {
	ev := ls.events
	ls.events = nil
	return ev
}

// eventHooks queue lifecycle events; they fire inside Step on the loop
// goroutine and are sent after that tick's frame.
func (ls *liveState) eventHooks() lifecycle.Hooks {
	push := func(name string, phase core.Phase, score int) {
		ls.events = append(ls.events, serverMessage{Type: "event", Event: name, Phase: phase, Score: score})
	}
	return lifecycle.Hooks{
		OnGameStart:  func() { push("gameStart", core.PhasePlaying, 0) },
		OnGamePause:  func() { push("gamePause", core.PhasePaused, 0) },
		OnGameResume: func() { push("gameResume", core.PhasePlaying, 0) },
		OnGameOver:   func(score int) { push("gameOver", core.PhaseGameOver, score) },
	}
}
