package host

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gamevault/internal/config"
	"github.com/vovakirdan/gamevault/internal/core"
	"github.com/vovakirdan/gamevault/internal/games/snake"
	"github.com/vovakirdan/gamevault/internal/storage"
)

type fakeRecorder struct {
	plays  []string
	events []storage.Event
	scores []int
	err    error
}

func (f *fakeRecorder) IncrementPlays(slug, sessionID string) error {
	f.plays = append(f.plays, slug+"/"+sessionID)
	return f.err
}

func (f *fakeRecorder) TrackEvent(e storage.Event) error {
	f.events = append(f.events, e)
	return f.err
}

func (f *fakeRecorder) SaveScore(gameID string, score int) (int64, error) {
	f.scores = append(f.scores, score)
	return int64(len(f.scores)), f.err
}

func (f *fakeRecorder) types() []string {
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Type
	}
	return out
}

func TestSessionRecordsLifecycle(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewSession("snake-game", "snake", rec, nil)
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("session ID %q is not a UUID: %v", s.ID, err)
	}

	h := s.Hooks()
	h.OnGameStart()
	h.OnGamePause()
	h.OnGameResume()
	clock = clock.Add(95 * time.Second)
	h.OnGameOver(40)

	want := []string{storage.EventPlay, storage.EventPause, storage.EventResume, storage.EventPlayEnd}
	if got := rec.types(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, expected %v", got, want)
	}
	if len(rec.plays) != 1 || rec.plays[0] != "snake-game/"+s.ID {
		t.Errorf("plays = %v", rec.plays)
	}
	if len(rec.scores) != 1 || rec.scores[0] != 40 {
		t.Errorf("scores = %v, expected [40]", rec.scores)
	}
	end := rec.events[len(rec.events)-1]
	if end.Duration != 95 || end.SessionID != s.ID || end.GameSlug != "snake-game" {
		t.Errorf("play_end event = %+v", end)
	}
	if s.Plays() != 1 {
		t.Errorf("plays = %d, expected 1", s.Plays())
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewSession("breakout", "breakout", rec, nil)
	h := s.Hooks()
	h.OnGameStart()
	h.OnGameOver(0)

	if len(rec.scores) != 0 {
		t.Errorf("zero score should not be saved, got %v", rec.scores)
	}
	if rec.types()[len(rec.events)-1] != storage.EventPlayEnd {
		t.Error("play_end should still be tracked")
	}
}

func TestRecorderErrorsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	rec := &fakeRecorder{err: errors.New("disk full")}
	s := NewSession("snake", "snake", rec, logger)

	h := s.Hooks()
	h.OnGameStart()
	h.OnGameOver(10)

	out := buf.String()
	for _, msg := range []string{"could not record play", "could not track event", "could not save score"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestNilRecorder(t *testing.T) {
	s := NewSession("snake", "snake", nil, nil)
	h := s.Hooks()
	h.OnGameStart()
	h.OnGamePause()
	h.OnGameOver(10)
	if s.Plays() != 1 {
		t.Errorf("plays = %d, expected 1", s.Plays())
	}
}

func TestSessionDrivesRealGame(t *testing.T) {
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	s := NewSession("snake", snake.ID, store, nil)
	cfg := config.DefaultSnakeConfig()
	cfg.Start = config.Point{X: 19, Y: 10}
	cfg.FirstFood = config.Point{X: 0, Y: 0}
	g := snake.NewWithConfig(cfg, s.Hooks())

	start := core.NewInputFrame()
	start.Set(core.ActionPrimary)
	g.Step(start)
	// Heading right from the last column hits the wall.
	g.Step(core.NewInputFrame())

	if g.State().Phase != core.PhaseGameOver {
		t.Fatalf("phase = %v, expected gameOver", g.State().Phase)
	}
	n, err := store.PlayCount("snake")
	if err != nil || n != 1 {
		t.Errorf("play count = %d (%v), expected 1", n, err)
	}
	stats, err := store.GameEventStats("snake", 1)
	if err != nil {
		t.Fatalf("GameEventStats() failed: %v", err)
	}
	if stats.Counts[storage.EventPlay] != 1 || stats.Counts[storage.EventPlayEnd] != 1 {
		t.Errorf("event counts = %v", stats.Counts)
	}
}
