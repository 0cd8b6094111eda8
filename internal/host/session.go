// Package host connects running games to persistence. A Session turns
// lifecycle hooks into play counts, analytics events and saved scores.
package host

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gamevault/internal/lifecycle"
	"github.com/vovakirdan/gamevault/internal/storage"
)

// Recorder is the persistence a session writes to. *storage.Store
// satisfies it.
type Recorder interface {
	IncrementPlays(slug, sessionID string) error
	TrackEvent(e storage.Event) error
	SaveScore(gameID string, score int) (int64, error)
}

// Session records one player's plays of one game.
type Session struct {
	ID     string
	Slug   string // Catalog slug events are recorded under
	GameID string // Registry id scores are saved under

	rec     Recorder
	logger  *log.Logger
	now     func() time.Time
	started time.Time
	plays   int
}

// NewSession creates a session with a random ID. A nil recorder disables
// recording and a nil logger discards warnings.
func NewSession(slug, gameID string, rec Recorder, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		ID:     uuid.NewString(),
		Slug:   slug,
		GameID: gameID,
		rec:    rec,
		logger: logger,
		now:    time.Now,
	}
}

// Plays returns how many games this session has started.
func (s *Session) Plays() int {
	return s.plays
}

// Hooks returns lifecycle hooks that record into the session. Recording is
// best-effort: errors are logged and the game continues.
func (s *Session) Hooks() lifecycle.Hooks {
	return lifecycle.Hooks{
		OnGameStart:  s.onStart,
		OnGamePause:  func() { s.track(storage.EventPause, 0) },
		OnGameResume: func() { s.track(storage.EventResume, 0) },
		OnGameOver:   s.onOver,
	}
}

func (s *Session) onStart() {
	s.started = s.now()
	s.plays++
	if s.rec == nil {
		return
	}
	if err := s.rec.IncrementPlays(s.Slug, s.ID); err != nil {
		s.logger.Warn("could not record play", "game", s.Slug, "error", err)
	}
	s.track(storage.EventPlay, 0)
}

func (s *Session) onOver(score int) {
	var secs int
	if !s.started.IsZero() {
		secs = int(s.now().Sub(s.started).Seconds())
	}
	if s.rec == nil {
		return
	}
	if score > 0 {
		if _, err := s.rec.SaveScore(s.GameID, score); err != nil {
			s.logger.Warn("could not save score", "game", s.GameID, "score", score, "error", err)
		}
	}
	s.track(storage.EventPlayEnd, secs)
}

func (s *Session) track(kind string, duration int) {
	if s.rec == nil {
		return
	}
	err := s.rec.TrackEvent(storage.Event{
		GameSlug:  s.Slug,
		Type:      kind,
		SessionID: s.ID,
		Duration:  duration,
	})
	if err != nil {
		s.logger.Warn("could not track event", "game", s.Slug, "event", kind, "error", err)
	}
}
