package storage

import (
	"errors"
	"fmt"
	"time"
)

// Event types recorded by hosts and the analytics endpoint.
const (
	EventView    = "view"
	EventPlay    = "play"
	EventPause   = "pause"
	EventResume  = "resume"
	EventPlayEnd = "play_end"
	EventLike    = "like"
	EventShare   = "share"
)

// ErrInvalidEvent is returned when an event misses its game or type.
var ErrInvalidEvent = errors.New("storage: event needs a game and a type")

// Event is a single analytics record.
type Event struct {
	GameSlug  string    `json:"gameId"`
	Type      string    `json:"eventType"`
	SessionID string    `json:"sessionId"`
	Duration  int       `json:"duration"` // Seconds
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// EventStats aggregates the events of one game over a window.
type EventStats struct {
	GameSlug    string         `json:"gameId"`
	Days        int            `json:"days"`
	Counts      map[string]int `json:"counts"`
	Sessions    int            `json:"uniqueSessions"`
	AvgDuration float64        `json:"avgPlayDuration"`
}

// GamePlays is a game and its play count in a window.
type GamePlays struct {
	GameSlug string `json:"gameId"`
	Plays    int    `json:"plays"`
}

// IncrementPlays records one play of the game.
func (s *Store) IncrementPlays(slug, sessionID string) error {
	if slug == "" {
		return fmt.Errorf("storage: cannot record play: %w", ErrInvalidEvent)
	}
	_, err := s.db.Exec(
		"INSERT INTO plays (game_slug, session_id) VALUES (?, ?)",
		slug, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record play: %w", err)
	}
	return nil
}

// PlayCount returns the total plays of a game.
func (s *Store) PlayCount(slug string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM plays WHERE game_slug = ?", slug).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count plays: %w", err)
	}
	return n, nil
}

// PlayCounts returns the total plays of every game that has been played.
func (s *Store) PlayCounts() (map[string]int, error) {
	rows, err := s.db.Query("SELECT game_slug, COUNT(*) FROM plays GROUP BY game_slug")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count plays: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slug string
		var n int
		if err := rows.Scan(&slug, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan play count: %w", err)
		}
		counts[slug] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}

// TrackEvent stores an analytics event. CreatedAt defaults to now.
func (s *Store) TrackEvent(e Event) error {
	if e.GameSlug == "" || e.Type == "" {
		return ErrInvalidEvent
	}
	if e.Duration < 0 {
		e.Duration = 0
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO events (game_slug, event_type, session_id, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.GameSlug, e.Type, e.SessionID, e.Duration, formatTime(created),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot track event: %w", err)
	}
	return nil
}

// GameEventStats summarizes the last days of events for a game.
// days <= 0 selects 30.
func (s *Store) GameEventStats(slug string, days int) (*EventStats, error) {
	if days <= 0 {
		days = 30
	}
	since := formatTime(time.Now().AddDate(0, 0, -days))
	stats := &EventStats{GameSlug: slug, Days: days, Counts: make(map[string]int)}

	rows, err := s.db.Query(
		`SELECT event_type, COUNT(*) FROM events
		 WHERE game_slug = ? AND created_at >= ?
		 GROUP BY event_type`,
		slug, since,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event count: %w", err)
		}
		stats.Counts[typ] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COUNT(DISTINCT NULLIF(session_id, '')),
		        COALESCE((SELECT AVG(duration_secs) FROM events
		                  WHERE game_slug = ? AND created_at >= ? AND event_type = ?), 0)
		 FROM events WHERE game_slug = ? AND created_at >= ?`,
		slug, since, EventPlayEnd, slug, since,
	).Scan(&stats.Sessions, &stats.AvgDuration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize events: %w", err)
	}

	return stats, nil
}

// TopGames returns the most played games over the last days, by play events.
// days <= 0 selects 7 and limit <= 0 selects 10.
func (s *Store) TopGames(days, limit int) ([]GamePlays, error) {
	if days <= 0 {
		days = 7
	}
	if limit <= 0 {
		limit = 10
	}
	since := formatTime(time.Now().AddDate(0, 0, -days))

	rows, err := s.db.Query(
		`SELECT game_slug, COUNT(*) AS n FROM events
		 WHERE event_type = ? AND created_at >= ?
		 GROUP BY game_slug
		 ORDER BY n DESC, game_slug ASC
		 LIMIT ?`,
		EventPlay, since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top games: %w", err)
	}
	defer rows.Close()

	var top []GamePlays
	for rows.Next() {
		var g GamePlays
		if err := rows.Scan(&g.GameSlug, &g.Plays); err != nil {
			return nil, fmt.Errorf("storage: cannot scan top game: %w", err)
		}
		top = append(top, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return top, nil
}

// formatTime matches SQLite's CURRENT_TIMESTAMP layout so string comparison
// orders correctly.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
