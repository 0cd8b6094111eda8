package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/storage"
)

// gameDetail is a catalog game plus the descriptor of its built-in
// mini-game, when it has one.
type gameDetail struct {
	catalog.Game
	Descriptor *catalog.Descriptor `json:"descriptor,omitempty"`
}

type playRequest struct {
	SessionID string `json:"sessionId"`
}

type playResponse struct {
	Slug  string `json:"slug"`
	Plays int    `json:"plays"`
}

func (s *Server) listGames(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 1)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	p, err := s.catalog.All(page)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, p)
}

// limited serves a list query that takes only ?limit.
func (s *Server) limited(w http.ResponseWriter, r *http.Request, query func(limit int) ([]catalog.Game, error)) {
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	games, err := query(limit)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, nonNil(games))
}

func (s *Server) featuredGames(w http.ResponseWriter, r *http.Request) {
	s.limited(w, r, s.catalog.Featured)
}

func (s *Server) trendingGames(w http.ResponseWriter, r *http.Request) {
	s.limited(w, r, s.catalog.Trending)
}

func (s *Server) newGames(w http.ResponseWriter, r *http.Request) {
	s.limited(w, r, s.catalog.New)
}

func (s *Server) searchGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	s.limited(w, r, func(limit int) ([]catalog.Game, error) {
		return s.catalog.Search(q, limit)
	})
}

func (s *Server) similarGames(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	s.limited(w, r, func(limit int) ([]catalog.Game, error) {
		return s.catalog.Similar(slug, limit)
	})
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.catalog.Game(mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	detail := gameDetail{Game: g}
	if d, ok := catalog.Lookup(g.Slug); ok {
		detail.Descriptor = &d
	}
	writeData(w, detail)
}

func (s *Server) recordPlay(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, s.logger, errUnavailable)
		return
	}
	g, err := s.catalog.Game(mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	var req playRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, s.logger, fmt.Errorf("%w: invalid JSON body", errBadRequest))
			return
		}
	}

	if err := s.store.IncrementPlays(g.Slug, req.SessionID); err != nil {
		writeError(w, s.logger, err)
		return
	}
	n, err := s.store.PlayCount(g.Slug)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, response{
		Success: true,
		Data:    playResponse{Slug: g.Slug, Plays: n},
		Message: "play recorded",
	})
}

func (s *Server) gameScores(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, s.logger, errUnavailable)
		return
	}
	id, ok := catalog.Resolve(mux.Vars(r)["slug"])
	if !ok {
		writeError(w, s.logger, fmt.Errorf("local game %q: %w", mux.Vars(r)["slug"], catalog.ErrNotFound))
		return
	}
	limit, err := intParam(r, "limit", 10)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	scores, err := s.store.TopScores(id, limit)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, nonNil(scores))
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	writeData(w, s.catalog.Categories())
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	cat, _, err := s.catalog.Category(mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, cat)
}

func (s *Server) categoryGames(w http.ResponseWriter, r *http.Request) {
	_, games, err := s.catalog.Category(mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, games)
}

func (s *Server) trackEvent(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, s.logger, errUnavailable)
		return
	}
	var e storage.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, s.logger, fmt.Errorf("%w: invalid JSON body", errBadRequest))
		return
	}
	// Clients cannot backdate events.
	e.CreatedAt = time.Time{}
	if err := s.store.TrackEvent(e); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, response{Success: true, Message: "event tracked"})
}

func (s *Server) gameAnalytics(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, s.logger, errUnavailable)
		return
	}
	days, err := intParam(r, "days", 30)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	stats, err := s.store.GameEventStats(catalog.Normalize(mux.Vars(r)["slug"]), days)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, stats)
}

func (s *Server) topGames(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, s.logger, errUnavailable)
		return
	}
	days, err := intParam(r, "days", 7)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	limit, err := intParam(r, "limit", 10)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	top, err := s.store.TopGames(days, limit)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeData(w, nonNil(top))
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
