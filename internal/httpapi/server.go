// Package httpapi serves the game catalog, play counters and analytics as
// JSON under /api/v1, plus live game sessions over websockets.
package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gamevault/internal/catalog"
	"github.com/vovakirdan/gamevault/internal/storage"
)

// Prefix is the path every route is mounted under.
const Prefix = "/api/v1"

// Store is the persistence the API reads and writes. *storage.Store
// satisfies it.
type Store interface {
	catalog.PlayCounter
	IncrementPlays(slug, sessionID string) error
	PlayCount(slug string) (int, error)
	TrackEvent(e storage.Event) error
	SaveScore(gameID string, score int) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GameEventStats(slug string, days int) (*storage.EventStats, error)
	TopGames(days, limit int) ([]storage.GamePlays, error)
}

// Options configures a Server.
type Options struct {
	Catalog *catalog.Catalog
	Store   Store // Optional; play and analytics routes answer 503 without it
	Logger  *log.Logger
	FPS     int   // Frame rate for live sessions
	Seed    int64 // Seed for live sessions
	Origins []string
}

// Server is the HTTP API.
type Server struct {
	catalog *catalog.Catalog
	store   Store
	logger  *log.Logger
	fps     int
	seed    int64

	router   *mux.Router
	handler  http.Handler
	upgrader websocket.Upgrader
}

// New builds the router and middleware chain.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("httpapi: catalog is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	origins := opts.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cat := opts.Catalog
	if opts.Store != nil {
		cat = cat.WithPlayCounter(opts.Store)
	}

	s := &Server{
		catalog: cat,
		store:   opts.Store,
		logger:  logger,
		fps:     opts.FPS,
		seed:    opts.Seed,
		router:  mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(origins),
		},
	}
	s.routes()

	s.handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger}),
	)(s.router))

	return s, nil
}

func (s *Server) routes() {
	api := s.router.PathPrefix(Prefix).Subrouter()
	api.Use(s.logRequests)

	// Fixed paths go before /games/{slug} so they are not taken as slugs.
	api.HandleFunc("/games", s.listGames).Methods(http.MethodGet)
	api.HandleFunc("/games/featured", s.featuredGames).Methods(http.MethodGet)
	api.HandleFunc("/games/trending", s.trendingGames).Methods(http.MethodGet)
	api.HandleFunc("/games/new", s.newGames).Methods(http.MethodGet)
	api.HandleFunc("/games/search", s.searchGames).Methods(http.MethodGet)
	api.HandleFunc("/games/{slug}", s.getGame).Methods(http.MethodGet)
	api.HandleFunc("/games/{slug}/similar", s.similarGames).Methods(http.MethodGet)
	api.HandleFunc("/games/{slug}/play", s.recordPlay).Methods(http.MethodPost)
	api.HandleFunc("/games/{slug}/scores", s.gameScores).Methods(http.MethodGet)
	api.HandleFunc("/games/{slug}/session", s.liveSession).Methods(http.MethodGet)

	api.HandleFunc("/categories", s.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{slug}", s.getCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{slug}/games", s.categoryGames).Methods(http.MethodGet)

	api.HandleFunc("/analytics/track", s.trackEvent).Methods(http.MethodPost)
	api.HandleFunc("/analytics/game/{slug}", s.gameAnalytics).Methods(http.MethodGet)
	api.HandleFunc("/analytics/top", s.topGames).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, s.logger, fmt.Errorf("route %s: %w", r.URL.Path, catalog.ErrNotFound))
	})
	api.NotFoundHandler = notFound
	s.router.NotFoundHandler = notFound
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

type recoveryLogger struct {
	logger *log.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.logger.Error("panic recovered", "error", fmt.Sprint(v...))
}
