// internal/httpserver/server.go
//
// HTTP server wiring for the equation puzzle backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, JSON, CORS, timeouts,
//     panic recovery).
//   - Public endpoints: "/", "/health", "/debug/pool", "POST /validate".
//   - Game endpoints (optional auth): /game/new, /game/{id}, /game/guess.
//   - Daily endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Optional auth decorates requests with the user when a valid token is
//     present; guests play under an anonymous cookie id.

package httpserver

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/nerdle/internal/config"
	"github.com/robalobadob/nerdle/internal/daily"
	"github.com/robalobadob/nerdle/internal/pool"
	"github.com/robalobadob/nerdle/internal/stats"
	"github.com/robalobadob/nerdle/internal/store"
)

// Server bundles the router, in-memory game store, and DB-backed stores.
type Server struct {
	r     *chi.Mux
	cfg   config.Config
	loc   *time.Location
	now   func() time.Time
	store store.Store
	db    *sql.DB
	pool  *pool.Pool
	daily *dailyServer
	stats *stats.Store
}

// Option customises a Server.
type Option func(*Server)

// WithClock replaces time.Now, mostly for tests that need a fixed day.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, st store.Store, db *sql.DB, p *pool.Pool, opts ...Option) *Server {
	loc, err := cfg.Location()
	if err != nil {
		loc = time.UTC
	}
	s := &Server{
		r:     chi.NewRouter(),
		cfg:   cfg,
		loc:   loc,
		now:   time.Now,
		store: st,
		db:    db,
		pool:  p,
		stats: stats.NewStore(db),
	}
	for _, opt := range opts {
		opt(s)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "nerdle-go",
			"endpoints": []string{
				"/health", "POST /validate", "POST /game/new", "GET /game/{id}", "POST /game/guess",
				"/daily/*", "/auth/*", "/stats/me", "/games/mine",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/pool", s.handleDebugPool)

	s.r.Post("/validate", s.handleValidate)

	// Game endpoints, guests allowed.
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/game/new", s.handleNewGame)
		r.Get("/game/{id}", s.handleGetGame)
		r.Post("/game/guess", s.handleGuess)
	})

	s.daily = newDailyServer(s)
	s.mountDaily(s.r.With(s.withOptionalAuth()))

	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// today is the puzzle date in the configured zone.
func (s *Server) today() daily.Date { return daily.Today(s.now(), s.loc) }

func (s *Server) handleDebugPool(w http.ResponseWriter, r *http.Request) {
	d := s.today()
	_, idx, err := s.pool.Answer(d)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "pool_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"size":       s.pool.Len(),
		"today":      d.Key(),
		"todayIndex": idx,
	})
}
