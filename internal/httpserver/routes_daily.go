// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's game
//   - GET  /daily/leaderboard → fewest-guess winners for today (or ?date=)
//
// Each player gets one result per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB when the
// game ends, won or lost.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/nerdle/internal/daily"
	"github.com/robalobadob/nerdle/internal/equation"
	"github.com/robalobadob/nerdle/internal/game"
	"github.com/robalobadob/nerdle/internal/i18n"
	"github.com/robalobadob/nerdle/internal/store"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	sessions map[string]string // game ID keyed by playerID|date
	mu       sync.Mutex        // guards sessions
}

func newDailyServer(s *Server) *dailyServer {
	return &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		sessions: make(map[string]string),
	}
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := s.daily
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

func sessionKey(playerID string, d daily.Date) string { return playerID + "|" + d.Key() }

// session returns the game id held for key.
func (d *dailyServer) session(key string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.sessions[key]
	return id, ok
}

// install binds id to key unless another request got there first, and drops
// sessions from earlier days. It returns the id now held for key.
func (d *dailyServer) install(key, id string, today daily.Date) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cur, ok := d.sessions[key]; ok {
		return cur, false
	}
	suffix := "|" + today.Key()
	for k := range d.sessions {
		if !strings.HasSuffix(k, suffix) {
			delete(d.sessions, k)
		}
	}
	d.sessions[key] = id
	return id, true
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID  string `json:"gameId"`
	Date    string `json:"date"`
	Played  bool   `json:"played"`
	Rows    int    `json:"rows,omitempty"`
	Cols    int    `json:"cols,omitempty"`
	Message string `json:"message,omitempty"`
}

// handleNew creates or reuses today's session.
//   - A stored result for today → Played=true.
//   - Otherwise an existing in-memory session is returned, or a new one made.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := d.srv.ownerID(w, r)
	today := d.srv.today()

	played, err := d.store.AlreadyPlayed(ctx, uid, today.Key())
	if err != nil {
		log.Error().Err(err).Msg("daily already played")
		writeError(w, http.StatusInternalServerError, "server_error", "")
		return
	}
	if played {
		writeJSON(w, http.StatusOK, dailyNewRes{
			Date:    today.Key(),
			Played:  true,
			Message: i18n.Message(i18n.ResolveTag(r), i18n.KeyAlreadyPlayed),
		})
		return
	}

	key := sessionKey(uid, today)
	if id, ok := d.session(key); ok {
		if g, err := d.srv.store.Get(ctx, id); err == nil {
			writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Date: g.Date, Rows: g.Rows, Cols: g.Cols})
			return
		}
	}

	g, err := d.srv.newGameFor(today)
	if err != nil {
		log.Error().Err(err).Msg("daily new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed", "")
		return
	}
	if err := d.srv.store.Save(ctx, g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	if id, fresh := d.install(key, g.ID, today); fresh {
		d.srv.recordGameStart(ctx, userFrom(r), uid, g)
	} else if cur, err := d.srv.store.Get(ctx, id); err == nil {
		g = cur
	}

	writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Date: g.Date, Rows: g.Rows, Cols: g.Cols})
}

// -----------------------------------------------------------------------------
// /daily/guess

type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// handleGuess applies a guess to the caller's session for today.
//   - The game id must match the caller's session.
//   - A finished session answers with state "locked".
//   - The finishing guess records the daily result and the player's stats.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid := d.srv.ownerID(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}

	today := d.srv.today()
	id, ok := d.session(sessionKey(uid, today))
	if !ok || id != p.GameID {
		writeError(w, http.StatusConflict, "no_session", "")
		return
	}

	g, states, err := d.srv.applyGuess(ctx, id, p.Guess)
	switch {
	case errors.Is(err, game.ErrFinished):
		writeJSON(w, http.StatusOK, map[string]any{
			"states":  []equation.TileState{},
			"state":   "locked",
			"guesses": len(g.Guesses),
		})
		return
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusConflict, "no_session", "")
		return
	case err != nil:
		writeGuessError(w, r, err)
		return
	}

	if g.Finished {
		elapsed := d.srv.now().Sub(g.StartedAt).Milliseconds()
		if elapsed < 0 {
			elapsed = 0
		}
		inserted, err := d.store.InsertResult(ctx, daily.Result{
			UserID:      uid,
			Date:        g.Date,
			AnswerIndex: g.AnswerIndex,
			Guesses:     len(g.Guesses),
			ElapsedMs:   int(elapsed),
			Won:         g.Won,
		})
		if err != nil {
			log.Warn().Err(err).Str("user", uid).Msg("insert daily result")
		}
		if me := userFrom(r); me != nil && inserted {
			d.recordStats(ctx, me.ID, g)
		}
	}
	d.srv.recordGuess(ctx, g)

	writeJSON(w, http.StatusOK, guessResOf(g, states))
}

// recordStats folds a finished daily game into the player's stats.
func (d *dailyServer) recordStats(ctx context.Context, userID string, g *game.Game) {
	day, err := daily.ParseDate(g.Date)
	if err != nil {
		day = d.srv.today()
	}
	if _, err := d.srv.stats.Record(ctx, userID, g.Won, len(g.Guesses), day); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("record stats")
	}
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for ?date= (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := d.srv.today()
	if q := r.URL.Query().Get("date"); q != "" {
		parsed, err := daily.ParseDate(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date", err.Error())
			return
		}
		date = parsed
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit > 100 {
		limit = 100
	}

	rows, err := d.store.Leaderboard(r.Context(), date.Key(), limit)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error", "")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date.Key(), Top: rows})
}
