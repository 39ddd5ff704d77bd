// internal/httpserver/routes_game.go
//
// Free-play and archive endpoints plus the stateless validator:
//   - POST /validate    → check an equation without playing
//   - POST /game/new    → start a game for today or a past date
//   - GET  /game/{id}   → current progress
//   - POST /game/guess  → submit a guess
//
// Games live in the in-memory store; a summary row in the games table
// tracks history. Only the daily puzzle feeds player stats.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/nerdle/internal/daily"
	"github.com/robalobadob/nerdle/internal/equation"
	"github.com/robalobadob/nerdle/internal/game"
	"github.com/robalobadob/nerdle/internal/i18n"
	"github.com/robalobadob/nerdle/internal/store"
)

// ------------------------------ validate ------------------------------------

type validateReq struct {
	Equation string `json:"equation"`
}

type validateRes struct {
	equation.Result
	Message string `json:"message,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	res := equation.Check(strings.TrimSpace(req.Equation))
	writeJSON(w, http.StatusOK, validateRes{
		Result:  res,
		Message: i18n.KindMessage(i18n.ResolveTag(r), res.Reason),
	})
}

// -------------------------------- game --------------------------------------

type newGameReq struct {
	Date string `json:"date"` // optional archive date, e.g. "2025-3-7"
}

type newGameRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

// gameView is the client-facing snapshot of a game. The answer is only
// revealed once the game is over.
type gameView struct {
	GameID    string                        `json:"gameId"`
	Date      string                        `json:"date"`
	Rows      int                           `json:"rows"`
	Cols      int                           `json:"cols"`
	Guesses   []game.Guess                  `json:"guesses"`
	State     game.State                    `json:"state"`
	KeyStates map[string]equation.TileState `json:"keyStates"`
	Answer    string                        `json:"answer,omitempty"`
}

func viewOf(g *game.Game) gameView {
	v := gameView{
		GameID:    g.ID,
		Date:      g.Date,
		Rows:      g.Rows,
		Cols:      g.Cols,
		Guesses:   g.Guesses,
		State:     g.State(),
		KeyStates: g.KeyStates(),
	}
	if g.Finished {
		v.Answer = g.Answer
	}
	return v
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	States    []equation.TileState          `json:"states"`
	State     game.State                    `json:"state"`
	Guesses   int                           `json:"guesses"`
	Remaining int                           `json:"remaining"`
	KeyStates map[string]equation.TileState `json:"keyStates"`
	Answer    string                        `json:"answer,omitempty"`
}

func guessResOf(g *game.Game, states []equation.TileState) guessRes {
	res := guessRes{
		States:    states,
		State:     g.State(),
		Guesses:   len(g.Guesses),
		Remaining: g.Rows - len(g.Guesses),
		KeyStates: g.KeyStates(),
	}
	if g.Finished {
		res.Answer = g.Answer
	}
	return res
}

// newGameFor builds a game whose answer is the pool entry for d.
func (s *Server) newGameFor(d daily.Date) (*game.Game, error) {
	answer, idx, err := s.pool.Answer(d)
	if err != nil {
		return nil, err
	}
	g, err := game.New(answer, d.Key(), idx, s.cfg.MaxGuesses)
	if err != nil {
		return nil, err
	}
	g.StartedAt = s.now()
	return g, nil
}

// handleNewGame starts today's puzzle, or a past day's when a date is given.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}

	today := s.today()
	d := today
	if req.Date != "" {
		parsed, err := daily.ParseDate(strings.TrimSpace(req.Date))
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date", err.Error())
			return
		}
		if parsed.After(today) {
			writeError(w, http.StatusBadRequest, "future_date", "")
			return
		}
		d = parsed
	}

	g, err := s.newGameFor(d)
	if err != nil {
		log.Error().Err(err).Str("date", d.Key()).Msg("new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed", "")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	s.recordGameStart(r.Context(), userFrom(r), s.ownerID(w, r), g)

	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Date: g.Date, Rows: g.Rows, Cols: g.Cols})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(g))
}

// handleGuess applies a guess and persists progress. Free-play games never
// touch stats.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}

	g, states, err := s.applyGuess(r.Context(), req.GameID, req.Guess)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if err != nil {
		writeGuessError(w, r, err)
		return
	}

	s.recordGuess(r.Context(), g)
	writeJSON(w, http.StatusOK, guessResOf(g, states))
}

// applyGuess runs the guess against the stored game atomically.
func (s *Server) applyGuess(ctx context.Context, id, guess string) (*game.Game, []equation.TileState, error) {
	var states []equation.TileState
	g, err := s.store.Update(ctx, id, func(g *game.Game) error {
		var err error
		states, _, err = g.ApplyGuess(guess)
		return err
	})
	return g, states, err
}

// ------------------------------ persistence ---------------------------------

// recordGameStart writes the history row for a new game under owner, the
// id resolved once for the request. Failures are logged; play continues
// from memory.
func (s *Server) recordGameStart(ctx context.Context, me *authUser, owner string, g *game.Game) {
	started := g.StartedAt.UTC().Format(time.RFC3339)
	column := "anonymous_id"
	if me != nil {
		column = "user_id"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, `+column+`, date, started_at, status, guesses) VALUES (?,?,?,?,?,0)`,
		g.ID, owner, g.Date, started, string(game.StatePlaying))
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("insert game row")
	}
}

// recordGuess syncs the history row after a guess.
func (s *Server) recordGuess(ctx context.Context, g *game.Game) {
	if !g.Finished {
		if _, err := s.db.ExecContext(ctx, `UPDATE games SET guesses=? WHERE id=?`, len(g.Guesses), g.ID); err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("update guesses")
		}
		return
	}

	finished := s.now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx,
		`UPDATE games SET guesses=?, status=?, finished_at=? WHERE id=?`,
		len(g.Guesses), string(g.State()), finished, g.ID); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("finish game")
	}
}
