// internal/game/engine.go
//
// Game engine for a single puzzle session.
// Responsibilities:
//   - Create games for a known answer (6 rows x 8 columns by default).
//   - Validate guesses with the equation rules; rejected guesses do not use
//     up an attempt.
//   - Score accepted guesses and track playing -> won/lost.
//   - Summarise keyboard hints across guesses.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/nerdle/internal/equation"
)

// DefaultRows is the number of attempts per puzzle.
const DefaultRows = 6

// ErrFinished is returned when guessing on a finished game.
var ErrFinished = errors.New("game finished")

// New constructs a game for answer. rows <= 0 selects DefaultRows.
// The answer itself must be a valid equation.
func New(answer, date string, answerIndex, rows int) (*Game, error) {
	if err := equation.Validate(answer); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Game{
		ID:          randomID(),
		Answer:      answer,
		Date:        date,
		AnswerIndex: answerIndex,
		Rows:        rows,
		Cols:        equation.Length,
		Guesses:     []Guess{},
		StartedAt:   time.Now(),
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Invalid equations come back as *equation.ValidationError and leave the
// game untouched.
func (g *Game) ApplyGuess(guess string) ([]equation.TileState, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.TrimSpace(guess)
	if err := equation.Validate(guess); err != nil {
		return nil, g.State(), err
	}

	states, err := equation.Compare(guess, g.Answer)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, Guess{Equation: guess, States: states})

	if equation.Won(states) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return states, g.State(), nil
}

// State reports the lifecycle state of the game.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// KeyStates returns the strongest hint seen so far for every character used.
func (g *Game) KeyStates() map[string]equation.TileState {
	keys := make(map[string]equation.TileState)
	for _, gu := range g.Guesses {
		keys = equation.MergeKeyStates(keys, gu.Equation, gu.States)
	}
	return keys
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
