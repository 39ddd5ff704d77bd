// internal/game/types.go
//
// Core type definitions for a single puzzle session.

package game

import (
	"time"

	"github.com/robalobadob/nerdle/internal/equation"
)

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Guess is one accepted attempt and its feedback.
type Guess struct {
	Equation string               `json:"equation"`
	States   []equation.TileState `json:"states"`
}

// Game holds the state of one puzzle session.
type Game struct {
	ID          string    // Unique game identifier (random hex string).
	Answer      string    // The hidden equation.
	Date        string    // Date key of the puzzle, e.g. "2025-3-7".
	AnswerIndex int       // Position of Answer in the pool.
	Rows        int       // Maximum number of guesses allowed.
	Cols        int       // Characters per equation (always 8).
	Guesses     []Guess   // Accepted guesses in order.
	Finished    bool      // True once won or lost.
	Won         bool      // True if finished with a win.
	StartedAt   time.Time // Creation time, used for elapsed-time results.
}

// Clone returns a deep copy of g.
func (g *Game) Clone() *Game {
	c := *g
	c.Guesses = make([]Guess, len(g.Guesses))
	for i, gu := range g.Guesses {
		c.Guesses[i] = Guess{
			Equation: gu.Equation,
			States:   append([]equation.TileState(nil), gu.States...),
		}
	}
	return &c
}
