// internal/equation/compare.go
//
// Guess feedback.
// Compare implements the two-pass, duplicate-aware scoring used by
// Wordle-style games, applied to equation characters instead of letters.

package equation

import "fmt"

// TileState is the feedback for one character position.
type TileState string

const (
	TileEmpty   TileState = "empty"
	TileCorrect TileState = "correct" // right character, right position
	TilePresent TileState = "present" // in the target, elsewhere
	TileAbsent  TileState = "absent"  // not in the target (or all copies used)
	TilePending TileState = "tbd"     // typed but not yet submitted
)

// Compare scores guess against target and returns one state per position.
//
// Pass 1 marks exact matches Correct and removes them from both sides.
// Pass 2 walks the remaining guess positions left to right; each takes the
// leftmost unused matching target character (Present) or is Absent. A target
// character therefore satisfies at most one guess position, and surplus
// copies in the guess come back Absent.
func Compare(guess, target string) ([]TileState, error) {
	if len(guess) != Length || len(target) != Length {
		return nil, fmt.Errorf("compare %q with %q: %w", guess, target, ErrWrongLength)
	}

	states := make([]TileState, Length)
	var used [Length]bool // target positions already consumed

	for i := 0; i < Length; i++ {
		if guess[i] == target[i] {
			states[i] = TileCorrect
			used[i] = true
		}
	}

	for i := 0; i < Length; i++ {
		if states[i] == TileCorrect {
			continue
		}
		states[i] = TileAbsent
		for j := 0; j < Length; j++ {
			if !used[j] && target[j] == guess[i] {
				states[i] = TilePresent
				used[j] = true
				break
			}
		}
	}
	return states, nil
}

// Won reports whether every state is Correct.
func Won(states []TileState) bool {
	if len(states) == 0 {
		return false
	}
	for _, s := range states {
		if s != TileCorrect {
			return false
		}
	}
	return true
}

// rank orders hints for keyboard colouring: Correct > Present > Absent.
func (s TileState) rank() int {
	switch s {
	case TileCorrect:
		return 3
	case TilePresent:
		return 2
	case TileAbsent:
		return 1
	}
	return 0
}

// MergeKeyStates folds one scored guess into a per-character hint map,
// keeping the strongest hint seen for each character. keys may be nil.
func MergeKeyStates(keys map[string]TileState, guess string, states []TileState) map[string]TileState {
	if keys == nil {
		keys = make(map[string]TileState)
	}
	for i := 0; i < len(guess) && i < len(states); i++ {
		ch := guess[i : i+1]
		if states[i].rank() > keys[ch].rank() {
			keys[ch] = states[i]
		}
	}
	return keys
}
