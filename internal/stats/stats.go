// Package stats tracks per-player results across daily puzzles.
package stats

import (
	"math"

	"github.com/robalobadob/nerdle/internal/daily"
)

// Buckets is the number of guess-distribution slots (wins in 1..6 guesses).
const Buckets = 6

// Stats is a player's aggregate record.
type Stats struct {
	GamesPlayed       int          `json:"gamesPlayed"`
	GamesWon          int          `json:"gamesWon"`
	CurrentStreak     int          `json:"currentStreak"`
	MaxStreak         int          `json:"maxStreak"`
	GuessDistribution [Buckets]int `json:"guessDistribution"`
	LastPlayedDate    string       `json:"lastPlayedDate"`
}

// Record returns s updated with one finished game played on date.
//
// A win extends the streak when the previous game was the day before,
// leaves it alone on the same day, and restarts it at 1 otherwise. A loss
// resets the streak to 0.
func (s Stats) Record(won bool, guessCount int, date daily.Date) Stats {
	s.GamesPlayed++

	if won {
		s.GamesWon++
		if guessCount >= 1 && guessCount <= Buckets {
			s.GuessDistribution[guessCount-1]++
		}

		prev := s.CurrentStreak
		s.CurrentStreak = 1
		if last, err := daily.ParseDate(s.LastPlayedDate); err == nil {
			switch date.DaysSince(last) {
			case 1:
				s.CurrentStreak = prev + 1
			case 0:
				s.CurrentStreak = prev
			}
		}
		if s.CurrentStreak > s.MaxStreak {
			s.MaxStreak = s.CurrentStreak
		}
	} else {
		s.CurrentStreak = 0
	}

	s.LastPlayedDate = date.Key()
	return s
}

// WinPercent is the share of games won, rounded to a whole percent.
func (s Stats) WinPercent() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.GamesWon) * 100 / float64(s.GamesPlayed)))
}
