package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/robalobadob/nerdle/internal/daily"
)

// Store persists Stats per user in the user_stats table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Get returns the stats for userID; a user with no games has zero stats.
func (s *Store) Get(ctx context.Context, userID string) (Stats, error) {
	return get(ctx, s.db, userID)
}

func get(ctx context.Context, q querier, userID string) (Stats, error) {
	var (
		st   Stats
		dist string
	)
	err := q.QueryRowContext(ctx,
		`SELECT games_played, games_won, current_streak, max_streak, guess_distribution, last_played_date
		FROM user_stats WHERE user_id=?`, userID,
	).Scan(&st.GamesPlayed, &st.GamesWon, &st.CurrentStreak, &st.MaxStreak, &dist, &st.LastPlayedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("load stats: %w", err)
	}
	if err := json.Unmarshal([]byte(dist), &st.GuessDistribution); err != nil {
		return Stats{}, fmt.Errorf("decode guess distribution: %w", err)
	}
	return st, nil
}

// Record folds one finished game into userID's stats inside a transaction
// and returns the updated record.
func (s *Store) Record(ctx context.Context, userID string, won bool, guessCount int, date daily.Date) (Stats, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, err
	}
	defer func() { _ = tx.Rollback() }()

	st, err := get(ctx, tx, userID)
	if err != nil {
		return Stats{}, err
	}
	st = st.Record(won, guessCount, date)

	dist, err := json.Marshal(st.GuessDistribution)
	if err != nil {
		return Stats{}, err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_stats
			(user_id, games_played, games_won, current_streak, max_streak, guess_distribution, last_played_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			games_played=excluded.games_played,
			games_won=excluded.games_won,
			current_streak=excluded.current_streak,
			max_streak=excluded.max_streak,
			guess_distribution=excluded.guess_distribution,
			last_played_date=excluded.last_played_date`,
		userID, st.GamesPlayed, st.GamesWon, st.CurrentStreak, st.MaxStreak, string(dist), st.LastPlayedDate,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("save stats: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit stats: %w", err)
	}
	return st, nil
}
