package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/robalobadob/nerdle/internal/daily"
	"github.com/robalobadob/nerdle/internal/db"
)

func day(d int) daily.Date { return daily.Date{Year: 2025, Month: time.March, Day: d} }

func TestRecord(t *testing.T) {
	var s Stats

	s = s.Record(true, 3, day(1))
	if s.GamesPlayed != 1 || s.GamesWon != 1 || s.CurrentStreak != 1 || s.MaxStreak != 1 {
		t.Fatalf("after first win: %+v", s)
	}
	if s.GuessDistribution[2] != 1 || s.LastPlayedDate != "2025-3-1" {
		t.Fatalf("distribution/date: %+v", s)
	}

	s = s.Record(true, 4, day(2))
	if s.CurrentStreak != 2 || s.MaxStreak != 2 {
		t.Fatalf("consecutive day should extend streak: %+v", s)
	}

	s = s.Record(true, 2, day(2))
	if s.CurrentStreak != 2 {
		t.Fatalf("same day should keep streak: %+v", s)
	}

	s = s.Record(true, 1, day(5))
	if s.CurrentStreak != 1 || s.MaxStreak != 2 {
		t.Fatalf("gap should restart streak: %+v", s)
	}

	s = s.Record(false, 6, day(6))
	if s.CurrentStreak != 0 || s.MaxStreak != 2 || s.GamesPlayed != 5 || s.GamesWon != 4 {
		t.Fatalf("loss should reset streak: %+v", s)
	}
	if s.GuessDistribution != [Buckets]int{1, 1, 1, 1, 0, 0} {
		t.Fatalf("distribution = %v", s.GuessDistribution)
	}
	if s.LastPlayedDate != "2025-3-6" {
		t.Fatalf("last played = %q", s.LastPlayedDate)
	}
}

func TestRecordSameDayWinAfterLossKeepsStreak(t *testing.T) {
	s := Stats{MaxStreak: 3}
	s = s.Record(false, 6, day(1))
	s = s.Record(true, 2, day(1))
	if s.CurrentStreak != 0 || s.MaxStreak != 3 {
		t.Fatalf("same-day win should leave streak at 0: %+v", s)
	}
	if s.GamesPlayed != 2 || s.GamesWon != 1 || s.GuessDistribution[1] != 1 {
		t.Fatalf("counters: %+v", s)
	}
}

func TestRecordIgnoresOutOfRangeGuessCount(t *testing.T) {
	s := Stats{}.Record(true, 9, day(1))
	if s.GuessDistribution != [Buckets]int{} || s.GamesWon != 1 {
		t.Fatalf("unexpected %+v", s)
	}
}

func TestWinPercent(t *testing.T) {
	tests := []struct {
		played, won, want int
	}{
		{0, 0, 0},
		{3, 2, 67},
		{4, 4, 100},
		{8, 1, 13},
	}
	for _, tt := range tests {
		s := Stats{GamesPlayed: tt.played, GamesWon: tt.won}
		if got := s.WinPercent(); got != tt.want {
			t.Errorf("WinPercent(%d/%d) = %d, want %d", tt.won, tt.played, got, tt.want)
		}
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := conn.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u1','alice','x','2025-01-01T00:00:00Z')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}

	s := NewStore(conn)
	empty, err := s.Get(ctx, "u1")
	if err != nil || empty.GamesPlayed != 0 {
		t.Fatalf("Get before record = %+v, %v", empty, err)
	}

	if _, err := s.Record(ctx, "u1", true, 2, day(1)); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := s.Record(ctx, "u1", true, 5, day(2))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if got.CurrentStreak != 2 {
		t.Fatalf("returned stats = %+v", got)
	}

	loaded, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded != got {
		t.Fatalf("loaded %+v, want %+v", loaded, got)
	}
	if loaded.GuessDistribution != [Buckets]int{0, 1, 0, 0, 1, 0} {
		t.Fatalf("distribution = %v", loaded.GuessDistribution)
	}
}
