package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/nerdle/internal/game"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New("8*9-2=70", "2025-3-7", 1, 6)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return g
}

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := newGame(t)

	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, g.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != g.ID || got.Answer != g.Answer {
		t.Fatalf("Get = %+v", got)
	}

	got.Answer = "changed"
	again, _ := s.Get(ctx, g.ID)
	if again.Answer != "8*9-2=70" {
		t.Fatal("Get returned shared state")
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := newGame(t)
	_ = s.Save(ctx, g)

	updated, err := s.Update(ctx, g.ID, func(g *game.Game) error {
		_, _, err := g.ApplyGuess("12+34=46")
		return err
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(updated.Guesses) != 1 {
		t.Fatalf("updated guesses = %d", len(updated.Guesses))
	}

	// A failing mutation is discarded.
	_, err = s.Update(ctx, g.ID, func(g *game.Game) error {
		g.Guesses = nil
		return errors.New("nope")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	stored, _ := s.Get(ctx, g.ID)
	if len(stored.Guesses) != 1 {
		t.Fatalf("failed update leaked: %d guesses", len(stored.Guesses))
	}

	if _, err := s.Update(ctx, "missing", func(*game.Game) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(missing) error = %v", err)
	}
}

func TestUpdateConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	g := newGame(t)
	_ = s.Save(ctx, g)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(ctx, g.ID, func(g *game.Game) error {
				_, _, err := g.ApplyGuess("12+34=46")
				return err
			})
		}()
	}
	wg.Wait()

	stored, _ := s.Get(ctx, g.ID)
	if len(stored.Guesses) != 6 || !stored.Finished {
		t.Fatalf("guesses = %d finished = %v, want 6 and finished", len(stored.Guesses), stored.Finished)
	}
}
