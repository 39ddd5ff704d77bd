// internal/pool/pool.go
//
// Curated equation pool management.
//
// Responsibilities:
//   - Load the ordered pool from a configured file or fall back to the
//     embedded default (assets/equations.txt).
//   - Reject the whole pool if any entry fails equation validation or is
//     listed twice.
//   - Map calendar dates to the day's equation.
//
// A Pool is immutable after construction and safe for concurrent use.

package pool

import (
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/nerdle/assets"
	"github.com/robalobadob/nerdle/internal/daily"
	"github.com/robalobadob/nerdle/internal/equation"
)

// ErrEmpty is returned when a pool source has no equations.
var ErrEmpty = errors.New("pool: no equations")

// Pool is an ordered list of validated equations.
type Pool struct {
	list []string
	set  map[string]int // equation -> index
}

// New validates list and builds a Pool preserving its order.
func New(list []string) (*Pool, error) {
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	p := &Pool{
		list: append([]string(nil), list...),
		set:  make(map[string]int, len(list)),
	}
	for i, eq := range p.list {
		if err := equation.Validate(eq); err != nil {
			return nil, fmt.Errorf("pool entry %d: %w", i+1, err)
		}
		if prev, dup := p.set[eq]; dup {
			return nil, fmt.Errorf("pool entry %d: %q duplicates entry %d", i+1, eq, prev+1)
		}
		p.set[eq] = i
	}
	return p, nil
}

// Load reads the pool from path, or from the embedded default when path is
// empty.
func Load(path string) (*Pool, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.PoolList()
	} else {
		list, err = readFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load pool: %w", err)
	}
	return New(list)
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// Len returns the number of equations.
func (p *Pool) Len() int { return len(p.list) }

// Equations returns a copy of the pool in order.
func (p *Pool) Equations() []string {
	return append([]string(nil), p.list...)
}

// Contains reports whether eq is in the pool.
func (p *Pool) Contains(eq string) bool {
	_, ok := p.set[eq]
	return ok
}

// Answer returns the equation for d and its pool index.
func (p *Pool) Answer(d daily.Date) (string, int, error) {
	if len(p.list) == 0 {
		return "", 0, daily.ErrEmptyPool
	}
	idx := daily.Index(d, len(p.list))
	return p.list[idx], idx, nil
}
