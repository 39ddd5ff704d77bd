// internal/daily/daily.go
//
// Deterministic daily answer selection.
// The day's equation is pool[|hash(key)| mod len(pool)] where key is the
// calendar date written as "{year}-{month}-{day}" without zero padding and
// hash is a 31-multiplier rolling hash that wraps at 32 bits. The wraparound
// must stay exactly as written: every client that computes the answer for a
// date has to land on the same pool index.

package daily

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyPool is returned when there is nothing to choose from.
var ErrEmptyPool = errors.New("daily: equation pool is empty")

// keyLayout parses both "2025-3-7" and "2025-03-07".
const keyLayout = "2006-1-2"

// Date is a calendar day with no time or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in loc (UTC when loc is nil).
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(now.In(loc))
}

// ParseDate parses a date key. Zero-padded month and day are accepted.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(keyLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Key formats d as "{year}-{month}-{day}", e.g. "2025-3-7".
func (d Date) Key() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, int(d.Month), d.Day)
}

func (d Date) String() string { return d.Key() }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysSince returns the number of whole days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.Time().Sub(other.Time()).Hours() / 24)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Hash is the rolling string hash h = h*31 + c, truncated to a signed
// 32-bit integer after every step.
func Hash(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

// Index maps a date to a position in a pool of n equations.
func Index(d Date, n int) int {
	return indexFor(Hash(d.Key()), n)
}

func indexFor(h int32, n int) int {
	if n <= 0 {
		return 0
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(n))
}

// Answer selects the equation for d from pool. Pool order matters.
func Answer(d Date, pool []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	return pool[Index(d, len(pool))], nil
}
