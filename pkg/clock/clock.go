// Package clock provides the current-time capability the calendar engine
// reads "now" from.
//
// There is no package-level clock. Code that needs the current date takes a
// Clock explicitly: production code passes System, tests pass a Manual
// clock pinned to a known instant. Source is a swappable slot for callers
// (such as a long-lived UI process) that need to replace the clock after
// construction; it is safe for concurrent use.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Millis returns c's current instant in epoch milliseconds.
func Millis(c Clock) int64 { return c.Now().UnixMilli() }

// Manual is a clock that only moves when told to. The zero value reads
// as the Unix epoch. Safe for concurrent use.
type Manual struct {
	ms atomic.Int64
}

// NewManual returns a Manual clock set to t.
func NewManual(t time.Time) *Manual {
	m := &Manual{}
	m.Set(t)
	return m
}

// Fixed returns a Manual clock pinned to the given epoch milliseconds.
func Fixed(epochMillis int64) *Manual {
	m := &Manual{}
	m.ms.Store(epochMillis)
	return m
}

// Now returns the stored instant in UTC.
func (m *Manual) Now() time.Time { return time.UnixMilli(m.ms.Load()).UTC() }

// Set moves the clock to t. Sub-millisecond precision is dropped.
func (m *Manual) Set(t time.Time) { m.ms.Store(t.UnixMilli()) }

// Advance moves the clock forward by d (backward if d is negative) and
// returns the new instant.
func (m *Manual) Advance(d time.Duration) time.Time {
	return time.UnixMilli(m.ms.Add(d.Milliseconds())).UTC()
}

// Source is a swappable clock slot. The zero value delegates to System.
// Readers never observe a partially written clock.
type Source struct {
	p atomic.Pointer[holder]
}

// holder boxes the interface so it can sit behind an atomic pointer.
type holder struct{ c Clock }

// NewSource returns a Source that starts out delegating to c.
func NewSource(c Clock) *Source {
	s := &Source{}
	s.Set(c)
	return s
}

// Now reads the current clock.
func (s *Source) Now() time.Time { return s.Clock().Now() }

// Clock returns the clock currently installed.
func (s *Source) Clock() Clock {
	if h := s.p.Load(); h != nil {
		return h.c
	}
	return System{}
}

// Set installs c. A nil c restores the system clock.
func (s *Source) Set(c Clock) {
	if c == nil {
		s.p.Store(nil)
		return
	}
	s.p.Store(&holder{c: c})
}

// Reset restores the system clock.
func (s *Source) Reset() { s.p.Store(nil) }
