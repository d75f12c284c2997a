package testutil

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// FixedSource replays scripted draws in order, then repeats the last one.
// An empty script always draws 0.
type FixedSource struct {
	draws []float64
	next  int
	calls int
}

// NewFixedSource creates a source that returns draws in order.
func NewFixedSource(draws ...float64) *FixedSource {
	return &FixedSource{draws: draws}
}

// Float64 returns the next scripted draw.
func (s *FixedSource) Float64() float64 {
	s.calls++
	if len(s.draws) == 0 {
		return 0
	}
	i := s.next
	if i >= len(s.draws) {
		i = len(s.draws) - 1
	} else {
		s.next++
	}
	return s.draws[i]
}

// Calls returns how many draws have been made, including repeats of the
// last scripted value.
func (s *FixedSource) Calls() int { return s.calls }
