// Package random provides the uniform random source used for value
// selection and digit expansion.
//
// Resolution code depends only on the Source interface. Locked is the
// production implementation; tests use testutil.SequenceSource to script the
// choices.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source returns uniformly distributed integers in [0, n).
// n is always > 0 when called by fakery packages.
type Source interface {
	IntN(n int) int
}

// Locked is a Source safe for concurrent use.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Locked source seeded with seed.
// Two sources with the same seed produce the same sequence.
func New(seed uint64) *Locked {
	return &Locked{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// NewFromEntropy creates a Locked source with a random seed.
func NewFromEntropy() *Locked {
	return &Locked{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// IntN implements Source.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.IntN(n)
}
