// Package testutil holds deterministic stand-ins used by tests across the
// fakery packages.
package testutil

import "sync"

// SequenceSource is a scripted random.Source for tests.
//
// Each IntN(n) call returns the next scripted value modulo n (always in
// [0, n), also for negative values), cycling when
// the script is exhausted. An empty script always returns 0. The bound of
// every call is recorded so tests can check how many candidates were offered.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	idx    int
	bounds []int
}

// NewSequenceSource creates a source returning values in order.
//
// Example:
//
//	src := NewSequenceSource(1, 0)
//	src.IntN(3) // 1
//	src.IntN(3) // 0
//	src.IntN(3) // 1 (cycled)
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// IntN returns the next scripted value modulo n.
func (s *SequenceSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.idx%len(s.values)]
	s.idx++
	// Negative scripted values wrap around so the result is always in [0, n).
	return ((v % n) + n) % n
}

// Calls returns the number of IntN calls so far.
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bounds)
}

// Bounds returns the n passed to each IntN call, in order.
func (s *SequenceSource) Bounds() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.bounds))
	copy(out, s.bounds)
	return out
}

// Reset rewinds the script and clears recorded calls.
func (s *SequenceSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = 0
	s.bounds = nil
}
