package utils

import "sync"

// Sequence hands out monotonically increasing generations to in-flight
// fetches and lets only the newest completed one apply its result. A stale
// response from a superseded request must never overwrite state written by a
// newer one.
type Sequence struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Next marks the start of a new fetch and returns its generation.
func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Apply reports whether the given generation may write its result. It
// returns false once a newer generation has been issued or applied.
func (s *Sequence) Apply(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.issued || gen <= s.applied {
		return false
	}
	s.applied = gen
	return true
}
