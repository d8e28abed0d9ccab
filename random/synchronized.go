package random

import "sync"

type synchronized struct {
	mu  sync.Mutex
	src Source
}

// Synchronized wraps src so that it can be shared by concurrent estimator
// calls. Draws are serialized with a mutex; the interleaving of draws between
// callers, and therefore their individual results, depends on scheduling.
func Synchronized(src Source) Source {
	if s, ok := src.(*synchronized); ok {
		return s
	}

	return &synchronized{src: src}
}

func (s *synchronized) UniformInts(low, high, count int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.UniformInts(low, high, count)
}

func (s *synchronized) Permutation(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Permutation(n)
}
