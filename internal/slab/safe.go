package slab

import "sync"

// SafeSlab is a mutex-protected wrapper around Slab for concurrent allocation.
// It only guards the slab itself; the values it hands out are not synchronized.
type SafeSlab[T any] struct {
	mu sync.Mutex
	s  *Slab[T]
}

// NewSafe creates a thread-safe slab with the given chunk length.
// If chunkLen <= 0, DefaultChunkLen is used.
func NewSafe[T any](chunkLen int) *SafeSlab[T] {
	return &SafeSlab[T]{s: New[T](chunkLen)}
}

// Alloc thread-safely returns a pointer to a zeroed T.
func (s *SafeSlab[T]) Alloc() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Alloc()
}

// AllocSlice thread-safely returns n contiguous zeroed elements.
func (s *SafeSlab[T]) AllocSlice(n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.AllocSlice(n)
}

// Reset thread-safely makes every element available again.
func (s *SafeSlab[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Reset()
}

// Release thread-safely drops all chunks and makes the slab unusable.
func (s *SafeSlab[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Release()
}

// Len thread-safely returns the number of elements handed out.
func (s *SafeSlab[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Len()
}
