package slab

// Len returns the number of elements currently handed out.
func (s *Slab[T]) Len() int {
	sum := 0
	for _, c := range s.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the slab.
func (s *Slab[T]) NumChunks() int {
	return len(s.chunks)
}

// Capacity returns the total number of elements of all chunks.
func (s *Slab[T]) Capacity() int {
	sum := 0
	for _, c := range s.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of elements in use to capacity (0.0 to 1.0).
// Returns 0.0 if the slab has no capacity.
func (s *Slab[T]) Utilization() float64 {
	capacity := s.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(s.Len()) / float64(capacity)
}

// ChunkLen returns the default chunk length used by this slab.
func (s *Slab[T]) ChunkLen() int {
	return s.chunkLen
}

// Metrics returns a snapshot of slab statistics.
func (s *Slab[T]) Metrics() Metrics {
	return Metrics{
		Len:         s.Len(),
		Capacity:    s.Capacity(),
		NumChunks:   s.NumChunks(),
		ChunkLen:    s.ChunkLen(),
		Utilization: s.Utilization(),
	}
}

// Metrics contains statistical information about a slab.
type Metrics struct {
	Len         int     // Elements currently handed out
	Capacity    int     // Total elements across chunks
	NumChunks   int     // Number of chunks
	ChunkLen    int     // Default chunk length
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Metrics thread-safely returns a snapshot of slab statistics.
func (s *SafeSlab[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Metrics()
}
