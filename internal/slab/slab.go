// Package slab implements a chunked typed allocator.
// It hands out zeroed, correctly aligned *T values and contiguous []T runs,
// which is what tagged pointers need from their pointees: addresses whose low
// bits are guaranteed to be zero. Reset() makes every slot reusable in O(chunks).
package slab

// DefaultChunkLen is the default number of elements per chunk.
const DefaultChunkLen = 256

// chunk represents a single run of elements within a slab.
type chunk[T any] struct {
	buf    []T // backing memory, scanned by the GC like any other []T
	offset int // next free element in buf
}

// Slab is a chunked bump allocator for values of type T. Not goroutine-safe.
// Use SafeSlab for concurrent access.
type Slab[T any] struct {
	chunks       []chunk[T]
	chunkLen     int
	currentChunk *chunk[T]
}

// New creates a Slab whose chunks hold chunkLen elements.
// If chunkLen <= 0, DefaultChunkLen is used.
func New[T any](chunkLen int) *Slab[T] {
	if chunkLen <= 0 {
		chunkLen = DefaultChunkLen
	}
	s := &Slab[T]{chunkLen: chunkLen}
	s.grow(chunkLen)
	return s
}

// Alloc returns a pointer to a zeroed T stored inside the slab.
// The pointer is aligned to unsafe.Alignof(T) because it addresses an element
// of a []T.
func (s *Slab[T]) Alloc() *T {
	return &s.AllocSlice(1)[0]
}

// AllocSlice returns n contiguous zeroed elements. Returns nil if n <= 0.
func (s *Slab[T]) AllocSlice(n int) []T {
	if n <= 0 {
		return nil
	}

	// Fast path: use cached current chunk
	c := s.currentChunk
	if c != nil && c.offset+n <= len(c.buf) {
		return c.take(n)
	}

	// Slow path: need new chunk
	s.panicIfReleased()
	s.grow(n)
	return s.currentChunk.take(n)
}

// take carves n elements off the front of the free space of c.
func (c *chunk[T]) take(n int) []T {
	out := c.buf[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	clear(out)
	return out
}

// Reset makes every element available again but keeps the chunks for reuse.
// Pointers handed out before Reset must no longer be used.
func (s *Slab[T]) Reset() {
	s.panicIfReleased()
	for i := range s.chunks {
		s.chunks[i].offset = 0
	}
	s.currentChunk = &s.chunks[0]
}

// Release drops all chunks and makes the slab unusable.
// Any subsequent allocation or Reset will panic.
func (s *Slab[T]) Release() {
	s.chunks = nil
	s.currentChunk = nil
}

// grow appends a new chunk of at least min elements.
func (s *Slab[T]) grow(min int) {
	size := s.chunkLen
	if min > size {
		size = min
	}
	s.chunks = append(s.chunks, chunk[T]{buf: make([]T, size)})
	s.currentChunk = &s.chunks[len(s.chunks)-1]
}

// panicIfReleased panics if the slab has been released.
func (s *Slab[T]) panicIfReleased() {
	if s.chunks == nil {
		panic("slab: use after Release()")
	}
}
