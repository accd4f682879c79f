package stateptr

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// nullAnchor is what null pointers with a non-zero state point into.
// Its address never leaves the package, so no *T handed to New aliases it.
var nullAnchor struct {
	_ atomic.Uint64 // 8-byte alignment on 32-bit platforms as well
	_ [8]byte
}

// Ptr is a pointer to a T with a state of type S packed into its low bits.
//
// The zero value is a nil pointer with state 0. Ptr is comparable: == compares
// both the pointer and the state, so a Ptr can be used as a map key directly.
type Ptr[T any, S constraints.Integer] struct {
	p unsafe.Pointer
}

// Word is a tagged pointer whose state is a raw machine word.
type Word[T any] = Ptr[T, uintptr]

// New returns a tagged pointer to p with state s. p may be nil.
// New panics with ErrOutOfRangeState if s is negative or above StateMax.
func New[T any, S constraints.Integer](p *T, s S) Ptr[T, S] {
	state := checkState(LayoutOf[T](), s)
	return Ptr[T, S]{p: encode(unsafe.Pointer(p), state)}
}

// Null returns a nil tagged pointer carrying state s.
func Null[T any, S constraints.Integer](s S) Ptr[T, S] {
	return New[T, S](nil, s)
}

// Make is like New but returns an error matching ErrOutOfRangeState instead of
// panicking. It checks the state regardless of build tags.
func Make[T any, S constraints.Integer](p *T, s S) (Ptr[T, S], error) {
	l := LayoutOf[T]()
	if !inRange(l, s) {
		return Ptr[T, S]{}, outOfRange(s, l.StateMax)
	}
	return Ptr[T, S]{p: encode(unsafe.Pointer(p), uintptr(s))}, nil
}

// encode adds state to base. The state is below the alignment of the element
// type, so the result still points into the same object.
func encode(base unsafe.Pointer, state uintptr) unsafe.Pointer {
	if base == nil {
		if state == 0 {
			return nil
		}
		base = unsafe.Pointer(&nullAnchor)
	}
	return unsafe.Add(base, state)
}

// split separates the stored pointer into the untagged address and the state.
func (p Ptr[T, S]) split() (unsafe.Pointer, uintptr) {
	state := uintptr(p.p) & LayoutOf[T]().StateMask
	base := unsafe.Add(p.p, -int(state))
	if base == unsafe.Pointer(&nullAnchor) {
		return nil, state
	}
	return base, state
}

// Get returns the pointer portion.
func (p Ptr[T, S]) Get() *T {
	base, _ := p.split()
	return (*T)(base)
}

// State returns the state portion.
func (p Ptr[T, S]) State() S {
	_, state := p.split()
	return S(state)
}

// Value returns the pointee. Like *p.Get(), it panics if the pointer is nil.
func (p Ptr[T, S]) Value() T {
	return *p.Get()
}

// IsNil reports whether the pointer portion is nil, whatever the state.
func (p Ptr[T, S]) IsNil() bool {
	base, _ := p.split()
	return base == nil
}

// Word returns the encoded word: the address with the state or-ed into its
// low bits.
func (p Ptr[T, S]) Word() uintptr {
	base, state := p.split()
	return uintptr(base) | state
}

// SetState replaces the state and keeps the pointer.
// It panics with ErrOutOfRangeState, leaving p unchanged, if s does not fit.
func (p *Ptr[T, S]) SetState(s S) {
	state := checkState(LayoutOf[T](), s)
	base, _ := p.split()
	p.p = encode(base, state)
}

// TrySetState is like SetState but returns an error instead of panicking.
func (p *Ptr[T, S]) TrySetState(s S) error {
	l := LayoutOf[T]()
	if !inRange(l, s) {
		return outOfRange(s, l.StateMax)
	}
	base, _ := p.split()
	p.p = encode(base, uintptr(s))
	return nil
}

// WithState returns a copy of p carrying state s.
func (p Ptr[T, S]) WithState(s S) Ptr[T, S] {
	p.SetState(s)
	return p
}

// SetPtr replaces the pointer and keeps the state.
func (p *Ptr[T, S]) SetPtr(ptr *T) {
	_, state := p.split()
	p.p = encode(unsafe.Pointer(ptr), state)
}

// WithPtr returns a copy of p pointing at ptr.
func (p Ptr[T, S]) WithPtr(ptr *T) Ptr[T, S] {
	p.SetPtr(ptr)
	return p
}

// Offset returns p advanced by n elements of T, keeping the state.
// The result must stay within the array p points into. Offset panics if p is
// nil.
func (p Ptr[T, S]) Offset(n int) Ptr[T, S] {
	base, state := p.split()
	if base == nil {
		panic("stateptr: Offset on nil pointer")
	}
	var zero T
	return Ptr[T, S]{p: encode(unsafe.Add(base, n*int(unsafe.Sizeof(zero))), state)}
}

// Layout returns the bit layout used for tagged pointers to T.
func (p Ptr[T, S]) Layout() Layout {
	return LayoutOf[T]()
}

// StateMax returns the largest state p can hold.
func (p Ptr[T, S]) StateMax() uint64 {
	return LayoutOf[T]().StateMax
}
