package stateptr

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Layout describes how a tagged pointer to some element type splits its word.
type Layout struct {
	Align     uintptr // alignment of the element type used for tagging
	StateBits uint    // low-order bits available for the state
	PtrBits   uint    // remaining bits holding the address
	StateMax  uint64  // largest representable state, 2^StateBits - 1
	StateMask uintptr // selects the state bits
	PtrMask   uintptr // selects the address bits
}

// LayoutOf returns the layout of tagged pointers to T.
// Zero-sized types get no state bits: there is no storage for a tagged
// address to point into.
func LayoutOf[T any]() Layout {
	var zero T
	align := unsafe.Alignof(zero)
	if unsafe.Sizeof(zero) == 0 {
		align = 1
	}
	stateBits := Log2(align)
	mask := uintptr(1)<<stateBits - 1
	return Layout{
		Align:     align,
		StateBits: stateBits,
		PtrBits:   uint(WordBits) - stateBits,
		StateMax:  uint64(mask),
		StateMask: mask,
		PtrMask:   ^mask,
	}
}

// StateBits returns the number of state bits available for T.
func StateBits[T any]() uint {
	return LayoutOf[T]().StateBits
}

// PtrBits returns the number of address bits of a tagged pointer to T.
func PtrBits[T any]() uint {
	return LayoutOf[T]().PtrBits
}

// StateMax returns the largest state a tagged pointer to T can hold.
func StateMax[T any]() uint64 {
	return LayoutOf[T]().StateMax
}

// Fits reports whether s can be stored in a tagged pointer to T.
func Fits[T any, S constraints.Integer](s S) bool {
	return inRange(LayoutOf[T](), s)
}

// MustFit panics with ErrOutOfRangeState unless every state in [0, limit] fits
// a tagged pointer to T. It is meant for package-level assertions:
//
//	var _ = stateptr.MustFit[Node](uint64(colorCount - 1))
func MustFit[T any](limit uint64) Layout {
	l := LayoutOf[T]()
	if limit > l.StateMax {
		panic(outOfRange(limit, l.StateMax))
	}
	return l
}

// inRange is the single bounds check behind every constructor and mutator.
func inRange[S constraints.Integer](l Layout, s S) bool {
	return s >= 0 && uint64(s) <= l.StateMax
}
