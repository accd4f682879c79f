package stateptr

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Equal reports whether p and o hold the same pointer and the same state.
// It is the same as p == o.
func (p Ptr[T, S]) Equal(o Ptr[T, S]) bool {
	return p.p == o.p
}

// Compare orders tagged pointers by their encoded word: by address first,
// then by state. Every nil pointer sorts before every non-nil one.
// It returns -1, 0 or +1.
func (p Ptr[T, S]) Compare(o Ptr[T, S]) int {
	a, b := p.Word(), o.Word()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before o.
func (p Ptr[T, S]) Less(o Ptr[T, S]) bool {
	return p.Compare(o) < 0
}

// Compare is Ptr.Compare as a function, for slices.SortFunc and friends.
func Compare[T any, S constraints.Integer](a, b Ptr[T, S]) int {
	return a.Compare(b)
}

// Hash returns a 64-bit FNV-1a hash of the encoded word. It is stable for the
// lifetime of the pointee and equal pointers hash equally.
func (p Ptr[T, S]) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p.Word()))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// String formats p as 0xADDR|state.
func (p Ptr[T, S]) String() string {
	base, state := p.split()
	return "0x" + strconv.FormatUint(uint64(uintptr(base)), 16) + "|" + strconv.FormatUint(uint64(state), 10)
}
