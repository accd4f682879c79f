package stateptr

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// WordBits is the width of a pointer-sized word in bits.
const WordBits = 8 * unsafe.Sizeof(uintptr(0))

// A pointer must fit a uintptr exactly; the array length goes negative or
// non-zero otherwise and the build fails.
var _ [0]struct{} = [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(unsafe.Pointer(nil))]struct{}{}

// Log2 returns floor(log2(n)). For n == 0 and n == 1 it returns 0.
func Log2[U constraints.Unsigned](n U) uint {
	if n <= 1 {
		return 0
	}
	return uint(bits.Len64(uint64(n)) - 1)
}
