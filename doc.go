// Package stateptr implements tagged pointers for Go.
//
// # Overview
//
// A tagged pointer stores a pointer to a T together with a small state value
// in a single machine word. The state lives in the low-order bits of the
// address, which are always zero because of T's alignment. This is useful for:
//
//   - Tree and list nodes that carry a color, a mark or a rank bit
//   - Iterator or cursor state attached to the element it points at
//   - Slots in compact tables where every byte per entry matters
//
// # Basic Usage
//
//	type Color uint8
//
//	node := &Node{Key: 42}
//	p := stateptr.New(node, Color(1))
//
//	p.Get().Key  // 42
//	p.State()    // 1
//	p.SetState(0)
//
// # Bit Budget
//
// The number of state bits is floor(log2(alignof T)). On 64-bit platforms an
// int64 or pointer-holding struct leaves 3 bits (states 0..7), an int32 leaves
// 2 bits and a byte leaves none. Use LayoutOf, StateMax or MustFit to check the
// budget up front:
//
//	var _ = stateptr.MustFit[Node](uint64(maxColor))
//
// # Memory Layout
//
// Ptr holds exactly one unsafe.Pointer, so unsafe.Sizeof(Ptr[T, S]{}) equals
// unsafe.Sizeof((*T)(nil)). The state is added to the address, never shifted
// into it, and because the state is smaller than the alignment of T the stored
// address still points inside the pointee. The garbage collector therefore
// keeps the pointee alive for as long as a tagged pointer refers to it.
//
// # Contract Checks
//
// Passing a state above StateMax (or a negative one) is a programmer error.
// New, Null, SetState and WithState panic with an error matching
// ErrOutOfRangeState before anything is modified. Make and TrySetState return
// the error instead.
//
// Building with the stateptr_unchecked tag removes the panicking checks. An
// out-of-range state is then undefined behaviour: the value is silently
// truncated to the available bits.
//
// # Thread Safety
//
// Ptr is a plain value. SetState and SetPtr are ordinary writes of the whole
// word and must not race with any other access to the same variable. The
// pointee is never owned, allocated or freed by this package.
package stateptr
