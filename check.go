//go:build !stateptr_unchecked

package stateptr

import "golang.org/x/exp/constraints"

// Checked reports whether out-of-range states panic. Build with the
// stateptr_unchecked tag to turn the checks off.
const Checked = true

// checkState panics with ErrOutOfRangeState if s does not fit l and otherwise
// returns s as a word.
func checkState[S constraints.Integer](l Layout, s S) uintptr {
	if !inRange(l, s) {
		panic(outOfRange(s, l.StateMax))
	}
	return uintptr(s)
}
