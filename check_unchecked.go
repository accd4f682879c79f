//go:build stateptr_unchecked

package stateptr

import "golang.org/x/exp/constraints"

// Checked reports whether out-of-range states panic. This build was compiled
// with the stateptr_unchecked tag.
const Checked = false

// checkState truncates s to the state bits of l. An out-of-range state is a
// contract violation; truncation keeps the stored address inside the pointee.
func checkState[S constraints.Integer](l Layout, s S) uintptr {
	return uintptr(s) & l.StateMask
}
