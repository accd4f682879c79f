package stateptr

import (
	"strconv"

	"github.com/brickingsoft/errors"
	"golang.org/x/exp/constraints"
)

// ErrOutOfRangeState is the only failure of this package: a state value that
// does not fit the low bits of a tagged pointer.
var ErrOutOfRangeState = errors.Define("state value is out of bounds for this state pointer")

const (
	errMetaPkgKey   = "pkg"
	errMetaPkgVal   = "stateptr"
	errMetaStateKey = "state"
	errMetaMaxKey   = "max"
)

// IsOutOfRangeState reports whether err (or a panic value) is an
// ErrOutOfRangeState failure.
func IsOutOfRangeState(err error) bool {
	return errors.Is(err, ErrOutOfRangeState)
}

func outOfRange[S constraints.Integer](s S, stateMax uint64) error {
	var state string
	if s < 0 {
		state = strconv.FormatInt(int64(s), 10)
	} else {
		state = strconv.FormatUint(uint64(s), 10)
	}
	return errors.From(
		ErrOutOfRangeState,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaStateKey, state),
		errors.WithMeta(errMetaMaxKey, strconv.FormatUint(stateMax, 10)),
	)
}
