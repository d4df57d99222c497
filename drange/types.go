package drange

import (
	"errors"
	"fmt"
)

// Sentinel errors for drange operations.
var (
	// ErrInvalidArgument indicates a malformed range or a disallowed argument.
	ErrInvalidArgument = errors.New("drange: invalid argument")
	// ErrDisjoint indicates an attempt to merge ranges that do not intersect.
	ErrDisjoint = fmt.Errorf("%w: ranges do not intersect", ErrInvalidArgument)
)

// Range is a closed integer interval [Start..End]. Both endpoints belong to
// the range. A Range is a value type; Merge returns a new Range.
type Range struct {
	Start int
	End   int
}

// MultiRange is an ordered sequence of disjoint, non-touching ranges sorted
// by Start. The zero value is an empty set.
type MultiRange struct {
	ranges []Range
}
