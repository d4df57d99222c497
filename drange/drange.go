package drange

import (
	"cmp"
	"fmt"
	"slices"
)

// New constructs the closed range [start..end].
// Returns ErrInvalidArgument if start > end.
func New(start, end int) (Range, error) {
	if start > end {
		return Range{}, fmt.Errorf("%w: start %d is greater than end %d", ErrInvalidArgument, start, end)
	}

	return Range{Start: start, End: end}, nil
}

// Contains reports whether Start <= value <= End.
func (r Range) Contains(value int) bool {
	return r.Start <= value && value <= r.End
}

// Intersects reports whether r and other overlap or touch at an endpoint.
func (r Range) Intersects(other Range) bool {
	return !(r.End < other.Start || r.Start > other.End)
}

// Merge returns the range spanning both r and other.
// Returns ErrDisjoint if the two ranges do not intersect.
func (r Range) Merge(other Range) (Range, error) {
	if !r.Intersects(other) {
		return Range{}, fmt.Errorf("%w: %s and %s", ErrDisjoint, r, other)
	}

	return Range{Start: min(r.Start, other.Start), End: max(r.End, other.End)}, nil
}

// Len returns the number of integers covered by r.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// String renders r as "[Start..End]".
func (r Range) String() string {
	return fmt.Sprintf("[%d..%d]", r.Start, r.End)
}

// MergeOverlapping returns the minimal disjoint cover of ranges, sorted by
// Start. Ranges that intersect (including touching endpoints) are folded
// into one. The input slice is not modified. Empty input yields nil.
//
// Complexity: O(n log n) time, O(n) memory.
func MergeOverlapping(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.Start, b.Start)
	})

	merged := make([]Range, 0, len(sorted))
	merged = append(merged, sorted[0])
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if last.Intersects(cur) {
			// sorted by Start, so only End can grow
			last.End = max(last.End, cur.End)
			continue
		}
		merged = append(merged, cur)
	}

	return merged
}
