package drange

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// FromRanges builds a MultiRange covering exactly the union of ranges.
func FromRanges(ranges ...Range) *MultiRange {
	return &MultiRange{ranges: MergeOverlapping(ranges)}
}

// Add inserts r and re-coalesces the set.
func (m *MultiRange) Add(r Range) {
	m.ranges = MergeOverlapping(append(m.ranges, r))
}

// Contains reports whether any range of m contains value.
// Complexity: O(log k) for k disjoint ranges.
func (m *MultiRange) Contains(value int) bool {
	// first range ending at or after value; it is the only candidate
	i := sort.Search(len(m.ranges), func(i int) bool { return m.ranges[i].End >= value })

	return i < len(m.ranges) && m.ranges[i].Contains(value)
}

// TotalCovered returns the number of integers covered by m.
func (m *MultiRange) TotalCovered() int {
	total := 0
	for _, r := range m.ranges {
		total += r.Len()
	}

	return total
}

// Len returns the number of disjoint ranges in m.
func (m *MultiRange) Len() int {
	return len(m.ranges)
}

// Ranges returns a copy of the disjoint ranges, sorted by Start.
func (m *MultiRange) Ranges() []Range {
	return slices.Clone(m.ranges)
}

// String renders m as "{[a..b] [c..d]}".
func (m *MultiRange) String() string {
	parts := make([]string, len(m.ranges))
	for i, r := range m.ranges {
		parts[i] = r.String()
	}

	return fmt.Sprintf("{%s}", strings.Join(parts, " "))
}
