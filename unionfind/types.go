package unionfind

// UnionFind is a disjoint-set forest over comparable elements.
//
// parent maps every tracked element to its parent; a root maps to itself.
// size is meaningful only for roots and holds the element count of the tree.
type UnionFind[T comparable] struct {
	parent map[T]T
	size   map[T]int
	sets   int // number of disjoint sets
}

// Dense is a disjoint-set forest over the integers 0..n-1, backed by slices.
// Indices outside [0, Len()) panic, like slice indexing.
type Dense struct {
	parent []int
	size   []int
	sets   int
}
