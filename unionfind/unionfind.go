package unionfind

// New returns a UnionFind in which every element of elems is its own
// singleton set. Duplicate elements are tracked once.
func New[T comparable](elems ...T) *UnionFind[T] {
	uf := &UnionFind[T]{
		parent: make(map[T]T, len(elems)),
		size:   make(map[T]int, len(elems)),
	}
	for _, e := range elems {
		uf.Add(e)
	}

	return uf
}

// Add registers v as a singleton set. It is a no-op if v is already tracked.
func (uf *UnionFind[T]) Add(v T) {
	if _, ok := uf.parent[v]; ok {
		return
	}
	uf.parent[v] = v
	uf.size[v] = 1
	uf.sets++
}

// Has reports whether v is tracked.
func (uf *UnionFind[T]) Has(v T) bool {
	_, ok := uf.parent[v]
	return ok
}

// Find returns the representative of v's set and compresses the path from v
// to it. An untracked v is reported as its own root and is not registered.
func (uf *UnionFind[T]) Find(v T) T {
	if _, ok := uf.parent[v]; !ok {
		return v
	}

	root := v
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for v != root {
		next := uf.parent[v]
		uf.parent[v] = root
		v = next
	}

	return root
}

// Union merges the sets containing a and b, registering either one first if
// it is not tracked yet. Returns false if they were already in the same set.
func (uf *UnionFind[T]) Union(a, b T) bool {
	uf.Add(a)
	uf.Add(b)

	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	// Bigger tree absorbs the smaller one.
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	delete(uf.size, rb)
	uf.sets--

	return true
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind[T]) Connected(a, b T) bool {
	return uf.Find(a) == uf.Find(b)
}

// SizeOf returns the number of elements in v's set; 1 for an untracked v.
func (uf *UnionFind[T]) SizeOf(v T) int {
	root := uf.Find(v)
	if n, ok := uf.size[root]; ok {
		return n
	}

	return 1
}

// Len returns the number of tracked elements.
func (uf *UnionFind[T]) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind[T]) Count() int {
	return uf.sets
}

// Groups returns every set keyed by its root. Member order is unspecified.
func (uf *UnionFind[T]) Groups() map[T][]T {
	groups := make(map[T][]T, uf.sets)
	for v := range uf.parent {
		root := uf.Find(v)
		groups[root] = append(groups[root], v)
	}

	return groups
}

// Sizes returns the size of every set, in unspecified order.
func (uf *UnionFind[T]) Sizes() []int {
	sizes := make([]int, 0, len(uf.size))
	for _, n := range uf.size {
		sizes = append(sizes, n)
	}

	return sizes
}
