package unionfind

// NewDense returns a Dense forest of n singleton sets 0..n-1.
func NewDense(n int) *Dense {
	d := &Dense{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the root of i and compresses the path to it.
func (d *Dense) Find(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for i != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets of i and j by size.
// Returns false if they were already in the same set.
func (d *Dense) Union(i, j int) bool {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return false
	}
	if d.size[ri] < d.size[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	d.size[ri] += d.size[rj]
	d.sets--

	return true
}

// Connected reports whether i and j share a root.
func (d *Dense) Connected(i, j int) bool {
	return d.Find(i) == d.Find(j)
}

// SizeOf returns the size of the set containing i.
func (d *Dense) SizeOf(i int) int {
	return d.size[d.Find(i)]
}

// Len returns n.
func (d *Dense) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint sets.
func (d *Dense) Count() int {
	return d.sets
}
