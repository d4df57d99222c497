package grid

import "iter"

// directionsOrDefault returns dirs, or Cardinal when none are given.
func directionsOrDefault(dirs []PosDelta) []PosDelta {
	if len(dirs) == 0 {
		return Cardinal
	}

	return dirs
}

// NeighborCells yields the in-bounds neighbors of pos with their values,
// in the order of dirs (Cardinal if none are given).
func (g *Grid[T]) NeighborCells(pos Position, dirs ...PosDelta) iter.Seq2[Position, T] {
	return g.NeighborCellsFunc(pos, nil, dirs...)
}

// NeighborCellsFunc is NeighborCells restricted to values for which keep
// returns true. A nil keep accepts every value.
func (g *Grid[T]) NeighborCellsFunc(pos Position, keep func(T) bool, dirs ...PosDelta) iter.Seq2[Position, T] {
	dirs = directionsOrDefault(dirs)

	return func(yield func(Position, T) bool) {
		for _, d := range dirs {
			n := pos.Add(d)
			if !g.Valid(n) {
				continue
			}
			v := g.cells[g.index(n)].Value
			if keep != nil && !keep(v) {
				continue
			}
			if !yield(n, v) {
				return
			}
		}
	}
}

// Neighbors yields the in-bounds neighbor positions of pos.
func (g *Grid[T]) Neighbors(pos Position, dirs ...PosDelta) iter.Seq[Position] {
	return g.NeighborsFunc(pos, nil, dirs...)
}

// NeighborsFunc yields neighbor positions whose value satisfies keep.
func (g *Grid[T]) NeighborsFunc(pos Position, keep func(T) bool, dirs ...PosDelta) iter.Seq[Position] {
	cells := g.NeighborCellsFunc(pos, keep, dirs...)

	return func(yield func(Position) bool) {
		for p := range cells {
			if !yield(p) {
				return
			}
		}
	}
}

// NeighborValues yields the values of the in-bounds neighbors of pos.
func (g *Grid[T]) NeighborValues(pos Position, dirs ...PosDelta) iter.Seq[T] {
	return g.NeighborValuesFunc(pos, nil, dirs...)
}

// NeighborValuesFunc yields neighbor values that satisfy keep.
func (g *Grid[T]) NeighborValuesFunc(pos Position, keep func(T) bool, dirs ...PosDelta) iter.Seq[T] {
	cells := g.NeighborCellsFunc(pos, keep, dirs...)

	return func(yield func(T) bool) {
		for _, v := range cells {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields every (position, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for _, c := range g.cells {
			if !yield(c.Pos, c.Value) {
				return
			}
		}
	}
}

// Positions yields every position in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, c := range g.cells {
			if !yield(c.Pos) {
				return
			}
		}
	}
}

// Values yields every value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range g.cells {
			if !yield(c.Value) {
				return
			}
		}
	}
}

// Filter yields the (position, value) pairs whose value satisfies keep,
// in row-major order.
func (g *Grid[T]) Filter(keep func(T) bool) iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for _, c := range g.cells {
			if keep(c.Value) && !yield(c.Pos, c.Value) {
				return
			}
		}
	}
}
