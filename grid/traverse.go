package grid

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Frontier is the work list of a BFS or DFS run. The visit callback receives
// it and may Push further cells. A position is held at most once while it
// is pending; after it is popped it may be pushed again.
type Frontier[T any] struct {
	items   []Cell[T]
	head    int  // next FIFO read; unused in LIFO mode
	lifo    bool // true for DFS
	pending mapset.Set[Position]
}

// VisitFunc handles one popped cell. Returning a non-nil error stops the
// traversal and the error is returned to the caller.
type VisitFunc[T any] func(f *Frontier[T], pos Position, value T) error

func newFrontier[T any](lifo bool, start []Cell[T]) *Frontier[T] {
	f := &Frontier[T]{
		items:   make([]Cell[T], 0, len(start)),
		lifo:    lifo,
		pending: mapset.NewThreadUnsafeSet[Position](),
	}
	for _, c := range start {
		f.Push(c.Pos, c.Value)
	}

	return f
}

// Push schedules (pos, value) unless pos is already pending.
// Reports whether the cell was added.
func (f *Frontier[T]) Push(pos Position, value T) bool {
	if !f.pending.Add(pos) {
		return false
	}
	f.items = append(f.items, Cell[T]{Pos: pos, Value: value})

	return true
}

// Pending reports whether pos is waiting in the frontier.
func (f *Frontier[T]) Pending(pos Position) bool {
	return f.pending.Contains(pos)
}

// Len returns the number of pending cells.
func (f *Frontier[T]) Len() int {
	return len(f.items) - f.head
}

func (f *Frontier[T]) pop() Cell[T] {
	var c Cell[T]
	if f.lifo {
		last := len(f.items) - 1
		c = f.items[last]
		f.items = f.items[:last]
	} else {
		c = f.items[f.head]
		f.items[f.head] = Cell[T]{}
		f.head++
		if f.head == len(f.items) {
			// drained: reuse the backing array
			f.items = f.items[:0]
			f.head = 0
		}
	}
	f.pending.Remove(c.Pos)

	return c
}

func (f *Frontier[T]) drain(visit VisitFunc[T]) error {
	for f.Len() > 0 {
		c := f.pop()
		if err := visit(f, c.Pos, c.Value); err != nil {
			return err
		}
	}

	return nil
}

// BFS visits cells first-in first-out, starting from start. Duplicate
// positions in start are scheduled once.
func BFS[T any](start []Cell[T], visit VisitFunc[T]) error {
	return newFrontier(false, start).drain(visit)
}

// DFS visits cells last-in first-out; the last start cell is visited first.
func DFS[T any](start []Cell[T], visit VisitFunc[T]) error {
	return newFrontier(true, start).drain(visit)
}

// BFS runs BFS over cells of g. The grid itself is not consulted; visit
// typically reads and mutates g through its closure.
func (g *Grid[T]) BFS(start []Cell[T], visit VisitFunc[T]) error {
	return BFS(start, visit)
}

// DFS runs DFS over cells of g.
func (g *Grid[T]) DFS(start []Cell[T], visit VisitFunc[T]) error {
	return DFS(start, visit)
}

// Regions returns the connected groups of cells whose value satisfies keep,
// linked through dirs (Cardinal if none are given). Regions are ordered by
// their first cell in row-major order; positions inside a region are in
// BFS order from that cell.
// Complexity: O(rows×cols×d) time, O(rows×cols) memory.
func (g *Grid[T]) Regions(keep func(T) bool, dirs ...PosDelta) [][]Position {
	seen := make([]bool, len(g.cells))
	var regions [][]Position

	for i, c := range g.cells {
		if seen[i] || !keep(c.Value) {
			continue
		}
		seen[i] = true
		var region []Position
		_ = BFS([]Cell[T]{c}, func(f *Frontier[T], pos Position, _ T) error {
			region = append(region, pos)
			for n, v := range g.NeighborCellsFunc(pos, keep, dirs...) {
				if ni := g.index(n); !seen[ni] {
					seen[ni] = true
					f.Push(n, v)
				}
			}
			return nil
		})
		regions = append(regions, region)
	}

	return regions
}
