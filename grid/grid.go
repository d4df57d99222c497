package grid

import "fmt"

// New constructs a rows×cols grid. Cells hold the zero value unless
// WithFill or WithFactory says otherwise.
// Returns ErrInvalidArgument if rows or cols is negative.
// Complexity: O(rows×cols) time and memory.
func New[T any](rows, cols int, opts ...Option[T]) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidArgument, rows, cols)
	}
	var o Options[T]
	for _, fn := range opts {
		fn(&o)
	}

	g := &Grid[T]{rows: rows, cols: cols, cells: make([]Cell[T], rows*cols)}
	for i := range g.cells {
		g.cells[i].Pos = g.coordinate(i)
		if o.Factory != nil {
			g.cells[i].Value = o.Factory()
		} else {
			g.cells[i].Value = o.Fill
		}
	}

	return g, nil
}

// FromValues builds a grid from a rectangular 2D slice, values[row][col].
// The input is copied. An empty slice yields a 0×0 grid.
// Returns ErrNonRectangular if any row length differs from the first.
func FromValues[T any](values [][]T) (*Grid[T], error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			g.cells[r*cols+c].Value = v
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Valid reports whether pos lies inside the grid.
func (g *Grid[T]) Valid(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// Index maps pos to its row-major index.
// Returns ErrIndexOutOfRange if pos is outside the grid.
func (g *Grid[T]) Index(pos Position) (int, error) {
	if !g.Valid(pos) {
		return 0, fmt.Errorf("%w: position %s in %dx%d grid", ErrIndexOutOfRange, pos, g.rows, g.cols)
	}

	return g.index(pos), nil
}

// PositionAt maps a row-major index back to its position.
// Returns ErrIndexOutOfRange if idx is outside [0, Len()).
func (g *Grid[T]) PositionAt(idx int) (Position, error) {
	if idx < 0 || idx >= len(g.cells) {
		return Position{}, fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfRange, idx, len(g.cells))
	}

	return g.coordinate(idx), nil
}

// Get returns the value at pos.
// Returns ErrIndexOutOfRange if pos is outside the grid.
func (g *Grid[T]) Get(pos Position) (T, error) {
	idx, err := g.Index(pos)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.cells[idx].Value, nil
}

// Set stores value at pos.
// Returns ErrIndexOutOfRange if pos is outside the grid.
func (g *Grid[T]) Set(pos Position, value T) error {
	idx, err := g.Index(pos)
	if err != nil {
		return err
	}
	g.cells[idx].Value = value

	return nil
}

// index assumes pos is valid.
func (g *Grid[T]) index(pos Position) int {
	return pos.Row*g.cols + pos.Col
}

// coordinate assumes idx is valid.
func (g *Grid[T]) coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
