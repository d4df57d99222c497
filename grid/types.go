package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidArgument indicates negative dimensions.
	ErrInvalidArgument = errors.New("grid: invalid argument")
	// ErrIndexOutOfRange indicates a position or index outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidArgument)
)

// Position is an immutable (Row, Col) pair.
type Position struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Position) Add(d PosDelta) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// PosDelta is an immutable (DRow, DCol) offset.
type PosDelta struct {
	DRow, DCol int
}

// Cardinal and diagonal unit offsets. Rows grow downward.
var (
	Up    = PosDelta{DRow: -1, DCol: 0}
	Down  = PosDelta{DRow: 1, DCol: 0}
	Left  = PosDelta{DRow: 0, DCol: -1}
	Right = PosDelta{DRow: 0, DCol: 1}

	UpRight   = PosDelta{DRow: -1, DCol: 1}
	UpLeft    = PosDelta{DRow: -1, DCol: -1}
	DownRight = PosDelta{DRow: 1, DCol: 1}
	DownLeft  = PosDelta{DRow: 1, DCol: -1}
)

// Direction sets. Callers must not modify them.
//
//	UpLeft    Up   UpRight
//	Left      X    Right
//	DownLeft  Down DownRight
var (
	// Cardinal is the 4-neighborhood, clockwise from Up.
	Cardinal = []PosDelta{Up, Right, Down, Left}
	// Diagonal holds the four corner offsets, clockwise from UpRight.
	Diagonal = []PosDelta{UpRight, DownRight, DownLeft, UpLeft}
	// Full is the 8-neighborhood, clockwise from Up.
	Full = []PosDelta{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
)

// Cell is a grid slot: its position and the value stored there.
type Cell[T any] struct {
	Pos   Position
	Value T
}

// Grid is a dense rows×cols container. Every valid position owns exactly one
// backing cell at index row*cols + col.
type Grid[T any] struct {
	rows, cols int
	cells      []Cell[T]
}

// Options configures how New fills a fresh grid.
type Options[T any] struct {
	// Fill is copied into every cell when Factory is nil.
	Fill T
	// Factory, if set, is called once per cell so mutable values are not shared.
	Factory func() T
}

// Option configures Options.
type Option[T any] func(*Options[T])

// WithFill sets the value copied into every cell.
func WithFill[T any](v T) Option[T] {
	return func(o *Options[T]) {
		o.Fill = v
		o.Factory = nil
	}
}

// WithFactory sets a constructor called once per cell.
func WithFactory[T any](fn func() T) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Factory = fn
		}
	}
}

// RenderOption configures Render and RenderFunc.
type RenderOption func(*renderOptions)

type renderOptions struct {
	mark     *Position
	markChar string
}

// WithMark draws markChar instead of the value at pos.
func WithMark(pos Position, markChar string) RenderOption {
	return func(o *renderOptions) {
		o.mark = &pos
		o.markChar = markChar
	}
}
