// Package grid provides a dense, bounds-checked 2D container with neighbor
// queries and frontier-based traversal.
//
// What:
//
//   - Grid[T] stores rows×cols cells in row-major order: index = row*cols + col.
//   - Position is a (Row, Col) pair; PosDelta is a (DRow, DCol) offset.
//   - Direction sets: Cardinal (4-neighborhood), Diagonal, and Full
//     (8-neighborhood, clockwise from Up).
//   - Neighbor and full-grid queries return iter.Seq / iter.Seq2 sequences:
//     lazy, finite and restartable.
//   - BFS and DFS drain a Frontier (FIFO or LIFO) of (Position, value) cells,
//     handing each popped cell to a visit callback that may Push more.
//   - Regions labels connected groups of cells that satisfy a predicate.
//
// Traversal:
//
//	The Frontier keeps a set of positions that are currently pending.
//	Pushing a pending position is a no-op; once popped, a position may be
//	pushed again. Termination is up to the visit callback (for instance by
//	mutating the cell so it no longer qualifies).
//
// Complexity:
//
//   - Get, Set, Index, PositionAt: O(1).
//   - Neighbors*: O(d) per call, d = number of directions.
//   - All, Positions, Values, Filter, Render: O(rows×cols).
//   - Regions: O(rows×cols×d).
//
// Errors:
//
//   - ErrInvalidArgument: negative dimensions.
//   - ErrIndexOutOfRange: position or index outside the grid.
//   - ErrNonRectangular: FromValues rows of differing lengths.
package grid
