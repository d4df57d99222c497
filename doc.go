// Package librarium is a small shelf of in-memory data structures reused
// across daily puzzle solutions.
//
// What is in it?
//
//	drange/    - closed integer ranges, overlap merging, coalesced MultiRange
//	unionfind/ - disjoint-set union by size with path compression (map and slice backed)
//	sparse/    - default-valued sparse array with nearest occupied index lookup
//	modclock/  - position on a cycle with exact-landing or boundary-crossing counters
//	grid/      - dense 2D grid, neighbor iterators, BFS/DFS frontier walks, regions
//
// Every package stands alone: none imports another. Nothing here is safe for
// concurrent use; callers serialize access. No package performs I/O.
//
// Quick ASCII example (grid.Full around X):
//
//	UpLeft    Up   UpRight
//	Left      X    Right
//	DownLeft  Down DownRight
//
//	go get github.com/katalvlaran/librarium
package librarium
