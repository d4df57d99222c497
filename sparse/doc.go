// Package sparse provides a fixed-length array in which most slots hold a
// shared default value.
//
// Only slots whose value differs from the default are stored: a map from
// index to value plus a sorted slice of occupied indices. The sorted slice
// answers "nearest occupied index before/after X" by binary search, which is
// what beam-splitting and scanline puzzles need.
//
// Invariants:
//
//   - an index is occupied iff its value differs from the default;
//   - the sorted index slice always equals the map's key set.
//
// Complexity:
//
//   - Get: O(1).
//   - Set: O(log n) to locate, O(n) worst case to shift the index slice.
//   - Prev, Next: O(log n).
package sparse
