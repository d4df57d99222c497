// Package drange provides closed integer intervals and a coalesced set of
// intervals built from them.
//
// What:
//
//   - Range is a closed interval [Start..End] with Start <= End.
//   - Two ranges intersect when they overlap or touch at an endpoint.
//   - MergeOverlapping sorts ranges by Start and folds every range that
//     intersects the running last one, producing the minimal disjoint cover.
//   - MultiRange holds such a cover and answers membership and coverage.
//
// Complexity:
//
//   - Range.Contains, Range.Intersects, Range.Merge: O(1).
//   - MergeOverlapping: O(n log n) for sorting, O(n) for the fold.
//   - MultiRange.Contains: O(log k) binary search over k disjoint ranges.
//   - MultiRange.TotalCovered: O(k).
//
// Errors:
//
//   - ErrInvalidArgument: Start > End, or an operation on a bad argument.
//   - ErrDisjoint: merging two ranges that do not intersect (wraps ErrInvalidArgument).
package drange
