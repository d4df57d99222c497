// Package unionfind implements the disjoint-set union (union–find) structure
// with union by size and full path compression.
//
// What:
//
//   - UnionFind[T] tracks arbitrary comparable elements in maps.
//   - Dense tracks the contiguous integer domain 0..n-1 in slices, for
//     dense ID sets where map overhead matters.
//
// Semantics:
//
//   - Find walks to the root, then re-points every visited node directly at
//     the root (two passes, not path halving).
//   - Union attaches the smaller tree under the larger tree's root and adds
//     the sizes. It returns false when both elements already share a root.
//   - UnionFind.Union registers unseen elements as singletons first.
//   - Sets only ever grow; there is no split or delete.
//
// Complexity:
//
//   - Find, Union: amortized O(α(n)).
//   - Groups: O(n).
//
// Not safe for concurrent use; callers serialize access.
package unionfind
