// Package peaks is a small mountain-catalogue domain layer built on top of
// the lvlhash core tables, and doubles as the reference consumer for them.
//
// What:
//
//   - Mountain is a named climb with an integer difficulty and length.
//   - Manager stores mountains in a dualkey.Table keyed by
//     (difficulty, name), so every difficulty bracket is one sub-table and
//     per-difficulty enumeration never scans the whole catalogue.
//   - Organiser maintains a running rank of mountains ordered by
//     (difficulty, name) and answers position queries by binary search.
//
// Why:
//
//   - The core tables only see string keys and opaque values; this package
//     shows the intended shape of a consumer — difficulty grouping and
//     ordering live entirely here, not inside the hash tables.
//
// Complexity:
//
//   - Manager.Add/Remove/Edit: O(1) expected (two hash-table levels).
//   - Manager.WithDifficulty: O(bracket size).
//   - Manager.GroupByDifficulty: O(d log d + n) for d brackets, n mountains.
//   - Organiser.AddMountains: O((n+k) log(n+k)) per batch of k.
//   - Organiser.CurrentPosition: O(log n).
//
// Errors:
//
//   - ErrMountainNotFound: Remove, Edit, or CurrentPosition on an unknown
//     mountain.
//   - ErrDuplicateMountain: Add of an already-registered (difficulty, name).
//
// Not safe for concurrent use; callers must serialize access.
package peaks
