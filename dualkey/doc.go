// Package dualkey implements a two-level open-addressing hash table keyed by
// a pair of strings (key1, key2).
//
// What:
//
//   - Table[V] is a top-level linear-probing array keyed by key1; every
//     occupied slot owns a nested probetable.Table keyed by key2.
//   - Both levels use the same polynomial rolling hash, each reduced against
//     its OWN table's current capacity — sub-tables differ in capacity and
//     grow independently, so a shared modulus would misplace keys.
//   - Set grows the top level to the next capacity of its size sequence once
//     the count of distinct key1s exceeds half the capacity; sub-tables grow
//     on their own, as a probetable concern.
//   - Delete is tombstone-free at both levels: the sub-table back-shifts its
//     own cluster, and when a sub-table empties, its top-level slot is
//     cleared and the top-level cluster is back-shifted by key1.
//
// Why:
//
//   - Grouped lookups: all key2s (and values) under one key1 are colocated
//     in a single sub-table, so per-group enumeration is O(group) instead of
//     a full scan.
//
// Complexity:
//
//   - Get/Set/Delete/Contains: O(1) expected, O(capacity) worst case per
//     level.
//   - Rehash: O(pairs · |key|) expected; O(pairs²) pathological.
//   - Keys/Values: O(top capacity); KeysOf/ValuesOf: O(sub capacity).
//
// Errors:
//
//   - ErrKeyNotFound: the (key1, key2) pair — or key1 for KeysOf/ValuesOf —
//     is absent.
//   - ErrTableFull: a probe circuit at either level found no free slot;
//     treat as fatal (the size sequence is exhausted).
//   - ErrBadSizes: an invalid capacity sequence was supplied.
//
// Not safe for concurrent use; callers must serialize access.
package dualkey
