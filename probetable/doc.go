// Package probetable implements a single-key open-addressing hash table
// with linear probing, tombstone-free deletion, and geometric growth along
// a caller-configurable capacity sequence.
//
// What:
//
//   - Table[V] maps string keys to values of any type V.
//   - Collisions are resolved by linear probing: scan consecutive slots
//     circularly until an empty or matching slot is found.
//   - Delete repairs the probe sequence by back-shifting colliding
//     successors, so no tombstones are ever stored.
//   - Set grows the table to the next capacity in Options.Sizes once the
//     live entry count exceeds half the current capacity.
//   - The default hash is a polynomial rolling hash computed against the
//     table's own current capacity; it can be replaced per instance via
//     SetHash (e.g. to hash numeric keys, or to share a scheme with an
//     enclosing structure).
//
// Why:
//
//   - Leaf primitive for the nested tables in lvlhash/dualkey, and a small,
//     predictable string-keyed map when iteration order by slot and explicit
//     capacity control matter more than raw throughput.
//
// Complexity:
//
//   - Get/Set/Delete/Contains: O(1) expected, O(capacity) worst case under
//     heavy clustering.
//   - Grow: O(n · |key|) to re-insert all entries.
//   - Keys/Values/Pairs: O(capacity).
//
// Errors:
//
//   - ErrKeyNotFound: Get/Delete on an absent key.
//   - ErrTableFull: a full probe circuit found no free slot (only possible
//     when the capacity sequence is exhausted).
//   - ErrBadSizes: Options.Sizes is empty, non-increasing, or contains a
//     capacity below MinCapacity.
//
// Not safe for concurrent use; callers must serialize access.
package probetable
