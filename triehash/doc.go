// Package triehash implements an unbounded-depth, trie-structured hash table
// over fixed-width 27-slot nodes.
//
// What:
//
//   - Table[V] maps string keys to values of any type V.
//   - Every node dispatches on one character of the key: slot index is the
//     Unicode code point of key[level] mod 26, or the reserved terminal slot
//     (index 26) once the key is exhausted.
//   - A collision is resolved not by probing but by replacing the slot with
//     a nested node one level deeper, so keys sharing a prefix split apart
//     at their first diverging character. There is no global resize step —
//     the structure deepens exactly where keys collide.
//   - Delete collapses on the way back up: a child left holding exactly one
//     entry, however deep, is replaced by that entry pulled directly into
//     the parent slot, so no chain of single-occupant nodes survives.
//
// Why:
//
//   - Key-count and key-length growth without rehash pauses; lookup cost is
//     bounded by the length of the shared prefix, not by table occupancy.
//   - Locate exposes the per-level slot path, which makes structural
//     behaviour (splits, collapses) directly observable.
//
// Complexity:
//
//   - Get/Set/Delete/Contains/Locate: O(|key|) worst case (one level per
//     shared-prefix character).
//   - Len: O(nodes).
//   - SortedKeys: O(n log n) — one comparison sort over the collected keys.
//
// Errors:
//
//   - ErrKeyNotFound: Get, Delete, or Locate on an absent key.
//
// Not safe for concurrent use; callers must serialize access.
package triehash
