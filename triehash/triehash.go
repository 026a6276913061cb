package triehash

import (
	"fmt"
	"sort"
)

// Table is one node of the trie-structured hash table; the node returned by
// New is the root at level 0, and nested nodes are the same type one level
// deeper. The zero value is a usable empty root.
type Table[V any] struct {
	level int
	slots [TableSize]slot[V]
}

// New constructs an empty root node.
func New[V any]() *Table[V] {
	return &Table[V]{}
}

// slotIndex returns the bucket this node uses for key: the code point at the
// node's level mod 26, or the terminal slot once the key is exhausted. Keys
// sharing a prefix through this level therefore always collide here.
func (t *Table[V]) slotIndex(key []rune) int {
	if t.level < len(key) {
		return int(key[t.level]) % (TableSize - 1)
	}

	return terminalSlot
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound if the key is absent.
// Complexity: O(|key|) worst case.
func (t *Table[V]) Get(key string) (V, error) {
	node := t
	runes := []rune(key)
	for {
		s := &node.slots[node.slotIndex(runes)]
		switch s.kind {
		case slotEntry:
			if s.key == key {
				return s.value, nil
			}
			var zero V

			return zero, fmt.Errorf("triehash: get %q: %w", key, ErrKeyNotFound)
		case slotChild:
			node = s.child
		default:
			var zero V

			return zero, fmt.Errorf("triehash: get %q: %w", key, ErrKeyNotFound)
		}
	}
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	_, err := t.Get(key)

	return err == nil
}

// Set stores value under key, overwriting any previous value. A collision
// with a different key splits the slot: a nested node is created one level
// deeper, both entries are re-dispatched into it, and the split continues
// recursively while their prefixes still collide.
// Complexity: O(|key|) worst case.
func (t *Table[V]) Set(key string, value V) {
	t.set([]rune(key), key, value)
}

func (t *Table[V]) set(runes []rune, key string, value V) {
	s := &t.slots[t.slotIndex(runes)]
	switch s.kind {
	case slotEmpty:
		*s = slot[V]{kind: slotEntry, key: key, value: value}
	case slotEntry:
		if s.key == key {
			s.value = value

			return
		}
		// Split: push the resident entry one level down, then insert ours.
		child := &Table[V]{level: t.level + 1}
		child.set([]rune(s.key), s.key, s.value)
		child.set(runes, key, value)
		*s = slot[V]{kind: slotChild, child: child}
	case slotChild:
		s.child.set(runes, key, value)
	}
}

// Delete removes key and collapses on the way back up: any child node left
// holding exactly one entry — however deep — is replaced by that entry
// pulled directly into the parent slot, so no chain of single-occupant
// nodes survives a deletion.
// Returns ErrKeyNotFound if the key is absent.
// Complexity: O(|key|) worst case.
func (t *Table[V]) Delete(key string) error {
	if err := t.delete([]rune(key), key); err != nil {
		return fmt.Errorf("triehash: delete %q: %w", key, err)
	}

	return nil
}

func (t *Table[V]) delete(runes []rune, key string) error {
	s := &t.slots[t.slotIndex(runes)]
	switch s.kind {
	case slotEntry:
		if s.key != key {
			return ErrKeyNotFound
		}
		*s = slot[V]{}

		return nil
	case slotChild:
		if err := s.child.delete(runes, key); err != nil {
			return err
		}
		if s.child.Len() == 1 {
			k, v := s.child.soleEntry()
			*s = slot[V]{kind: slotEntry, key: k, value: v}
		}

		return nil
	default:
		return ErrKeyNotFound
	}
}

// soleEntry returns the single entry reachable from a node of Len 1.
func (t *Table[V]) soleEntry() (string, V) {
	for i := range t.slots {
		switch t.slots[i].kind {
		case slotEntry:
			return t.slots[i].key, t.slots[i].value
		case slotChild:
			return t.slots[i].child.soleEntry()
		}
	}
	// A node queried for its sole entry always holds one; reaching here
	// means the structure is corrupted.
	panic("triehash: node has no entries")
}

// Len returns the number of entries stored in this node and all nested
// nodes below it.
// Complexity: O(nodes).
func (t *Table[V]) Len() int {
	n := 0
	for i := range t.slots {
		switch t.slots[i].kind {
		case slotEntry:
			n++
		case slotChild:
			n += t.slots[i].child.Len()
		}
	}

	return n
}

// IsEmpty reports whether the table holds no entries.
func (t *Table[V]) IsEmpty() bool { return t.Len() == 0 }

// Locate returns the sequence of per-level slot indices visited to reach
// key, one index per node from this one down to the entry. The path length
// is a direct measure of how deep prefix collisions forced the key.
// Returns ErrKeyNotFound if the key is absent.
// Complexity: O(|key|) worst case.
func (t *Table[V]) Locate(key string) ([]int, error) {
	runes := []rune(key)
	path := make([]int, 0, len(runes)+1)
	node := t
	for {
		i := node.slotIndex(runes)
		path = append(path, i)
		s := &node.slots[i]
		switch s.kind {
		case slotEntry:
			if s.key == key {
				return path, nil
			}

			return nil, fmt.Errorf("triehash: locate %q: %w", key, ErrKeyNotFound)
		case slotChild:
			node = s.child
		default:
			return nil, fmt.Errorf("triehash: locate %q: %w", key, ErrKeyNotFound)
		}
	}
}

// SortedKeys returns every stored key in lexicographic order. Keys are
// collected in one traversal and sorted once.
// Complexity: O(n log n).
func (t *Table[V]) SortedKeys() []string {
	keys := t.appendKeys(nil)
	sort.Strings(keys)

	return keys
}

// appendKeys collects every direct key below this node, any order.
func (t *Table[V]) appendKeys(keys []string) []string {
	for i := range t.slots {
		switch t.slots[i].kind {
		case slotEntry:
			keys = append(keys, t.slots[i].key)
		case slotChild:
			keys = t.slots[i].child.appendKeys(keys)
		}
	}

	return keys
}
