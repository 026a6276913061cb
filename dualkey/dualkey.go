package dualkey

import (
	"fmt"

	"github.com/katalvlaran/lvlhash/probetable"
)

// topSlot is one top-level cell: empty (sub == nil), or a key1 owning the
// sub-table of all its key2 entries.
type topSlot[V any] struct {
	key string
	sub *probetable.Table[V]
}

// Table is a two-level linear-probing hash table keyed by (key1, key2).
// The zero value is not usable; construct with New or NewDefault.
type Table[V any] struct {
	slots         []topSlot[V]
	count         int // distinct top-level keys, NOT (key1,key2) pairs
	sizes         []int
	internalSizes []int
	sizeIndex     int
}

// New constructs an empty Table at the first capacity of opts.Sizes.
// Returns ErrBadSizes if either capacity sequence is empty, non-increasing,
// or contains a capacity below probetable.MinCapacity.
// Complexity: O(Sizes[0]).
func New[V any](opts Options) (*Table[V], error) {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = probetable.DefaultSizes()
	}
	internal := opts.InternalSizes
	if len(internal) == 0 {
		internal = sizes
	}
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}
	if err := validateSizes(internal); err != nil {
		return nil, err
	}
	own := make([]int, len(sizes))
	copy(own, sizes)
	ownInternal := make([]int, len(internal))
	copy(ownInternal, internal)

	return &Table[V]{
		slots:         make([]topSlot[V], own[0]),
		sizes:         own,
		internalSizes: ownInternal,
	}, nil
}

// NewDefault constructs an empty Table over probetable.DefaultSizes at both
// levels.
func NewDefault[V any]() *Table[V] {
	t, err := New[V](DefaultOptions())
	if err != nil {
		// Default sequences always validate; reaching here is a programming error.
		panic(err)
	}

	return t
}

// validateSizes mirrors the probetable sequence rules: non-empty, strictly
// increasing, every capacity ≥ probetable.MinCapacity.
func validateSizes(sizes []int) error {
	prev := 0
	for _, s := range sizes {
		if s < probetable.MinCapacity || s <= prev {
			return ErrBadSizes
		}
		prev = s
	}

	return nil
}

// Capacity returns the current top-level slot count.
func (t *Table[V]) Capacity() int { return len(t.slots) }

// Len returns the number of distinct top-level keys currently stored.
func (t *Table[V]) Len() int { return t.count }

// locate linear-probes the top-level array for key1, starting at its hash
// position. With forInsert it claims the first empty slot on a miss,
// creating a fresh sub-table there; without, a miss is ErrKeyNotFound.
// A full circuit without resolution yields ErrTableFull.
func (t *Table[V]) locate(key1 string, forInsert bool) (int, *probetable.Table[V], error) {
	capacity := len(t.slots)
	pos := probetable.PolynomialHash(key1, capacity)
	for i := 0; i < capacity; i++ {
		s := &t.slots[pos]
		switch {
		case s.sub == nil:
			if !forInsert {
				return 0, nil, ErrKeyNotFound
			}
			// Sequences were validated at construction; New cannot fail here.
			sub, _ := probetable.New[V](probetable.Options{Sizes: t.internalSizes})
			t.slots[pos] = topSlot[V]{key: key1, sub: sub}
			t.count++

			return pos, sub, nil
		case s.key == key1:
			return pos, s.sub, nil
		}
		pos = (pos + 1) % capacity
	}

	return 0, nil, ErrTableFull
}

// Get returns the value stored under (key1, key2).
// Returns ErrKeyNotFound if either level misses.
// Complexity: O(1) expected, O(capacity) worst case per level.
func (t *Table[V]) Get(key1, key2 string) (V, error) {
	var zero V
	_, sub, err := t.locate(key1, false)
	if err != nil {
		return zero, fmt.Errorf("dualkey: get %q/%q: %w", key1, key2, err)
	}
	value, err := sub.Get(key2)
	if err != nil {
		return zero, fmt.Errorf("dualkey: get %q/%q: %w", key1, key2, ErrKeyNotFound)
	}

	return value, nil
}

// Contains reports whether the pair (key1, key2) is present.
func (t *Table[V]) Contains(key1, key2 string) bool {
	_, err := t.Get(key1, key2)

	return err == nil
}

// Set stores value under (key1, key2), creating the key1 sub-table on first
// use and overwriting any previous value for the pair. Once distinct key1s
// exceed half the top-level capacity, the table rehashes to the next entry
// of its size sequence (a no-op when already at the largest).
// Returns ErrTableFull when a probe circuit at either level finds no slot.
// Complexity: O(1) expected; O(pairs·|key|) when a rehash is triggered.
func (t *Table[V]) Set(key1, key2 string, value V) error {
	_, sub, err := t.locate(key1, true)
	if err != nil {
		return fmt.Errorf("dualkey: set %q/%q: %w", key1, key2, err)
	}
	if err = sub.Set(key2, value); err != nil {
		return fmt.Errorf("dualkey: set %q/%q: %w", key1, key2, ErrTableFull)
	}
	if t.count > len(t.slots)/2 {
		return t.rehash()
	}

	return nil
}

// Delete removes the pair (key1, key2). The sub-table back-shifts its own
// cluster; when it empties, the top-level slot is cleared (keeping every
// occupied slot's sub-table non-empty) and the top-level cluster after the
// vacancy is back-shifted by key1.
// Returns ErrKeyNotFound if the pair is absent.
// Complexity: O(1) expected, O(capacity) worst case per level.
func (t *Table[V]) Delete(key1, key2 string) error {
	pos, sub, err := t.locate(key1, false)
	if err != nil {
		return fmt.Errorf("dualkey: delete %q/%q: %w", key1, key2, err)
	}
	if err = sub.Delete(key2); err != nil {
		return fmt.Errorf("dualkey: delete %q/%q: %w", key1, key2, ErrKeyNotFound)
	}
	if sub.Len() > 0 {
		return nil
	}

	// Sub-table emptied: clear its slot and repair the top-level cluster.
	t.slots[pos] = topSlot[V]{}
	t.count--
	capacity := len(t.slots)
	pos = (pos + 1) % capacity
	for t.slots[pos].sub != nil {
		moved := t.slots[pos]
		t.slots[pos] = topSlot[V]{}
		t.slots[t.emptySlotFor(moved.key)] = moved
		pos = (pos + 1) % capacity
	}

	return nil
}

// emptySlotFor probes from key1's hash position to the first free top-level
// slot. Only called while a vacancy is guaranteed to exist.
func (t *Table[V]) emptySlotFor(key1 string) int {
	capacity := len(t.slots)
	pos := probetable.PolynomialHash(key1, capacity)
	for t.slots[pos].sub != nil {
		pos = (pos + 1) % capacity
	}

	return pos
}

// rehash advances the top level to the next capacity of its size sequence
// and re-inserts every (key1, key2, value) triple through Set. No-op when
// the sequence is exhausted.
func (t *Table[V]) rehash() error {
	if t.sizeIndex+1 >= len(t.sizes) {
		return nil
	}
	t.sizeIndex++
	old := t.slots
	t.slots = make([]topSlot[V], t.sizes[t.sizeIndex])
	t.count = 0
	for i := range old {
		if old[i].sub == nil {
			continue
		}
		for _, p := range old[i].sub.Pairs() {
			if err := t.Set(old[i].key, p.Key, p.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

// Keys returns every top-level key in slot order.
// Complexity: O(top capacity).
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.count)
	for i := range t.slots {
		if t.slots[i].sub != nil {
			keys = append(keys, t.slots[i].key)
		}
	}

	return keys
}

// KeysOf returns every key2 stored under key1, in the sub-table's slot order.
// Returns ErrKeyNotFound if key1 is absent.
// Complexity: O(sub capacity).
func (t *Table[V]) KeysOf(key1 string) ([]string, error) {
	_, sub, err := t.locate(key1, false)
	if err != nil {
		return nil, fmt.Errorf("dualkey: keys of %q: %w", key1, err)
	}

	return sub.Keys(), nil
}

// Values returns every stored value, grouped by top-level slot order.
// Complexity: O(top capacity + pairs).
func (t *Table[V]) Values() []V {
	var values []V
	for i := range t.slots {
		if t.slots[i].sub != nil {
			values = append(values, t.slots[i].sub.Values()...)
		}
	}

	return values
}

// ValuesOf returns every value stored under key1, in the sub-table's slot
// order. Returns ErrKeyNotFound if key1 is absent.
// Complexity: O(sub capacity).
func (t *Table[V]) ValuesOf(key1 string) ([]V, error) {
	_, sub, err := t.locate(key1, false)
	if err != nil {
		return nil, fmt.Errorf("dualkey: values of %q: %w", key1, err)
	}

	return sub.Values(), nil
}
