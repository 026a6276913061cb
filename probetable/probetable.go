package probetable

import "fmt"

// slot is one table cell: empty, or an occupied (key, value) pair.
type slot[V any] struct {
	key      string
	value    V
	occupied bool
}

// Table is a linear-probing open-addressing hash table with string keys.
// The zero value is not usable; construct with New or NewDefault.
type Table[V any] struct {
	slots     []slot[V]
	count     int
	sizes     []int
	sizeIndex int
	hash      HashFunc
}

// New constructs an empty Table at the first capacity of opts.Sizes.
// Returns ErrBadSizes if the sequence is empty, non-increasing, or contains
// a capacity below MinCapacity.
// Complexity: O(Sizes[0]).
func New[V any](opts Options) (*Table[V], error) {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes()
	}
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}
	// Private copy: the table advances through this sequence for its lifetime.
	own := make([]int, len(sizes))
	copy(own, sizes)

	return &Table[V]{
		slots: make([]slot[V], own[0]),
		sizes: own,
		hash:  PolynomialHash,
	}, nil
}

// NewDefault constructs an empty Table over DefaultSizes.
func NewDefault[V any]() *Table[V] {
	t, err := New[V](DefaultOptions())
	if err != nil {
		// DefaultSizes always validates; reaching here is a programming error.
		panic(err)
	}

	return t
}

// PolynomialHash is the default HashFunc: a polynomial rolling hash over the
// key's Unicode code points, reduced modulo capacity. The multiplier starts
// at 31415 and advances by ×31 modulo capacity-1 per character, so the
// effective hash varies along the key and structured (e.g. alphabetic) keys
// disperse instead of clustering. Not collision resistant.
// Complexity: O(|key|).
func PolynomialHash(key string, capacity int) int {
	value := 0
	a := hashInitialMultiplier
	for _, cp := range key {
		value = (int(cp) + a*value) % capacity
		a = a * hashBase % (capacity - 1)
	}

	return value
}

// SetHash replaces the table's hash function. Passing nil restores
// PolynomialHash. All entries are re-inserted under the new function so the
// probe-sequence invariant keeps holding.
// Complexity: O(capacity + n·cost(h)).
func (t *Table[V]) SetHash(h HashFunc) {
	if h == nil {
		h = PolynomialHash
	}
	t.hash = h
	t.reinsertAll(len(t.slots))
}

// Capacity returns the current number of slots (occupied or not).
func (t *Table[V]) Capacity() int { return len(t.slots) }

// Len returns the number of stored entries.
func (t *Table[V]) Len() int { return t.count }

// IsEmpty reports whether the table holds no entries.
func (t *Table[V]) IsEmpty() bool { return t.count == 0 }

// IsFull reports whether every slot is occupied.
func (t *Table[V]) IsFull() bool { return t.count == len(t.slots) }

// probe finds the slot index for key by linear probing from the hash
// position. With forInsert it resolves to the key's slot or the first empty
// slot; without, only to the key's slot. A full circuit without resolution
// yields ErrTableFull (insert) or ErrKeyNotFound (lookup).
func (t *Table[V]) probe(key string, forInsert bool) (int, error) {
	capacity := len(t.slots)
	pos := t.hash(key, capacity)
	for i := 0; i < capacity; i++ {
		s := &t.slots[pos]
		switch {
		case !s.occupied:
			if forInsert {
				return pos, nil
			}

			return 0, ErrKeyNotFound
		case s.key == key:
			return pos, nil
		}
		pos = (pos + 1) % capacity
	}
	if forInsert {
		return 0, ErrTableFull
	}

	return 0, ErrKeyNotFound
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound if the key is absent.
// Complexity: O(1) expected, O(capacity) worst case.
func (t *Table[V]) Get(key string) (V, error) {
	var zero V
	pos, err := t.probe(key, false)
	if err != nil {
		return zero, fmt.Errorf("probetable: get %q: %w", key, err)
	}

	return t.slots[pos].value, nil
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	_, err := t.probe(key, false)

	return err == nil
}

// Set stores value under key, overwriting any previous value. Once the live
// entry count exceeds half the capacity, the table grows to the next entry
// of its size sequence (a no-op when already at the largest).
// Returns ErrTableFull only when no free slot exists and growth is exhausted.
// Complexity: O(1) expected; O(n·|key|) when a grow is triggered.
func (t *Table[V]) Set(key string, value V) error {
	pos, err := t.probe(key, true)
	if err != nil {
		return fmt.Errorf("probetable: set %q: %w", key, err)
	}
	if !t.slots[pos].occupied {
		t.count++
	}
	t.slots[pos] = slot[V]{key: key, value: value, occupied: true}

	if t.count > len(t.slots)/2 {
		t.grow()
	}

	return nil
}

// Delete removes key and back-shifts every colliding successor so that the
// probe sequence of every remaining key stays unbroken (no tombstones).
// Returns ErrKeyNotFound if the key is absent.
// Complexity: O(1) expected, O(capacity) under heavy clustering.
func (t *Table[V]) Delete(key string) error {
	pos, err := t.probe(key, false)
	if err != nil {
		return fmt.Errorf("probetable: delete %q: %w", key, err)
	}
	t.slots[pos] = slot[V]{}
	t.count--

	// Back-shift repair: re-place every entry in the cluster after the
	// vacated slot, stopping at the first empty slot.
	capacity := len(t.slots)
	pos = (pos + 1) % capacity
	for t.slots[pos].occupied {
		moved := t.slots[pos]
		t.slots[pos] = slot[V]{}
		// An empty slot always exists after a removal, so probe cannot fail.
		newPos, _ := t.probe(moved.key, true)
		t.slots[newPos] = moved
		pos = (pos + 1) % capacity
	}

	return nil
}

// Keys returns all keys in slot order.
// Complexity: O(capacity).
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.count)
	for i := range t.slots {
		if t.slots[i].occupied {
			keys = append(keys, t.slots[i].key)
		}
	}

	return keys
}

// Values returns all values in slot order.
// Complexity: O(capacity).
func (t *Table[V]) Values() []V {
	values := make([]V, 0, t.count)
	for i := range t.slots {
		if t.slots[i].occupied {
			values = append(values, t.slots[i].value)
		}
	}

	return values
}

// Pairs returns all (key, value) associations in slot order.
// Complexity: O(capacity).
func (t *Table[V]) Pairs() []Pair[V] {
	pairs := make([]Pair[V], 0, t.count)
	for i := range t.slots {
		if t.slots[i].occupied {
			pairs = append(pairs, Pair[V]{Key: t.slots[i].key, Value: t.slots[i].value})
		}
	}

	return pairs
}

// grow advances to the next capacity in the size sequence and re-inserts
// every entry. No-op when the sequence is exhausted.
func (t *Table[V]) grow() {
	if t.sizeIndex+1 >= len(t.sizes) {
		return
	}
	t.sizeIndex++
	t.reinsertAll(t.sizes[t.sizeIndex])
}

// reinsertAll rebuilds the slot array at the given capacity and re-inserts
// every entry under the current hash function.
func (t *Table[V]) reinsertAll(capacity int) {
	old := t.slots
	t.slots = make([]slot[V], capacity)
	t.count = 0
	for i := range old {
		if !old[i].occupied {
			continue
		}
		// The new array has at least as many slots as live entries, so probe
		// cannot fail.
		pos, _ := t.probe(old[i].key, true)
		t.slots[pos] = old[i]
		t.count++
	}
}
