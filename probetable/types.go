// Package probetable core types, options, and sentinel errors.
package probetable

import "errors"

// Sentinel errors for probetable operations.
var (
	// ErrKeyNotFound indicates a Get or Delete referenced an absent key.
	ErrKeyNotFound = errors.New("probetable: key not found")

	// ErrTableFull indicates a full probe circuit found no empty or matching
	// slot. Set normally grows the table before this can happen, so seeing it
	// means the capacity sequence is exhausted.
	ErrTableFull = errors.New("probetable: table is full")

	// ErrBadSizes indicates Options.Sizes is empty, not strictly increasing,
	// or contains a capacity below MinCapacity.
	ErrBadSizes = errors.New("probetable: invalid capacity sequence")
)

// MinCapacity is the smallest usable table capacity. The polynomial hash
// reduces its multiplier modulo capacity-1, which requires capacity ≥ 3.
const MinCapacity = 3

// hashInitialMultiplier seeds the rolling-hash multiplier for every key.
const hashInitialMultiplier = 31415

// hashBase advances the rolling-hash multiplier after each character.
const hashBase = 31

// HashFunc maps a key to a slot index in [0, capacity).
// Implementations receive the table's current capacity on every call, so a
// table that grows keeps hashing correctly without rebinding.
type HashFunc func(key string, capacity int) int

// Pair is one stored (key, value) association, as yielded by Pairs.
type Pair[V any] struct {
	Key   string
	Value V
}

// Options configures a Table.
type Options struct {
	// Sizes is the strictly increasing sequence of capacities the table moves
	// through as it grows. The table starts at Sizes[0] and never shrinks.
	// Nil or empty selects DefaultSizes.
	Sizes []int
}

// DefaultOptions returns Options selecting DefaultSizes.
func DefaultOptions() Options {
	return Options{Sizes: DefaultSizes()}
}

// DefaultSizes returns the default capacity progression: prime capacities
// roughly doubling from 5 up to ~1.57M. The cap is deliberate — the intended
// workloads stay under one million entries.
func DefaultSizes() []int {
	return []int{
		5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289,
		24593, 49157, 98317, 196613, 393241, 786433, 1572869,
	}
}

// validateSizes checks that sizes is non-empty, strictly increasing, and
// every capacity is at least MinCapacity.
func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return ErrBadSizes
	}
	prev := 0
	for _, s := range sizes {
		if s < MinCapacity || s <= prev {
			return ErrBadSizes
		}
		prev = s
	}

	return nil
}
