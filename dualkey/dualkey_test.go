package dualkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlhash/dualkey"
)

// smallOptions keeps both levels on a tiny [5, 13] progression so growth and
// probe behaviour are observable in hand-sized scenarios.
func smallOptions() dualkey.Options {
	return dualkey.Options{Sizes: []int{5, 13}, InternalSizes: []int{5, 13}}
}

// TestNew_BadSizes verifies invalid top-level and internal sequences are
// both rejected with ErrBadSizes.
func TestNew_BadSizes(t *testing.T) {
	_, err := dualkey.New[int](dualkey.Options{Sizes: []int{2}})
	assert.ErrorIs(t, err, dualkey.ErrBadSizes, "top-level sequence below MinCapacity")

	_, err = dualkey.New[int](dualkey.Options{Sizes: []int{5, 13}, InternalSizes: []int{13, 5}})
	assert.ErrorIs(t, err, dualkey.ErrBadSizes, "decreasing internal sequence")
}

// TestSetGet_RoundTrip verifies that a value set under a key pair is
// returned by an immediately following Get.
func TestSetGet_RoundTrip(t *testing.T) {
	table := dualkey.NewDefault[int]()

	require.NoError(t, table.Set("tas", "cradle", 1))
	got, err := table.Get("tas", "cradle")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// TestLen_CountsTopLevelKeysOnly verifies Len counts distinct key1s, not
// (key1, key2) pairs.
func TestLen_CountsTopLevelKeysOnly(t *testing.T) {
	table := dualkey.NewDefault[int]()

	require.NoError(t, table.Set("vic", "bogong", 1))
	require.NoError(t, table.Set("vic", "feathertop", 2))
	require.NoError(t, table.Set("tas", "ossa", 3))

	assert.Equal(t, 2, table.Len(), "two distinct top-level keys")
}

// TestGet_MissingEitherLevel verifies ErrKeyNotFound whether key1 or key2
// misses.
func TestGet_MissingEitherLevel(t *testing.T) {
	table := dualkey.NewDefault[int]()
	require.NoError(t, table.Set("vic", "bogong", 1))

	_, err := table.Get("nsw", "bogong")
	assert.ErrorIs(t, err, dualkey.ErrKeyNotFound, "absent key1")

	_, err = table.Get("vic", "kosciuszko")
	assert.ErrorIs(t, err, dualkey.ErrKeyNotFound, "absent key2 under present key1")

	assert.False(t, table.Contains("vic", "kosciuszko"))
	assert.True(t, table.Contains("vic", "bogong"))
}

// TestScenario_SmallSizes pins the concrete [5, 13] scenario: three pairs
// over two top-level keys, full enumeration, then a deletion that leaves the
// sibling pair intact.
func TestScenario_SmallSizes(t *testing.T) {
	table, err := dualkey.New[int](smallOptions())
	require.NoError(t, err)

	require.NoError(t, table.Set("a", "x", 1))
	require.NoError(t, table.Set("a", "y", 2))
	require.NoError(t, table.Set("b", "z", 3))

	assert.ElementsMatch(t, []int{1, 2, 3}, table.Values())
	keys, err := table.KeysOf("a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y"}, keys)

	require.NoError(t, table.Delete("a", "x"))
	_, err = table.Get("a", "x")
	assert.ErrorIs(t, err, dualkey.ErrKeyNotFound)
	got, err := table.Get("a", "y")
	require.NoError(t, err)
	assert.Equal(t, 2, got, "sibling pair must survive the deletion")
}

// TestDelete_EmptySubTableClearsSlot verifies that removing the last key2
// under a key1 clears the top-level slot: Len drops and enumerations no
// longer show the key1.
func TestDelete_EmptySubTableClearsSlot(t *testing.T) {
	table, err := dualkey.New[int](smallOptions())
	require.NoError(t, err)
	require.NoError(t, table.Set("a", "x", 1))
	require.NoError(t, table.Set("b", "z", 3))

	require.NoError(t, table.Delete("a", "x"))

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"b"}, table.Keys())
	_, err = table.KeysOf("a")
	assert.ErrorIs(t, err, dualkey.ErrKeyNotFound, "emptied key1 must be gone entirely")
}

// TestDelete_TopLevelBackShift forces three top-level keys into one probe
// cluster, empties the middle one, and confirms the key past the vacancy is
// still reachable — the top-level repair must probe by key1 alone.
func TestDelete_TopLevelBackShift(t *testing.T) {
	// At capacity 7, "a", "h" and "o" all hash to slot 6, forming a cluster
	// that wraps to slots 6, 0, 1. Three keys stay at the 50% threshold.
	table, err := dualkey.New[int](dualkey.Options{Sizes: []int{7, 13}, InternalSizes: []int{5, 13}})
	require.NoError(t, err)
	require.NoError(t, table.Set("a", "x", 1))
	require.NoError(t, table.Set("h", "y", 2))
	require.NoError(t, table.Set("o", "z", 3))

	// Deleting h's only pair clears its top-level slot.
	require.NoError(t, table.Delete("h", "y"))

	assert.Equal(t, 2, table.Len())
	got, err := table.Get("a", "x")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	got, err = table.Get("o", "z")
	require.NoError(t, err, "key past the vacated top slot must remain reachable")
	assert.Equal(t, 3, got)
}

// TestDelete_SubTableBackShift forces three key2s into one sub-table
// cluster, deletes the middle one, and confirms the rest stay reachable.
func TestDelete_SubTableBackShift(t *testing.T) {
	// At sub-capacity 7, "a", "h" and "o" collide; the top key is arbitrary.
	table, err := dualkey.New[int](dualkey.Options{Sizes: []int{5, 13}, InternalSizes: []int{7, 13}})
	require.NoError(t, err)
	require.NoError(t, table.Set("grade", "a", 1))
	require.NoError(t, table.Set("grade", "h", 2))
	require.NoError(t, table.Set("grade", "o", 3))

	require.NoError(t, table.Delete("grade", "h"))

	got, err := table.Get("grade", "a")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	got, err = table.Get("grade", "o")
	require.NoError(t, err, "key2 past the vacated sub slot must remain reachable")
	assert.Equal(t, 3, got)
	assert.Equal(t, 1, table.Len(), "top-level key must survive while its sub-table is non-empty")
}

// TestDelete_Idempotence verifies the second deletion of a pair fails with
// ErrKeyNotFound.
func TestDelete_Idempotence(t *testing.T) {
	table := dualkey.NewDefault[int]()
	require.NoError(t, table.Set("vic", "bogong", 1))

	require.NoError(t, table.Delete("vic", "bogong"))
	assert.ErrorIs(t, table.Delete("vic", "bogong"), dualkey.ErrKeyNotFound)
}

// TestSet_RehashAdvancesSizeSequence verifies that pushing the top-level
// count past 50% advances the capacity to the next sequence entry and keeps
// every previously inserted pair retrievable.
func TestSet_RehashAdvancesSizeSequence(t *testing.T) {
	table, err := dualkey.New[int](smallOptions())
	require.NoError(t, err)
	require.Equal(t, 5, table.Capacity())

	pairs := map[[2]string]int{
		{"a", "x"}: 1,
		{"b", "x"}: 2,
		{"c", "x"}: 3, // third top key: 3 > 5/2, rehash to 13
	}
	require.NoError(t, table.Set("a", "x", 1))
	require.NoError(t, table.Set("b", "x", 2))
	require.NoError(t, table.Set("c", "x", 3))

	assert.Equal(t, 13, table.Capacity(), "capacity must advance to the next sequence entry")
	assert.Equal(t, 3, table.Len())
	for pair, want := range pairs {
		got, getErr := table.Get(pair[0], pair[1])
		require.NoError(t, getErr, "pair %v must survive the rehash", pair)
		assert.Equal(t, want, got)
	}
}

// TestRehash_NoOpAtLargestSize verifies that crossing the load threshold at
// the final configured capacity leaves the table untouched and every pair
// reachable.
func TestRehash_NoOpAtLargestSize(t *testing.T) {
	table, err := dualkey.New[int](dualkey.Options{Sizes: []int{5}, InternalSizes: []int{5, 13}})
	require.NoError(t, err)

	for _, key1 := range []string{"a", "b", "c", "d"} {
		require.NoError(t, table.Set(key1, "x", 1))
	}

	assert.Equal(t, 5, table.Capacity(), "exhausted sequence must not resize")
	assert.Equal(t, 4, table.Len())
	for _, key1 := range []string{"a", "b", "c", "d"} {
		assert.True(t, table.Contains(key1, "x"))
	}
}

// TestSet_TopLevelFull verifies that a saturated top level whose size
// sequence is exhausted reports ErrTableFull for a new key1.
func TestSet_TopLevelFull(t *testing.T) {
	table, err := dualkey.New[int](dualkey.Options{Sizes: []int{3}, InternalSizes: []int{5}})
	require.NoError(t, err)

	require.NoError(t, table.Set("a", "x", 1))
	require.NoError(t, table.Set("b", "x", 2))
	require.NoError(t, table.Set("c", "x", 3))

	assert.ErrorIs(t, table.Set("d", "x", 4), dualkey.ErrTableFull)
}

// TestKeys_TopLevelSlotOrder pins enumeration to storage order rather than
// insertion order.
func TestKeys_TopLevelSlotOrder(t *testing.T) {
	table, err := dualkey.New[int](smallOptions())
	require.NoError(t, err)
	require.NoError(t, table.Set("b", "x", 2))
	require.NoError(t, table.Set("a", "x", 1))

	// At capacity 5, "a" hashes to slot 2 and "b" to slot 3: slot order puts
	// "a" first regardless of insertion order.
	assert.Equal(t, []string{"a", "b"}, table.Keys())
}

// TestValuesOf_MissingKey verifies ValuesOf propagates ErrKeyNotFound for an
// absent top-level key.
func TestValuesOf_MissingKey(t *testing.T) {
	table := dualkey.NewDefault[int]()

	_, err := table.ValuesOf("nowhere")
	assert.ErrorIs(t, err, dualkey.ErrKeyNotFound)
}

// TestValuesOf_GroupIsolation verifies ValuesOf returns only the requested
// group's values.
func TestValuesOf_GroupIsolation(t *testing.T) {
	table := dualkey.NewDefault[int]()
	require.NoError(t, table.Set("easy", "dove", 1))
	require.NoError(t, table.Set("easy", "wellington", 2))
	require.NoError(t, table.Set("hard", "ossa", 3))

	values, err := table.ValuesOf("easy")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, values)
}
