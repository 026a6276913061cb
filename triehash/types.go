// Package triehash core types and sentinel errors.
package triehash

import "errors"

// ErrKeyNotFound indicates a Get, Delete, or Locate referenced an absent key.
var ErrKeyNotFound = errors.New("triehash: key not found")

// TableSize is the fixed node width: 26 character buckets plus the terminal
// slot used once a key's characters are exhausted.
const TableSize = 27

// terminalSlot is the reserved bucket for keys shorter than the node's level.
const terminalSlot = TableSize - 1

// slotKind tags the three possible states of a node slot.
type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotEntry          // direct (key, value) entry
	slotChild          // nested node, owned exclusively by this slot
)

// slot is one node cell, an explicit tagged variant so every dispatch on
// slot contents is an exhaustive tag match.
type slot[V any] struct {
	kind  slotKind
	key   string
	value V
	child *Table[V]
}
