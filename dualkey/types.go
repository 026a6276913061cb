// Package dualkey core types, options, and sentinel errors.
package dualkey

import (
	"errors"

	"github.com/katalvlaran/lvlhash/probetable"
)

// Sentinel errors for dualkey operations.
var (
	// ErrKeyNotFound indicates the requested key pair (or top-level key) is
	// absent at some level.
	ErrKeyNotFound = errors.New("dualkey: key not found")

	// ErrTableFull indicates a full probe circuit at the top level or inside
	// a sub-table found no empty or matching slot. Rare in normal operation
	// (Set rehashes past 50% occupancy); signals an exhausted size sequence
	// and should be treated as fatal rather than retried.
	ErrTableFull = errors.New("dualkey: table is full")

	// ErrBadSizes indicates Options carried an invalid capacity sequence.
	ErrBadSizes = errors.New("dualkey: invalid capacity sequence")
)

// Options configures a Table.
type Options struct {
	// Sizes is the strictly increasing capacity sequence for the top-level
	// array. Nil or empty selects probetable.DefaultSizes.
	Sizes []int

	// InternalSizes is the capacity sequence handed to every sub-table.
	// Nil or empty inherits Sizes.
	InternalSizes []int
}

// DefaultOptions returns Options with both levels on probetable.DefaultSizes.
func DefaultOptions() Options {
	return Options{
		Sizes:         probetable.DefaultSizes(),
		InternalSizes: probetable.DefaultSizes(),
	}
}
