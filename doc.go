// Package lvlhash is a small library of custom hash-table data structures:
// nested open-addressing tables and a trie-structured table that grows by
// deepening instead of rehashing.
//
// 🚀 What is lvlhash?
//
//	A pure-Go, single-threaded library that brings together:
//		• probetable — linear-probing table with tombstone-free deletion
//		  and growth along a configurable prime capacity sequence
//		• dualkey    — two-level table keyed by (key1, key2), one owned
//		  sub-table per top-level key
//		• triehash   — 27-slot recursive table: collisions split into
//		  nested nodes, deletions collapse them back
//		• peaks      — a mountain-catalogue domain layer showing how a
//		  consumer drives the tables
//
// ✨ Why choose lvlhash?
//
//   - Predictable memory – explicit capacity sequences, no hidden resizing policy
//   - Inspectable structure – slot-order enumeration, per-level Locate paths
//   - Pure Go – no cgo, no hidden deps
//   - Honest invariants – probe sequences repaired on every delete, nested
//     nodes collapsed the moment they hold a single entry
//
// Everything is organized under four subpackages:
//
//	probetable/ — single-key linear-probing primitive (the leaf dependency)
//	dualkey/    — two-level probed table composed from probetable sub-tables
//	triehash/   — unbounded-depth trie-structured hash table
//	peaks/      — example domain layer built on dualkey
//
// Quick ASCII example:
//
//	    dualkey               triehash
//	  [k1] ─► {k2: v, …}        (c)─(a)─(t|r)
//	  [k1'] ─► {k2: v, …}       collisions nest, deletions collapse
//
// All tables are single-threaded by design; callers serialize access.
//
//	go get github.com/katalvlaran/lvlhash
package lvlhash
