// Package peaks core types and sentinel errors.
package peaks

import "errors"

// Sentinel errors for peaks operations.
var (
	// ErrMountainNotFound indicates the referenced mountain is not in the
	// catalogue (or rank).
	ErrMountainNotFound = errors.New("peaks: mountain not found")

	// ErrDuplicateMountain indicates an Add for a (difficulty, name) pair
	// that is already registered.
	ErrDuplicateMountain = errors.New("peaks: mountain already registered")
)

// Mountain is one climb in the catalogue. Mountains are compared by
// (Difficulty, Name); Length is payload only.
type Mountain struct {
	// Name identifies the mountain within its difficulty bracket.
	Name string

	// Difficulty is the climb's difficulty grade. Any int is valid.
	Difficulty int

	// Length is the track length, in metres.
	Length int
}

// less orders mountains by (Difficulty, Name) ascending.
func less(a, b Mountain) bool {
	if a.Difficulty != b.Difficulty {
		return a.Difficulty < b.Difficulty
	}

	return a.Name < b.Name
}
