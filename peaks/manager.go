package peaks

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlhash/dualkey"
)

// Manager is a mountain catalogue backed by a two-level hash table keyed by
// (difficulty, name). Each difficulty bracket maps to one sub-table, so
// per-bracket queries touch only that bracket.
type Manager struct {
	table *dualkey.Table[Mountain]
}

// NewManager constructs an empty catalogue.
func NewManager() *Manager {
	return &Manager{table: dualkey.NewDefault[Mountain]()}
}

// difficultyKey renders a difficulty grade as a top-level table key.
func difficultyKey(difficulty int) string {
	return strconv.Itoa(difficulty)
}

// Len returns the number of difficulty brackets currently in use.
func (m *Manager) Len() int { return m.table.Len() }

// Add registers a mountain.
// Returns ErrDuplicateMountain if a mountain with the same difficulty and
// name is already present.
// Complexity: O(1) expected.
func (m *Manager) Add(mt Mountain) error {
	if m.table.Contains(difficultyKey(mt.Difficulty), mt.Name) {
		return fmt.Errorf("peaks: add %q: %w", mt.Name, ErrDuplicateMountain)
	}

	return m.table.Set(difficultyKey(mt.Difficulty), mt.Name, mt)
}

// Remove deletes a mountain from the catalogue.
// Returns ErrMountainNotFound if it was never added (or already removed).
// Complexity: O(1) expected.
func (m *Manager) Remove(mt Mountain) error {
	if err := m.table.Delete(difficultyKey(mt.Difficulty), mt.Name); err != nil {
		return fmt.Errorf("peaks: remove %q: %w", mt.Name, ErrMountainNotFound)
	}

	return nil
}

// Edit replaces old with updated, moving it between brackets when the
// difficulty changed.
// Returns ErrMountainNotFound if old is absent, ErrDuplicateMountain if
// updated's (difficulty, name) already belongs to another mountain.
// Complexity: O(1) expected.
func (m *Manager) Edit(old, updated Mountain) error {
	if !m.table.Contains(difficultyKey(old.Difficulty), old.Name) {
		return fmt.Errorf("peaks: edit %q: %w", old.Name, ErrMountainNotFound)
	}
	moved := old.Difficulty != updated.Difficulty || old.Name != updated.Name
	if moved && m.table.Contains(difficultyKey(updated.Difficulty), updated.Name) {
		return fmt.Errorf("peaks: edit %q: %w", updated.Name, ErrDuplicateMountain)
	}
	if moved {
		if err := m.table.Delete(difficultyKey(old.Difficulty), old.Name); err != nil {
			return fmt.Errorf("peaks: edit %q: %w", old.Name, ErrMountainNotFound)
		}
	}

	return m.table.Set(difficultyKey(updated.Difficulty), updated.Name, updated)
}

// WithDifficulty returns every mountain of the given difficulty, ordered by
// name. Returns an empty slice when the bracket is unused.
// Complexity: O(b log b) for a bracket of b mountains.
func (m *Manager) WithDifficulty(difficulty int) []Mountain {
	mountains, err := m.table.ValuesOf(difficultyKey(difficulty))
	if err != nil {
		return []Mountain{}
	}
	sort.Slice(mountains, func(i, j int) bool { return mountains[i].Name < mountains[j].Name })

	return mountains
}

// GroupByDifficulty returns the catalogue as one group per difficulty,
// ascending by difficulty, each group ordered by name.
// Complexity: O(d log d + n log n) for d brackets and n mountains.
func (m *Manager) GroupByDifficulty() [][]Mountain {
	grades := make([]int, 0, m.table.Len())
	for _, key := range m.table.Keys() {
		// Top-level keys are always rendered by difficultyKey, so Atoi
		// cannot fail on a well-formed catalogue.
		grade, _ := strconv.Atoi(key)
		grades = append(grades, grade)
	}
	sort.Ints(grades)

	groups := make([][]Mountain, 0, len(grades))
	for _, grade := range grades {
		groups = append(groups, m.WithDifficulty(grade))
	}

	return groups
}
