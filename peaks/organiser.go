package peaks

import (
	"fmt"
	"sort"
)

// Organiser maintains a running rank of mountains ordered by
// (difficulty, name) ascending.
type Organiser struct {
	mountains []Mountain
}

// NewOrganiser constructs an empty rank.
func NewOrganiser() *Organiser {
	return &Organiser{}
}

// Len returns the number of ranked mountains.
func (o *Organiser) Len() int { return len(o.mountains) }

// AddMountains merges a batch into the rank.
// Complexity: O((n+k) log(n+k)) for n ranked and k added mountains.
func (o *Organiser) AddMountains(batch []Mountain) {
	o.mountains = append(o.mountains, batch...)
	sort.SliceStable(o.mountains, func(i, j int) bool {
		return less(o.mountains[i], o.mountains[j])
	})
}

// CurrentPosition returns the 0-based rank of mt among all added mountains.
// Returns ErrMountainNotFound if mt was never added.
// Complexity: O(log n).
func (o *Organiser) CurrentPosition(mt Mountain) (int, error) {
	i := sort.Search(len(o.mountains), func(i int) bool {
		return !less(o.mountains[i], mt)
	})
	if i < len(o.mountains) && o.mountains[i] == mt {
		return i, nil
	}

	return 0, fmt.Errorf("peaks: position of %q: %w", mt.Name, ErrMountainNotFound)
}
