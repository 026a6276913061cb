package triehash_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlhash/triehash"
)

// ExampleTable demonstrates collision splitting and collapse on the classic
// cat/car pair.
//
// Scenario:
//
//	"cat" and "car" share the prefix "ca", so storing both forces two nested
//	splits; their Locate paths diverge only at the third character. Deleting
//	"cat" leaves a lone survivor, which is pulled back up to a direct root
//	entry — visible as a one-step path.
//
// Complexity: O(|key|) per operation.
func ExampleTable() {
	table := triehash.New[int]()

	table.Set("cat", 1)
	table.Set("car", 2)

	path, _ := table.Locate("car")
	fmt.Println("car path:", path)

	_ = table.Delete("cat")
	if _, err := table.Get("cat"); errors.Is(err, triehash.ErrKeyNotFound) {
		fmt.Println("cat is gone")
	}

	path, _ = table.Locate("car")
	fmt.Println("car path:", path)
	value, _ := table.Get("car")
	fmt.Println("car:", value)

	// Output:
	// car path: [21 19 10]
	// cat is gone
	// car path: [21]
	// car: 2
}

// ExampleTable_sortedKeys demonstrates lexicographic enumeration across
// nesting depths, including a key that is a strict prefix of another and
// therefore lives in a terminal slot.
func ExampleTable_sortedKeys() {
	table := triehash.New[int]()
	for i, key := range []string{"cat", "ca", "dog", "car"} {
		table.Set(key, i)
	}

	fmt.Println(table.SortedKeys())
	fmt.Println("len:", table.Len())

	// Output:
	// [ca car cat dog]
	// len: 4
}
