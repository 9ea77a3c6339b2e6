package poe

import (
	"sort"

	"github.com/maruel/natural"
)

// SortKeys returns a copy of keys in natural order, so Ethernet2 sorts
// before Ethernet10.
func SortKeys(keys []string) []string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return natural.Less(sorted[i], sorted[j])
	})
	return sorted
}
