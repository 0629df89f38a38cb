package common

import (
	"cmp"
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// Duplicates returns the values occurring more than once in s, in order of
// their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var out []E

	for _, v := range s {
		seen[v]++
		if seen[v] == 2 {
			out = append(out, v)
		}
	}

	return out
}
