// Package includes checks whether every element of one unsorted sequence is
// present in another unsorted sequence.
//
// The check is order-independent and works for element types that are only
// comparable (or only related by a caller-supplied equivalence), so nothing
// is hashed or sorted. Each needle element is looked up by scanning the
// haystack from the start, which makes the check O(len(haystack) *
// len(needle)) in the worst case.
//
// Duplicates are not counted: a haystack containing a value once includes a
// needle containing that value any number of times.
package includes

import "golang.org/x/exp/slices"

// Unordered reports whether every element of needle is equal to some element
// of haystack. An empty needle is included in any haystack.
func Unordered[H ~[]E, N ~[]E, E comparable](haystack H, needle N) bool {
	for _, n := range needle {
		if !slices.Contains(haystack, n) {
			return false
		}
	}
	return true
}

// UnorderedFunc is like [Unordered] but matches elements with equiv, which is
// called with a needle element and a haystack element, in that order.
func UnorderedFunc[H ~[]E1, N ~[]E2, E1, E2 any](haystack H, needle N, equiv func(E2, E1) bool) bool {
	for _, n := range needle {
		if !slices.ContainsFunc(haystack, func(h E1) bool { return equiv(n, h) }) {
			return false
		}
	}
	return true
}
