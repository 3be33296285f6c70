// Package slices provides set-style queries over plain slices.
package slices

import (
	"github.com/BarrensZeppelin/includes"
	"golang.org/x/exp/slices"
)

func Contains[L ~[]E, E comparable](l L, x E) bool {
	return slices.Contains(l, x)
}

// Subset reports whether every element of a occurs in b.
//
// Repeated elements of a are not matched against distinct elements of b, so
// a may be longer than b and still be a subset of it.
func Subset[L ~[]E, E comparable](a, b L) bool {
	return includes.Unordered(b, a)
}
