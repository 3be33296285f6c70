package includes

// Seq is a forward-only cursor over a sequence of values. Calling it starts a
// traversal from the beginning; the traversal stops early when yield returns
// false. It has the same shape as iter.Seq.
type Seq[V any] func(yield func(V) bool)

// FromSlice returns a Seq over the elements of s. The slice is not copied.
func FromSlice[V any](s []V) Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// UnorderedSeq reports whether every value produced by needle is equal to some
// value produced by haystack.
//
// needle is traversed at most once. haystack is traversed again, from its
// start, for every needle value, so it must produce the same values each time
// it is called.
func UnorderedSeq[E comparable](haystack, needle Seq[E]) bool {
	return UnorderedSeqFunc(haystack, needle, func(n, h E) bool { return n == h })
}

// UnorderedSeqFunc is like [UnorderedSeq] but matches values with equiv, which
// is called with a needle value and a haystack value, in that order.
func UnorderedSeqFunc[E1, E2 any](haystack Seq[E1], needle Seq[E2], equiv func(E2, E1) bool) bool {
	ok := true
	needle(func(n E2) bool {
		ok = seqContains(haystack, func(h E1) bool { return equiv(n, h) })
		return ok
	})
	return ok
}

func seqContains[E any](s Seq[E], match func(E) bool) (found bool) {
	s(func(e E) bool {
		found = match(e)
		return !found
	})
	return
}
