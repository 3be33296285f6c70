package slices

func Map[L ~[]X, X, Y any](l L, f func(X) Y) []Y {
	r := make([]Y, len(l))
	for i, x := range l {
		r[i] = f(x)
	}
	return r
}

// Permutations returns every ordering of l. The result has len(l)! entries,
// so it is only meant for short slices. l itself is not modified.
func Permutations[L ~[]E, E any](l L) [][]E {
	a := make([]E, len(l))
	copy(a, l)

	var res [][]E
	emit := func() {
		p := make([]E, len(a))
		copy(p, a)
		res = append(res, p)
	}

	// Heap's algorithm, iterative form.
	c := make([]int, len(a))
	emit()
	for i := 1; i < len(a); {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			emit()
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
	return res
}
