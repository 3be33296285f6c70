package queue

import "errors"

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[E any] struct {
	elements []E
}

func Of[E any](elements ...E) *Queue[E] {
	q := &Queue[E]{}
	for _, e := range elements {
		q.Push(e)
	}
	return q
}

func (q *Queue[E]) Push(e E) {
	q.elements = append(q.elements, e)
}

func (q *Queue[E]) Empty() bool {
	return len(q.elements) == 0
}

func (q *Queue[E]) Len() int {
	return len(q.elements)
}

var ErrEmpty = errors.New("Queue is empty")

func (q *Queue[E]) Pop() E {
	if q.Empty() {
		panic(ErrEmpty)
	}

	e := q.elements[0]
	q.elements = q.elements[1:]
	return e
}

// Drain returns a sequence that pops and yields elements until the queue is
// empty or yield returns false. Elements that have been yielded are gone, so
// the sequence can only be traversed once.
func (q *Queue[E]) Drain() func(yield func(E) bool) {
	return func(yield func(E) bool) {
		for !q.Empty() {
			if !yield(q.Pop()) {
				return
			}
		}
	}
}
