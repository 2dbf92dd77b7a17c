package aligned

import (
	"iter"
	"slices"
)

// Iter is a lazy, forward-only sequence of T aligned to the table tagged A.
//
// The zero value yields nothing.
type Iter[A, T any] struct {
	// Makes Iter[A, T] and Iter[B, T] distinct underlying types, so a tag
	// cannot be swapped by a conversion.
	_   [0]A
	seq iter.Seq[T]
}

// Collector is a collection of the table tagged A that can absorb an Iter.
type Collector[A, T any] interface {
	Extend(Iter[A, T]) error
}

// View returns a read-only Iter over s, tagged A. The caller is responsible for
// picking the right tag; nothing is checked against other views.
func View[A, T any](s []T) Iter[A, T] {
	return Iter[A, T]{seq: slices.Values(s)}
}

// ViewMut returns an Iter over pointers to the elements of s, tagged A.
// No other view of s may be traversed while it is in use.
func ViewMut[A, T any](s []T) Iter[A, *T] {
	return Iter[A, *T]{seq: func(yield func(*T) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}}
}

// FromSeq tags an arbitrary sequence with A.
func FromSeq[A, T any](seq iter.Seq[T]) Iter[A, T] {
	return Iter[A, T]{seq: seq}
}

// Seq converts it to a plain sequence. The result supports any iteration,
// including filtering and reordering, but is no longer tracked as aligned.
func (it Iter[A, T]) Seq() iter.Seq[T] {
	if it.seq == nil {
		return func(func(T) bool) {}
	}
	return it.seq
}

// Pull converts it to a pull-style iterator. stop must be called if the
// iterator is not drained.
func (it Iter[A, T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(it.Seq())
}

// ForEach calls f on every element, in order.
func (it Iter[A, T]) ForEach(f func(T)) {
	for v := range it.Seq() {
		f(v)
	}
}

// Collect drains it into a new slice.
func (it Iter[A, T]) Collect() []T {
	return slices.Collect(it.Seq())
}

// CollectInto drains it into dst, which must belong to the same table.
func (it Iter[A, T]) CollectInto(dst Collector[A, T]) error {
	return dst.Extend(it)
}

// Len drains it and returns the number of elements seen.
func (it Iter[A, T]) Len() int {
	n := 0
	for range it.Seq() {
		n++
	}
	return n
}
