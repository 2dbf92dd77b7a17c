package aligned

import (
	"errors"
	"fmt"
	"iter"

	"soa/seqs"
	"soa/tuple"
)

// ErrLengthMismatch is wrapped by the panic of [ZipExact].
var ErrLengthMismatch = seqs.ErrLengthMismatch

// Zip pairs two Iters of the same table positionally. The result stops as soon
// as either side is exhausted.
func Zip[A, T, U any](l Iter[A, T], r Iter[A, U]) Iter[A, tuple.Pair[T, U]] {
	return Iter[A, tuple.Pair[T, U]]{seq: seqs.Zip(l.Seq(), r.Seq())}
}

// ZipExact is Zip for callers that want a length mismatch reported. When one side
// ends before the other, traversal panics with an error wrapping ErrLengthMismatch.
func ZipExact[A, T, U any](l Iter[A, T], r Iter[A, U]) Iter[A, tuple.Pair[T, U]] {
	return Iter[A, tuple.Pair[T, U]]{seq: func(yield func(tuple.Pair[T, U]) bool) {
		for p, err := range seqs.TryZip(l.Seq(), r.Seq()) {
			if err != nil {
				panic(fmt.Errorf("aligned.ZipExact: %w", err))
			}
			if !yield(p) {
				return
			}
		}
	}}
}

// Zip3 zips three Iters of the same table into flat triples.
func Zip3[A, T, U, V any](a Iter[A, T], b Iter[A, U], c Iter[A, V]) Iter[A, tuple.Triple[T, U, V]] {
	return Map(Zip(Zip(a, b), c), tuple.Flatten[T, U, V])
}

// ForEachInner walks rows whose two fields are sequences. For every row, the two
// inner sequences are zipped positionally and f is called once per inner pair.
func ForEachInner[A, X, Y any](it Iter[A, tuple.Pair[iter.Seq[X], iter.Seq[Y]]], f func(tuple.Pair[X, Y])) {
	for row := range it.Seq() {
		for p := range tuple.Inner(row) {
			f(p)
		}
	}
}

// ForEachInnerSlices is ForEachInner for rows of slices. f receives pointers into
// the inner slices, so it may update them in place.
func ForEachInnerSlices[A, X, Y any](it Iter[A, tuple.Pair[[]X, []Y]], f func(x *X, y *Y)) {
	for row := range it.Seq() {
		xs, ys := row.Unpack()
		for i := range min(len(xs), len(ys)) {
			f(&xs[i], &ys[i])
		}
	}
}

// IsLengthMismatch reports whether a value recovered from a ZipExact panic
// signals a length mismatch.
func IsLengthMismatch(r any) bool {
	err, ok := r.(error)
	return ok && errors.Is(err, ErrLengthMismatch)
}
