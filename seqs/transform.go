package seqs

import (
	"errors"
	"iter"

	"soa/tuple"
)

// ErrLengthMismatch is reported by [TryZip] when one side runs out before the other.
var ErrLengthMismatch = errors.New("sequences differ in length")

// Zip pairs seq1 and seq2 positionally. It stops as soon as either side is
// exhausted; the surplus of the longer side is never pulled.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[tuple.Pair[T1, T2]] {
	return func(yield func(tuple.Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(tuple.Pair[T1, T2]{First: v1, Second: v2}) {
				return
			}
		}
	}
}

// TryZip pairs seq1 and seq2 positionally like [Zip], but checks that both end together.
// If one side is exhausted first, a zero pair is yielded together with ErrLengthMismatch
// and the sequence ends.
func TryZip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq2[tuple.Pair[T1, T2], error] {
	return func(yield func(tuple.Pair[T1, T2], error) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		var zero tuple.Pair[T1, T2]
		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				yield(zero, ErrLengthMismatch)
				return
			}
			if !yield(tuple.Pair[T1, T2]{First: v1, Second: v2}, nil) {
				return
			}
		}
		// seq1 is done; seq2 must be too
		if _, ok := next2(); ok {
			yield(zero, ErrLengthMismatch)
		}
	}
}

// Enumerate yields each element of seq together with its position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}

		batch := make([]T, 0, size)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}
