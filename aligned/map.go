package aligned

import (
	"soa/seqs"
	"soa/tuple"
)

// Map returns an Iter of f applied to each element of it. f runs exactly once
// per element, in order, when that element is demanded.
func Map[A, T, R any](it Iter[A, T], f func(T) R) Iter[A, R] {
	return Iter[A, R]{seq: seqs.Map(it.Seq(), f)}
}

// Inspect calls f on each element as it passes through, leaving it unchanged.
func Inspect[A, T any](it Iter[A, T], f func(T)) Iter[A, T] {
	return Map(it, func(v T) T {
		f(v)
		return v
	})
}

// Reduce drains it, folding every element into an accumulator.
func Reduce[A, T, R any](it Iter[A, T], initial R, f func(R, T) R) R {
	return seqs.Reduce(it.Seq(), initial, f)
}

// Assign writes each element of src through the matching pointer of dst.
// It stops at the shorter of the two.
func Assign[A, T any](dst Iter[A, *T], src Iter[A, T]) {
	Zip(dst, src).ForEach(func(p tuple.Pair[*T, T]) {
		*p.First = p.Second
	})
}
