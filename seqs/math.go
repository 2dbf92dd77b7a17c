package seqs

import "iter"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// Number covers every type that supports + - * / and ordering.
type Number interface {
	Integer | Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Max returns the largest element of seq, or false if seq is empty.
func Max[T Number](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max, !first
}
