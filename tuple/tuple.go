// Package tuple provides the small product types produced by zipping sequences.
package tuple

import (
	"cmp"
	"fmt"
	"iter"
)

// Pair is an ordered 2-tuple. The zero value is the pair of zero values.
// Pairs of comparable fields are comparable and can be used as map keys.
type Pair[F, S any] struct {
	First  F
	Second S
}

// Of builds a Pair.
func Of[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

// Unpack returns both fields, for use in multi-value assignments.
func (p Pair[F, S]) Unpack() (F, S) {
	return p.First, p.Second
}

// Swap returns the pair with its fields exchanged.
func (p Pair[F, S]) Swap() Pair[S, F] {
	return Pair[S, F]{First: p.Second, Second: p.First}
}

func (p Pair[F, S]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Compare orders pairs lexicographically: by First, then by Second.
func Compare[F, S cmp.Ordered](a, b Pair[F, S]) int {
	if c := cmp.Compare(a.First, b.First); c != 0 {
		return c
	}
	return cmp.Compare(a.Second, b.Second)
}

// Triple is an ordered 3-tuple.
type Triple[F, S, T any] struct {
	First  F
	Second S
	Third  T
}

// Flatten turns a left-nested pair, as produced by zipping a zip with a third
// sequence, into a Triple.
func Flatten[F, S, T any](p Pair[Pair[F, S], T]) Triple[F, S, T] {
	return Triple[F, S, T]{First: p.First.First, Second: p.First.Second, Third: p.Second}
}

// Inner zips the two sequences held by p positionally. It stops as soon as
// either side is exhausted.
func Inner[X, Y any](p Pair[iter.Seq[X], iter.Seq[Y]]) iter.Seq[Pair[X, Y]] {
	return func(yield func(Pair[X, Y]) bool) {
		if p.First == nil || p.Second == nil {
			return
		}
		next, stop := iter.Pull(p.Second)
		defer stop()

		for x := range p.First {
			y, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[X, Y]{First: x, Second: y}) {
				return
			}
		}
	}
}
