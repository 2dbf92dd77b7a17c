package aligned

import (
	"soa/seqs"
	"soa/tuple"
)

// Elementwise operators. Each binary operator is exactly Map(Zip(l, r), op):
// equally lazy, stopping at the shorter side, and restricted to one table.

type addable interface {
	seqs.Number | ~string
}

type negatable interface {
	seqs.Signed | seqs.Float
}

func binary[A, T, U, R any](l Iter[A, T], r Iter[A, U], op func(T, U) R) Iter[A, R] {
	return Map(Zip(l, r), func(p tuple.Pair[T, U]) R {
		return op(p.First, p.Second)
	})
}

// Add yields l[i] + r[i].
func Add[A any, T addable](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a + b })
}

// Sub yields l[i] - r[i].
func Sub[A any, T seqs.Number](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a - b })
}

// Mul yields l[i] * r[i].
func Mul[A any, T seqs.Number](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a * b })
}

// Div yields l[i] / r[i]. Integer division by zero panics when the element is produced.
func Div[A any, T seqs.Number](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a / b })
}

// Rem yields l[i] % r[i].
func Rem[A any, T seqs.Integer](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a % b })
}

// And yields l[i] & r[i].
func And[A any, T seqs.Integer](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a & b })
}

// Or yields l[i] | r[i].
func Or[A any, T seqs.Integer](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a | b })
}

// Xor yields l[i] ^ r[i].
func Xor[A any, T seqs.Integer](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a ^ b })
}

// AndNot yields l[i] &^ r[i].
func AndNot[A any, T seqs.Integer](l, r Iter[A, T]) Iter[A, T] {
	return binary(l, r, func(a, b T) T { return a &^ b })
}

// Shl yields l[i] << r[i]. A negative shift count panics.
func Shl[A any, T, S seqs.Integer](l Iter[A, T], r Iter[A, S]) Iter[A, T] {
	return binary(l, r, func(a T, n S) T { return a << n })
}

// Shr yields l[i] >> r[i]. A negative shift count panics.
func Shr[A any, T, S seqs.Integer](l Iter[A, T], r Iter[A, S]) Iter[A, T] {
	return binary(l, r, func(a T, n S) T { return a >> n })
}

// Neg yields -it[i].
func Neg[A any, T negatable](it Iter[A, T]) Iter[A, T] {
	return Map(it, func(v T) T { return -v })
}

// Not yields !it[i].
func Not[A any, T ~bool](it Iter[A, T]) Iter[A, T] {
	return Map(it, func(v T) T { return !v })
}

// Complement yields the bitwise complement ^it[i].
func Complement[A any, T seqs.Integer](it Iter[A, T]) Iter[A, T] {
	return Map(it, func(v T) T { return ^v })
}
