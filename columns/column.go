// Package columns provides owned column storage for struct-of-arrays tables.
//
// A Column belongs to one table, named by its tag type A, and hands out aligned
// views of its contents. Views are checked at traversal time: reading a column
// while it is being written through IterMut, or writing it while any view is
// being traversed, fails with aligned.ErrAliasing.
package columns

import (
	"errors"
	"fmt"
	"slices"

	"soa/aligned"
)

var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
	// ErrRagged reports columns of one table with different lengths.
	ErrRagged = errors.New("columns differ in length")
)

// Column is a growable column of T in the table tagged A.
type Column[A, T any] struct {
	data  []T
	guard aligned.Guard
}

var _ aligned.Collector[struct{}, int] = (*Column[struct{}, int])(nil)

func New[A, T any](initialCapacity int) *Column[A, T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Column[A, T]{
		data: make([]T, 0, initialCapacity),
	}
}

// Of returns a column holding a copy of values.
func Of[A, T any](values ...T) *Column[A, T] {
	return &Column[A, T]{data: slices.Clone(values)}
}

// Collect drains it into a new column of the same table.
func Collect[A, T any](it aligned.Iter[A, T]) *Column[A, T] {
	return &Column[A, T]{data: it.Collect()}
}

// Iter returns a read-only view. Each traversal holds a shared borrow.
func (c *Column[A, T]) Iter() aligned.Iter[A, T] {
	return aligned.FromSeq[A](aligned.Guarded(&c.guard, aligned.Shared, func(yield func(T) bool) {
		for _, v := range c.data {
			if !yield(v) {
				return
			}
		}
	}))
}

// IterMut returns a view of pointers into the column. Each traversal holds an
// exclusive borrow, so no other view of c may be traversed at the same time.
func (c *Column[A, T]) IterMut() aligned.Iter[A, *T] {
	return aligned.FromSeq[A](aligned.Guarded(&c.guard, aligned.Exclusive, func(yield func(*T) bool) {
		for i := range c.data {
			if !yield(&c.data[i]) {
				return
			}
		}
	}))
}

// Extend appends every element of it. It fails with aligned.ErrAliasing if a view
// of c is being traversed, including when it reads from c itself. Nothing is
// appended unless it is drained completely.
func (c *Column[A, T]) Extend(it aligned.Iter[A, T]) (err error) {
	if err := c.guard.Acquire(aligned.Exclusive); err != nil {
		return err
	}
	defer c.guard.Release(aligned.Exclusive)
	defer func() {
		if r := recover(); r != nil {
			if !aligned.IsAliasing(r) {
				panic(r)
			}
			err = r.(error)
		}
	}()

	pending := it.Collect()
	c.data = append(c.data, pending...)
	return nil
}

func (c *Column[A, T]) Add(values ...T) error {
	return c.mutate(func() {
		c.data = append(c.data, values...)
	})
}

func (c *Column[A, T]) Set(index int, value T) error {
	if index < 0 || index >= len(c.data) {
		return ErrIndexOutOfBounds
	}
	return c.mutate(func() {
		c.data[index] = value
	})
}

func (c *Column[A, T]) Get(index int) (T, error) {
	if index < 0 || index >= len(c.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return c.data[index], nil
}

// Clear empties the column, keeping its capacity.
func (c *Column[A, T]) Clear() error {
	return c.mutate(func() {
		// clear the underlying array to let elements be GCed
		clear(c.data)
		c.data = c.data[:0]
	})
}

func (c *Column[A, T]) Len() int {
	return len(c.data)
}

func (c *Column[A, T]) IsEmpty() bool {
	return len(c.data) == 0
}

// ToSlice returns a copy of the column contents.
func (c *Column[A, T]) ToSlice() []T {
	return slices.Clone(c.data)
}

// Clone returns a copy of the column in the same table.
func (c *Column[A, T]) Clone() *Column[A, T] {
	return Of[A](c.data...)
}

// String implements fmt.Stringer for easier debugging.
func (c *Column[A, T]) String() string {
	return fmt.Sprintf("%v", c.data)
}

func (c *Column[A, T]) mutate(f func()) error {
	if err := c.guard.Acquire(aligned.Exclusive); err != nil {
		return err
	}
	defer c.guard.Release(aligned.Exclusive)
	f()
	return nil
}

// Sized is anything with a length, such as a Column of any element type.
type Sized interface {
	Len() int
}

// CheckAligned returns an error wrapping ErrRagged unless all columns have the same length.
func CheckAligned(cols ...Sized) error {
	if len(cols) == 0 {
		return nil
	}
	n := cols[0].Len()
	for i, c := range cols[1:] {
		if c.Len() != n {
			return fmt.Errorf("%w: column %d has %d rows, column 0 has %d", ErrRagged, i+1, c.Len(), n)
		}
	}
	return nil
}
