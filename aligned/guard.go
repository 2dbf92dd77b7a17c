package aligned

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
)

// ErrAliasing reports an exclusive borrow overlapping any other borrow of the same storage.
var ErrAliasing = errors.New("aliasing violation")

// Access is the kind of borrow taken on a Guard.
type Access int

const (
	// Shared borrows may coexist with each other.
	Shared Access = iota
	// Exclusive borrows exclude every other borrow.
	Exclusive
)

func (a Access) String() string {
	if a == Exclusive {
		return "exclusive"
	}
	return "shared"
}

// Guard is a runtime borrow token for storage that hands out views. Any number of
// shared borrows may coexist; an exclusive borrow excludes all others.
//
// The zero value is ready to use. A Guard must not be copied after first use.
type Guard struct {
	// > 0: that many shared borrows; -1: one exclusive borrow.
	state atomic.Int64
}

// Acquire takes a borrow of the given kind, or returns an error wrapping
// ErrAliasing if it would conflict with a live one.
func (g *Guard) Acquire(a Access) error {
	if a == Exclusive {
		if g.state.CompareAndSwap(0, -1) {
			return nil
		}
		return g.conflict(a)
	}
	for {
		s := g.state.Load()
		if s < 0 {
			return g.conflict(a)
		}
		if g.state.CompareAndSwap(s, s+1) {
			return nil
		}
	}
}

// Release gives back a borrow taken by Acquire.
func (g *Guard) Release(a Access) {
	if a == Exclusive {
		g.state.Store(0)
		return
	}
	g.state.Add(-1)
}

// Borrowed reports whether any borrow is live.
func (g *Guard) Borrowed() bool {
	return g.state.Load() != 0
}

func (g *Guard) conflict(a Access) error {
	s := g.state.Load()
	if s < 0 {
		return fmt.Errorf("%w: %s borrow requested while an exclusive borrow is live", ErrAliasing, a)
	}
	return fmt.Errorf("%w: %s borrow requested while %d shared borrows are live", ErrAliasing, a, s)
}

// Guarded wraps seq so that a borrow of kind a is held on g for exactly the span of
// each traversal. A traversal that cannot take its borrow panics with the error
// from Acquire before producing anything.
func Guarded[T any](g *Guard, a Access, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if err := g.Acquire(a); err != nil {
			panic(err)
		}
		defer g.Release(a)
		seq(yield)
	}
}

// IsAliasing reports whether a recovered panic value is an aliasing violation.
func IsAliasing(r any) bool {
	err, ok := r.(error)
	return ok && errors.Is(err, ErrAliasing)
}
