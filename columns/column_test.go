package columns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soa/aligned"
	"soa/columns"
	"soa/tuple"
)

type body struct{}

func TestColumn_Basic(t *testing.T) {
	c := columns.New[body, int](4)
	assert.True(t, c.IsEmpty(), "new column should be empty")

	require.NoError(t, c.Add(10, 20, 30))
	assert.Equal(t, 3, c.Len())

	v, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, c.Set(1, 25))
	assert.Equal(t, []int{10, 25, 30}, c.ToSlice())
	assert.Equal(t, "[10 25 30]", c.String())

	require.NoError(t, c.Clear())
	assert.True(t, c.IsEmpty(), "column should be empty after Clear")
}

func TestColumn_Bounds(t *testing.T) {
	c := columns.Of[body](1, 2)
	for _, idx := range []int{-1, 2} {
		_, err := c.Get(idx)
		assert.ErrorIs(t, err, columns.ErrIndexOutOfBounds, "Get(%d)", idx)
		assert.ErrorIs(t, c.Set(idx, 0), columns.ErrIndexOutOfBounds, "Set(%d)", idx)
	}
}

func TestColumn_OfCopies(t *testing.T) {
	src := []int{1, 2}
	c := columns.Of[body](src...)
	src[0] = 99
	v, _ := c.Get(0)
	assert.Equal(t, 1, v, "Of must copy its input")

	clone := c.Clone()
	_ = clone.Set(0, 7)
	v, _ = c.Get(0)
	assert.Equal(t, 1, v, "Clone must not share storage")
}

func TestColumn_ZipInPlace(t *testing.T) {
	a := columns.Of[body](1, 2, 3)
	b := columns.Of[body](2, 3, 5)

	aligned.Zip(a.IterMut(), b.Iter()).ForEach(func(p tuple.Pair[*int, int]) {
		*p.First += p.Second
	})

	assert.Equal(t, []int{3, 5, 8}, a.ToSlice())
}

func TestColumn_AliasingPanics(t *testing.T) {
	a := columns.Of[body](1, 2, 3)

	defer func() {
		r := recover()
		require.True(t, aligned.IsAliasing(r), "expected aliasing panic, got %v", r)
		// borrows are released; the column is usable again
		assert.NoError(t, a.Add(4))
	}()

	aligned.Zip(a.IterMut(), a.Iter()).ForEach(func(p tuple.Pair[*int, int]) {
		*p.First += p.Second
	})
	t.Fatal("unreachable")
}

func TestColumn_MutateDuringTraversal(t *testing.T) {
	a := columns.Of[body](1, 2, 3)

	var addErr, setErr error
	a.Iter().ForEach(func(v int) {
		if v == 2 {
			addErr = a.Add(4)
			setErr = a.Set(0, 0)
		}
	})
	assert.ErrorIs(t, addErr, aligned.ErrAliasing)
	assert.ErrorIs(t, setErr, aligned.ErrAliasing)
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice(), "column changed during traversal")
}

func TestColumn_CollectAndExtend(t *testing.T) {
	a := columns.Of[body](1, 2, 3)
	b := columns.Of[body](10, 20, 30)

	sum := columns.Collect(aligned.Add(a.Iter(), b.Iter()))
	assert.Equal(t, []int{11, 22, 33}, sum.ToSlice())

	dst := columns.New[body, int](0)
	require.NoError(t, aligned.Neg(a.Iter()).CollectInto(dst))
	assert.Equal(t, []int{-1, -2, -3}, dst.ToSlice())
}

func TestColumn_ExtendFromSelf(t *testing.T) {
	a := columns.Of[body](1, 2)

	err := a.Extend(a.Iter())
	require.ErrorIs(t, err, aligned.ErrAliasing)
	assert.Equal(t, 2, a.Len())

	// A copy taken first is fine.
	require.NoError(t, a.Extend(a.Clone().Iter()))
	assert.Equal(t, []int{1, 2, 1, 2}, a.ToSlice())
}

func TestColumn_ExtendFailureAppendsNothing(t *testing.T) {
	dst := columns.Of[body](7)
	x := columns.Of[body](1, 2, 3)
	y := columns.Of[body](1, 2)

	firsts := aligned.Map(aligned.ZipExact(x.Iter(), y.Iter()), func(p tuple.Pair[int, int]) int {
		return p.First
	})

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			assert.True(t, aligned.IsLengthMismatch(r))
		}()
		_ = dst.Extend(firsts)
		t.Fatal("unreachable")
	}()

	assert.Equal(t, []int{7}, dst.ToSlice())
	// every borrow is released
	require.NoError(t, dst.Add(8))
	require.NoError(t, x.Add(4))
	assert.Equal(t, []int{7, 8}, dst.ToSlice())
}

func TestCheckAligned(t *testing.T) {
	ints := columns.Of[body](1, 2, 3)
	names := columns.Of[body]("a", "b", "c")
	short := columns.Of[body](1.5)

	assert.NoError(t, columns.CheckAligned(ints, names))
	assert.NoError(t, columns.CheckAligned())

	err := columns.CheckAligned(ints, names, short)
	require.ErrorIs(t, err, columns.ErrRagged)
	assert.EqualError(t, err, "columns differ in length: column 2 has 1 rows, column 0 has 3")
}
