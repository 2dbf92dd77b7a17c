package aligned_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soa/aligned"
	"soa/tuple"
)

func TestZip_Positional(t *testing.T) {
	p := []int{10, 20, 30, 40}
	q := []string{"a", "b", "c", "d"}

	got := aligned.Zip(aligned.View[row](p), aligned.View[row](q)).Collect()
	require.Len(t, got, len(p))
	for i := range got {
		assert.Equal(t, tuple.Of(p[i], q[i]), got[i])
	}
}

func TestZip_ShortestWins(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"left longer", []int{1, 2, 3}, []int{1, 2}, 2},
		{"right longer", []int{1, 2}, []int{1, 2, 3}, 2},
		{"left empty", nil, []int{1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aligned.Zip(aligned.View[row](tt.a), aligned.View[row](tt.b)).Len())
		})
	}
}

func TestZipExact(t *testing.T) {
	t.Run("equal lengths", func(t *testing.T) {
		got := aligned.ZipExact(aligned.View[row]([]int{1, 2}), aligned.View[row]([]int{3, 4})).Collect()
		assert.Equal(t, []tuple.Pair[int, int]{{First: 1, Second: 3}, {First: 2, Second: 4}}, got)
	})

	t.Run("mismatch panics", func(t *testing.T) {
		var n int
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				assert.True(t, aligned.IsLengthMismatch(r))
				assert.ErrorIs(t, r.(error), aligned.ErrLengthMismatch)
			}()
			aligned.ZipExact(aligned.View[row]([]int{1, 2, 3}), aligned.View[row]([]int{1, 2})).
				ForEach(func(tuple.Pair[int, int]) { n++ })
		}()
		assert.Equal(t, 2, n)
	})

	t.Run("early stop is not a mismatch", func(t *testing.T) {
		it := aligned.ZipExact(aligned.View[row]([]int{1, 2, 3}), aligned.View[row]([]int{1}))
		for range it.Seq() {
			break
		}
	})
}

func TestZip_Nested(t *testing.T) {
	a := []int{1, 2, 3}
	b := []string{"x", "y", "z"}
	c := []float64{0.5, 1.5, 2.5}

	var visited []any
	aligned.Zip(aligned.Zip(aligned.View[row](a), aligned.View[row](b)), aligned.View[row](c)).
		ForEach(func(p tuple.Pair[tuple.Pair[int, string], float64]) {
			visited = append(visited, p.First.First, p.First.Second, p.Second)
		})
	assert.Equal(t, []any{1, "x", 0.5, 2, "y", 1.5, 3, "z", 2.5}, visited)

	triples := aligned.Zip3(aligned.View[row](a), aligned.View[row](b), aligned.View[row](c)).Collect()
	require.Len(t, triples, 3)
	assert.Equal(t, tuple.Triple[int, string, float64]{First: 2, Second: "y", Third: 1.5}, triples[1])
}

func TestForEachInner(t *testing.T) {
	// Two columns whose cells are themselves sequences.
	left := [][]int{{1, 2}, {3}, {4, 5, 6}}
	right := [][]int{{10, 20}, {30}, {40, 50, 60}}

	toSeq := func(s []int) iter.Seq[int] { return slices.Values(s) }
	rows := aligned.Zip(
		aligned.Map(aligned.View[row](left), toSeq),
		aligned.Map(aligned.View[row](right), toSeq),
	)

	var got []tuple.Pair[int, int]
	aligned.ForEachInner(rows, func(p tuple.Pair[int, int]) {
		got = append(got, p)
	})
	assert.Equal(t, []tuple.Pair[int, int]{{First: 1, Second: 10}, {First: 2, Second: 20}, {First: 3, Second: 30}, {First: 4, Second: 40}, {First: 5, Second: 50}, {First: 6, Second: 60}}, got)
}

func TestForEachInner_ThreeColumns(t *testing.T) {
	a := [][]int{{1, 2}, {3}}
	b := [][]int{{10, 20}, {30}}
	c := [][]int{{100, 200}, {300}}

	toSeq := func(s []int) iter.Seq[int] { return slices.Values(s) }
	as := aligned.Map(aligned.View[row](a), toSeq)
	bs := aligned.Map(aligned.View[row](b), toSeq)
	cs := aligned.Map(aligned.View[row](c), toSeq)

	// the first two columns are paired cell by cell before meeting the third
	ab := aligned.Map(aligned.Zip(as, bs), tuple.Inner[int, int])
	rows := aligned.Zip(ab, cs)

	var got []int
	aligned.ForEachInner(rows, func(p tuple.Pair[tuple.Pair[int, int], int]) {
		got = append(got, p.First.First, p.First.Second, p.Second)
	})
	assert.Equal(t, []int{1, 10, 100, 2, 20, 200, 3, 30, 300}, got)
}

func TestForEachInnerSlices(t *testing.T) {
	left := [][]int{{1, 2}, {3, 4, 5}}
	right := [][]int{{1, 1}, {2, 2}}

	aligned.ForEachInnerSlices(aligned.Zip(aligned.View[row](left), aligned.View[row](right)),
		func(x, y *int) { *x *= *y })

	// the surplus of a longer inner slice is left alone
	assert.Equal(t, [][]int{{1, 2}, {6, 8, 5}}, left)
}
