/*
Package aligned provides iteration over a struct-of-arrays layout, where the
values of one logical row are spread across several independently stored
columns and are related only by their position.

Every producer is an [Iter] carrying two type parameters: the element type and
an alignment tag. The tag is an otherwise unused marker type naming the table
the column belongs to:

	type particle struct{}

	xs := aligned.View[particle](x)
	vs := aligned.View[particle](vx)
	aligned.Zip(xs, vs) // ok: both are Iter[particle, float64]

Iters of different tags cannot be combined, even with identical element types.
The mismatch is rejected by the compiler, not at run time:

	type ship struct{}
	aligned.Zip(xs, aligned.View[ship](hull)) // does not compile

# Alignment

Iters with the same tag are expected to have the same length. Only operations
that keep position-for-position correspondence are offered: [Zip], [Map],
[Inspect], the elementwise operators ([Add], [Neg], ...) and the terminal
[Iter.ForEach], [Iter.CollectInto] and [Reduce]. There is no Filter, Take or
Skip. Call [Iter.Seq] to leave the aligned world; the plain iter.Seq it returns
supports anything, and nothing is tracked from there on.

Zipping Iters of unequal length silently stops at the shorter one. [ZipExact]
panics instead.

# Exclusive access

[ViewMut] yields pointers into the backing slice. Go cannot prove that no other
view of the same slice is live, so storages that hand out views wrap them with a
[Guard]; a conflicting traversal panics with an error wrapping [ErrAliasing]
instead of racing.

Everything here is single-threaded and lazy: nothing runs until a terminal
operation or a range over Seq pulls elements.
*/
package aligned
