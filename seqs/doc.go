/*
Package seqs provides general-purpose helpers for Go 1.23+ iterators (iter.Seq).

These are the plain, alignment-unaware operations: [Filter], [Take], [Skip],
[Enumerate] and [Chunk] can drop or regroup elements, so they are only reachable
after an aligned producer has been converted with its Seq method.

	evens := seqs.Filter(it.Seq(), func(v int) bool { return v%2 == 0 })

[Map] and [Zip] preserve position and back the aligned combinators.

# Error Handling

"Try" variants (e.g., [TryZip]) yield an error next to each element instead of
panicking. The iteration continues for as long as the consumer keeps asking.

# Numeric constraints

[Number], [Integer], [Signed] and [Float] constrain the arithmetic helpers here and
the elementwise operators of package aligned.
*/
package seqs
