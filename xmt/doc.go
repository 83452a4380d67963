package xmt

/*

# XMT primitives (symmetric-combine binary merkle tree)

This package provides the primitive building blocks for committing to an
ordered sequence of fixed width values with a single 32 byte root, and for
proving any single value a member of the committed sequence with a proof whose
length is logarithmic in the sequence length.

The package is a set of "functional primitives":

- small, composable pure functions
- the hash primitive supplied by the caller as a `hash.Hash`
- no retained state between calls
- a burden of agreement on the caller: every party that needs to reproduce
  a root must use the same hash primitive

## The symmetric combinator

Parents are derived from sibling pairs as

	parent = H( left XOR right )

XOR-ing before hashing makes the combinator symmetric, so a verifier folding a
proof never needs to know whether a sibling sat to the left or the right of
the running value. A proof is just an ordered list of sibling values, leaf to
root, and verification is a linear fold:

	temp = value
	for s in proof:
	    temp = CombineValues(temp, s)
	temp == root

Substituting a concatenation based combinator produces a different scheme and
breaks bit exact compatibility with every other party holding the same root.

## Layers and padding

The tree is built strictly bottom up. An odd length layer is extended with a
single EmptyValue (all zero) before pairing, so every paired layer has even
length and layer k+1 has ceil(len(layer k)/2) entries:

	          root
	        /      \
	       p        q         <- layer 2, 2 entries
	     /   \    /   \
	    a     b  c     pad    <- layer 1, 3 entries padded to 4
	   / \   / \  \
	  0   1 2   3  4   pad    <- layer 0, 5 leaves padded to 6

Five leaves pad to six and pair into three; three pad to four and pair into
two; two pair into the root. A proof therefore has ceil(log2(n)) entries for n
leaves, and a single leaf commits to itself with an empty proof.

Note that while the combinator itself is symmetric per pair, the root still
commits to the exact leaf order, because position determines which values get
paired at every layer.

## The padding caveat

EmptyValue is a single global sentinel. A real all zero leaf cannot be
distinguished from padding, so callers must never commit EmptyValue as live
data. See the package tests for the tamper properties that hold under this
restriction.

*/
