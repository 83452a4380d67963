package xmt

import (
	"hash"
	"math/bits"
)

// ProofDepth returns the number of proof entries for a tree over leafCount
// leaves: ceil(log2(leafCount)), and 0 for a single leaf.
func ProofDepth(leafCount uint64) int {
	if leafCount <= 1 {
		return 0
	}
	return bits.Len64(leafCount - 1)
}

// BuildProof collects the sibling path for the leaf at index i, ordered leaf
// to root. The caller's slice is read but never modified.
//
// At each layer the sibling of an even index is the entry immediately after
// it, and the sibling of an odd index is the entry immediately before it. The
// index then halves and the walk continues on the derived layer. For the five
// leaf tree
//
//	          root
//	        /      \
//	       p        q
//	     /   \    /   \
//	    a     b  c     pad
//	   / \   / \  \
//	  0   1 2   3  4   pad
//
// the proof for leaf index 2 is [leaf3, a, q].
func BuildProof(hasher hash.Hash, leaves []Value, i uint64) (Proof, error) {
	if i >= uint64(len(leaves)) {
		return nil, ErrIndexOutOfRange
	}

	var err error
	proof := make(Proof, 0, ProofDepth(uint64(len(leaves))))
	layer := leaves
	for len(layer) > 1 {
		layer = PadLayer(layer)

		if i%2 == 1 {
			proof = append(proof, layer[i-1])
		} else {
			proof = append(proof, layer[i+1])
		}

		i >>= 1
		if layer, err = NextLayer(hasher, layer); err != nil {
			return nil, err
		}
	}
	return proof, nil
}
