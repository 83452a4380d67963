package xmt

import "hash"

// CombineValues merges two sibling values into their parent:
//
//	parent = H( a XOR b )
//
// The XOR makes the combinator symmetric, CombineValues(h, a, b) and
// CombineValues(h, b, a) are identical, which is what lets proof verification
// fold siblings in sequence without tracking left/right position.
//
// The hasher is Reset before use and must produce exactly ValueBytes bytes,
// otherwise ErrBadHashSize is returned.
func CombineValues(hasher hash.Hash, a, b Value) (Value, error) {
	var x Value
	for i := range x {
		x[i] = a[i] ^ b[i]
	}

	hasher.Reset()
	_, _ = hasher.Write(x[:])

	var out Value
	sum := hasher.Sum(out[:0])
	if len(sum) != ValueBytes {
		return Value{}, ErrBadHashSize
	}
	copy(out[:], sum)
	return out, nil
}
