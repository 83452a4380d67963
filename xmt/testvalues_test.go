package xmt

import (
	"crypto/sha256"
	"encoding/binary"
)

// This file holds a mandraulically constructed five leaf tree so that the
// layer building, proof generation and verification can legitimately be
// tested against values that were not produced by the code under test.
//
//	          root
//	        /      \
//	       p        q
//	     /   \    /   \
//	    a     b  c     pad
//	   / \   / \  \
//	  l0 l1 l2 l3  l4  pad

// hxor independently reproduces the combinator: sha256(a XOR b).
func hxor(a, b Value) Value {
	var x [ValueBytes]byte
	for i := range x {
		x[i] = a[i] ^ b[i]
	}
	return Value(sha256.Sum256(x[:]))
}

// leafNum embeds a 32 bit test constant in the trailing bytes of a Value.
func leafNum(n uint32) Value {
	var v Value
	binary.BigEndian.PutUint32(v[ValueBytes-4:], n)
	return v
}

type canonicalTree struct {
	leaves []Value
	layer1 []Value
	layer2 []Value
	root   Value
}

// newCanonicalTree builds the five leaf tree by hand, layer by layer. Five
// leaves is the smallest count that triggers padding at every layer.
func newCanonicalTree() canonicalTree {
	leaves := []Value{
		leafNum(0x0BAD0010),
		leafNum(0x60A70020),
		leafNum(0xBEEF0030),
		leafNum(0xDEAD0040),
		leafNum(0xCA110050),
	}

	a := hxor(leaves[0], leaves[1])
	b := hxor(leaves[2], leaves[3])
	c := hxor(leaves[4], EmptyValue)

	p := hxor(a, b)
	q := hxor(c, EmptyValue)

	return canonicalTree{
		leaves: leaves,
		layer1: []Value{a, b, c},
		layer2: []Value{p, q},
		root:   hxor(p, q),
	}
}
