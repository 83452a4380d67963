package xmt

import "errors"

// ValueBytes is the fixed width of leaves, interior nodes, roots and proof
// entries. It matches the output width of the agreed hash primitive. Leaf data
// and hash outputs share this width so they can be combined interchangeably at
// every layer.
const ValueBytes = 32

// Value is a single fixed width tree value.
type Value [ValueBytes]byte

// EmptyValue is the padding sentinel appended to an odd length layer before
// pairing. A real all zero leaf is indistinguishable from padding, so callers
// must never commit EmptyValue as live data.
var EmptyValue = Value{}

// Proof is the ordered list of sibling values, leaf to root, needed to
// reproduce the root from a single leaf value. There is exactly one entry per
// layer below the root.
type Proof []Value

var (
	ErrEmptyLeaves     = errors.New("xmt: no leaves provided")
	ErrIndexOutOfRange = errors.New("xmt: leaf index out of range")
	ErrBadValueSize    = errors.New("xmt: value must be 32 bytes")
	ErrBadHashSize     = errors.New("xmt: hasher output must be 32 bytes")
)

// ValueFromBytes is the width validation boundary for values arriving from
// storage or the wire. Anything other than exactly ValueBytes bytes is
// rejected rather than coerced.
func ValueFromBytes(b []byte) (Value, error) {
	if len(b) != ValueBytes {
		return Value{}, ErrBadValueSize
	}
	var v Value
	copy(v[:], b)
	return v, nil
}

// Bytes returns the value as a freshly allocated slice.
func (v Value) Bytes() []byte {
	out := make([]byte, ValueBytes)
	copy(out, v[:])
	return out
}

// IsEmpty reports whether v is the padding sentinel.
func (v Value) IsEmpty() bool {
	return v == EmptyValue
}
