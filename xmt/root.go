package xmt

import "hash"

// BuildRoot computes the commitment root for an ordered, non empty leaf
// sequence. The caller's slice is read but never modified.
//
// Layers are derived bottom up until a single value remains. A single leaf is
// its own root (zero iterations). The root commits to the exact order of the
// leaves: permuting them changes which values pair at every layer, and so
// changes the root, even though each individual pair combine is symmetric.
func BuildRoot(hasher hash.Hash, leaves []Value) (Value, error) {
	if len(leaves) == 0 {
		return Value{}, ErrEmptyLeaves
	}

	var err error
	layer := leaves
	for len(layer) > 1 {
		if layer, err = NextLayer(hasher, layer); err != nil {
			return Value{}, err
		}
	}
	return layer[0], nil
}
