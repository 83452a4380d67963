package xmt

import "hash"

// PadLayer returns layer extended to even length with a single EmptyValue.
// The input is never modified; when padding is needed a copy is returned, and
// an already even layer is returned as is.
func PadLayer(layer []Value) []Value {
	if len(layer)%2 == 0 {
		return layer
	}
	padded := make([]Value, len(layer)+1)
	copy(padded, layer)
	// padded[len(layer)] zero value is EmptyValue
	return padded
}

// NextLayer derives layer k+1 from layer k: pad to even length, then emit
// CombineValues(layer[i], layer[i+1]) for i = 0, 2, 4, ... in order. The
// result has ceil(len(layer)/2) entries.
func NextLayer(hasher hash.Hash, layer []Value) ([]Value, error) {
	layer = PadLayer(layer)
	next := make([]Value, len(layer)/2)
	for i := 0; i < len(layer); i += 2 {
		parent, err := CombineValues(hasher, layer[i], layer[i+1])
		if err != nil {
			return nil, err
		}
		next[i/2] = parent
	}
	return next, nil
}
