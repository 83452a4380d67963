package xmt

import "hash"

// VerifyInclusion reports whether value, folded with the proof siblings in
// order, reproduces root. The symmetric combinator means the fold needs no
// left/right information.
//
// A false return is the normal rejection outcome, not a fault: the embedding
// system must treat it as "reject the data". An error is returned only when
// the fold could not run at all (a hasher of the wrong width).
//
// Verification needs only the value, the proof and the trusted root; it never
// requires the original leaf sequence, so it is safe to expose to callers
// that hold none of the committed data.
func VerifyInclusion(hasher hash.Hash, value Value, proof Proof, root Value) (bool, error) {
	var err error
	temp := value
	for _, sibling := range proof {
		if temp, err = CombineValues(hasher, temp, sibling); err != nil {
			return false, err
		}
	}
	return temp == root, nil
}
