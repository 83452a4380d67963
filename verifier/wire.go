package verifier

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/claimtrail/go-xmt/xmt"
)

var ErrMalformedRequest = errors.New("verifier: malformed verification request")

// Request is the wire shape for the verification entry point. No transport is
// mandated; embedding RPC handlers deliver the encoded bytes however they
// like. Values and proof entries travel as raw fixed width bytes.
type Request struct {
	Value []byte   `cbor:"1,keyasint"`
	Proof [][]byte `cbor:"2,keyasint"`
}

// EncodeRequest produces the canonical encoding of a verification request.
func EncodeRequest(value xmt.Value, proof xmt.Proof) ([]byte, error) {
	req := Request{
		Value: value.Bytes(),
		Proof: make([][]byte, 0, len(proof)),
	}
	for _, sibling := range proof {
		req.Proof = append(req.Proof, sibling.Bytes())
	}
	return cbor.Marshal(&req)
}

// DecodeRequest decodes and width validates a verification request. Every
// value must be exactly xmt.ValueBytes wide; anything else is rejected rather
// than coerced.
func DecodeRequest(data []byte) (xmt.Value, xmt.Proof, error) {
	var req Request
	if err := cbor.Unmarshal(data, &req); err != nil {
		return xmt.Value{}, nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	value, err := xmt.ValueFromBytes(req.Value)
	if err != nil {
		return xmt.Value{}, nil, err
	}

	proof := make(xmt.Proof, 0, len(req.Proof))
	for _, sibling := range req.Proof {
		v, err := xmt.ValueFromBytes(sibling)
		if err != nil {
			return xmt.Value{}, nil, err
		}
		proof = append(proof, v)
	}
	return value, proof, nil
}
