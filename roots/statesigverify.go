package roots

import (
	"crypto"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSignedState decodes the LogState values from the signed message. See
// VerifySignedState for a description of how to complete verification.
func DecodeSignedState(
	codec dtcbor.CBORCodec, msg []byte,
) (*dtcose.CoseSign1Message, LogState, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(msg, newStateDecOptions()...)
	if err != nil {
		return nil, LogState{}, err
	}

	var unverifiedState LogState
	err = codec.UnmarshalInto(signed.Payload, &unverifiedState)
	if err != nil {
		return nil, LogState{}, err
	}
	return signed, unverifiedState, nil
}

// VerifySignedState applies the provided state to the signed message and
// verifies the result.
//
// When signing and publishing states, the root is removed from the payload
// prior to publishing, so the decoded state can not verify on its own.
// Verification is a 3 step process:
//  1. Use DecodeSignedState to obtain the (rootless) LogState from the
//     signed message.
//  2. Rebuild the root over the retrieved dataset, using the LeafCount from
//     that state to check the expected tree shape.
//  3. Set the rebuilt root on the state and call this function to complete
//     the verification.
func VerifySignedState(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider, signed *dtcose.CoseSign1Message, unverifiedState LogState, external []byte) error {

	if len(unverifiedState.Root) == 0 {
		return ErrStateRootMissing
	}

	var err error
	signed.Payload, err = codec.MarshalCBOR(unverifiedState)
	if err != nil {
		return err
	}
	return signed.VerifyWithProvider(keyProvider, external)
}
