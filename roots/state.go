package roots

import (
	"crypto/ecdsa"
	"crypto/rand"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/veraison/go-cose"
)

// LogState defines the details we include in our signed commitment to the
// current state of a committed dataset.
type LogState struct {
	// Root is the xmt root over the full, ordered leaf sequence at the time
	// of publication.
	Root []byte `cbor:"1,keyasint"`

	// LeafCount fixes the tree shape (and so the expected proof depth) for
	// the published root.
	LeafCount uint64 `cbor:"2,keyasint"`

	// Timestamp is the unix time (milliseconds) read at the time the root
	// was signed. Including it allows for the same root to be re-signed.
	Timestamp int64 `cbor:"3,keyasint"`

	// CommitmentEpoch allows a log operator to version the commitment
	// configuration. A state only verifies against the epoch it attests to.
	CommitmentEpoch uint32 `cbor:"4,keyasint"`
}

// StateSigner produces a signature over a log state. The signature commits to
// the published root, and should only be created after the tree has been
// rebuilt in full from the finalized leaf sequence.
type StateSigner struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewStateSigner(issuer string, cborCodec dtcbor.CBORCodec) StateSigner {
	rs := StateSigner{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
	return rs
}

// Sign1 signs the provided state. WARNING: You MUST ensure the state was
// derived from the finalized leaf sequence before publishing the result.
//
// The root is detached from the published payload so that verifiers are
// forced to recompute it from the dataset they actually retrieved, rather
// than trusting whatever travelled with the signature.
func (rs StateSigner) Sign1(coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey, subject string, state LogState, external []byte) ([]byte, error) {
	payload, err := rs.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	coseHeaders := cose.Headers{
		Protected: cose.ProtectedHeader{
			dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
				rs.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
		},
	}

	msg := cose.Sign1Message{
		Headers: coseHeaders,
		Payload: payload,
	}
	err = msg.Sign(rand.Reader, external, coseSigner)
	if err != nil {
		return nil, err
	}

	state.Root = nil
	payload, err = rs.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}
	msg.Payload = payload

	return msg.MarshalCBOR()
}

// NewStateCodec returns the deterministic CBOR codec used for log states.
// Determinism matters because the signed payload is reconstructed byte for
// byte during verification.
func NewStateCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

func newStateDecOptions() []dtcose.SignOption {
	return []dtcose.SignOption{dtcose.WithDecOptions(dtcbor.NewDeterministicDecOpts())}
}
