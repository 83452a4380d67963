package roots

import (
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

type StoreOptions struct {
	CommitmentEpoch uint32
	CBORCodec       *dtcbor.CBORCodec
}

// Option is a generic option type used for store implementations.
// Implementations type assert to their options target record and ignore
// options whose assertion fails.
type Option func(any)

func WithCommitmentEpoch(epoch uint32) Option {
	return func(opts any) {
		if o, ok := opts.(*StoreOptions); ok {
			o.CommitmentEpoch = epoch
		}
	}
}

func WithCBORCodec(codec *dtcbor.CBORCodec) Option {
	return func(opts any) {
		if o, ok := opts.(*StoreOptions); ok {
			o.CBORCodec = codec
		}
	}
}
