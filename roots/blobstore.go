package roots

import (
	"context"
	"io"
	"time"

	"github.com/datatrails/go-datatrails-common/azblob"
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/claimtrail/go-xmt/xmt"
)

// stateStore is the narrow view of the azblob storer that BlobStore needs.
type stateStore interface {
	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)

	Put(
		ctx context.Context,
		identity string,
		source io.ReadSeekCloser,
		opts ...azblob.Option,
	) (*azblob.WriteResponse, error)
}

// BlobStore holds the trusted state record for one log in blob storage.
//
// Writes are guarded with the blob ETag so that two concurrent republishers
// can not interleave: the loser of the race gets a precondition failure from
// the store rather than silently clobbering the winner. Reads are single blob
// gets, which the store already serves atomically.
type BlobStore struct {
	log   logger.Logger
	store stateStore
	codec dtcbor.CBORCodec

	logID           uuid.UUID
	blobPath        string
	commitmentEpoch uint32
}

func NewBlobStore(log logger.Logger, store stateStore, logID uuid.UUID, opts ...Option) (*BlobStore, error) {
	options := StoreOptions{
		CommitmentEpoch: 1,
	}
	for _, o := range opts {
		o(&options)
	}

	codec := options.CBORCodec
	if codec == nil {
		c, err := NewStateCodec()
		if err != nil {
			return nil, err
		}
		codec = &c
	}

	s := &BlobStore{
		log:             log,
		store:           store,
		codec:           *codec,
		logID:           logID,
		blobPath:        StateBlobPath(logID),
		commitmentEpoch: options.CommitmentEpoch,
	}
	return s, nil
}

// GetState reads and decodes the current trusted state record.
func (s *BlobStore) GetState(ctx context.Context) (LogState, error) {
	state, _, err := s.readState(ctx)
	return state, err
}

// PutState publishes a new trusted state record, replacing any previous one.
//
// The current blob ETag is read first and asserted on the write; a republish
// racing with this one fails cleanly and must be retried by the caller with a
// freshly built state.
func (s *BlobStore) PutState(ctx context.Context, state LogState) error {
	if len(state.Root) == 0 {
		return ErrStateRootMissing
	}

	data, err := s.codec.MarshalCBOR(state)
	if err != nil {
		return err
	}

	var opts []azblob.Option
	_, etag, err := s.readState(ctx)
	switch {
	case err == nil:
		// CRITICAL: the etag guards against racy updates.
		opts = append(opts, azblob.WithEtagMatch(etag))
	case IsRootNotFound(err):
		// The way to spell 'fail without modifying if the blob exists' is to
		// require that no blob matches *any* etag.
		opts = append(opts, azblob.WithEtagNoneMatch("*"))
	default:
		return err
	}

	_, err = s.store.Put(ctx, s.blobPath, azblob.NewBytesReaderCloser(data), opts...)
	if err != nil {
		return err
	}
	s.log.Infof(
		"published root for log %s: leafCount=%d epoch=%d",
		s.logID.String(), state.LeafCount, state.CommitmentEpoch)
	return nil
}

// GetRoot implements the RootStore contract on top of the state record.
func (s *BlobStore) GetRoot(ctx context.Context) (xmt.Value, error) {
	state, _, err := s.readState(ctx)
	if err != nil {
		return xmt.Value{}, err
	}
	if len(state.Root) == 0 {
		return xmt.Value{}, ErrStateRootMissing
	}
	return xmt.ValueFromBytes(state.Root)
}

// SetRoot implements the RootStore contract. Callers that know the leaf count
// should prefer PutState, which records the full state.
func (s *BlobStore) SetRoot(ctx context.Context, root xmt.Value) error {
	return s.PutState(ctx, LogState{
		Root:            root.Bytes(),
		Timestamp:       time.Now().UnixMilli(),
		CommitmentEpoch: s.commitmentEpoch,
	})
}

func (s *BlobStore) readState(ctx context.Context) (LogState, string, error) {
	rr, err := s.store.Reader(ctx, s.blobPath)
	if err != nil {
		return LogState{}, "", WrapRootNotFound(err)
	}
	defer func() { _ = rr.Reader.Close() }()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return LogState{}, "", err
	}

	var state LogState
	if err = s.codec.UnmarshalInto(data, &state); err != nil {
		return LogState{}, "", err
	}

	etag := ""
	if rr.ETag != nil {
		etag = *rr.ETag
	}
	return state, etag, nil
}
