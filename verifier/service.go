// Package verifier exposes the single integrity checking surface intended
// for untrusted callers: present a value and a proof, get back accept or
// reject against the trusted root.
//
// The service deliberately has no way to receive the committed leaf sequence.
// Verification is a fold over the proof alone, so it stays cheap enough for
// cost constrained or adversarial environments, and callers can not
// substitute their own dataset for the committed one.
package verifier

import (
	"context"
	"hash"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/claimtrail/go-xmt/xmt"
)

// RootGetter is the only view of the root store the verifier needs. Notably
// it excludes SetRoot: nothing reachable from an untrusted caller may write
// the trusted root.
type RootGetter interface {
	GetRoot(ctx context.Context) (xmt.Value, error)
}

type Service struct {
	log       logger.Logger
	roots     RootGetter
	newHasher func() hash.Hash
}

// New creates a verification service over the given trusted root source.
// newHasher must produce the same primitive the root was built with,
// typically xmtsha256.New.
func New(log logger.Logger, roots RootGetter, newHasher func() hash.Hash) *Service {
	return &Service{
		log:       log,
		roots:     roots,
		newHasher: newHasher,
	}
}

// Verify reports whether value is a member of the committed sequence.
//
// A false result with a nil error means the proof checked out false and the
// caller must reject the data. A non nil error means verification could not
// run at all (no published root yet, store unavailable); it must never be
// conflated with a clean rejection.
func (s *Service) Verify(ctx context.Context, value xmt.Value, proof xmt.Proof) (bool, error) {
	root, err := s.roots.GetRoot(ctx)
	if err != nil {
		return false, err
	}

	ok, err := xmt.VerifyInclusion(s.newHasher(), value, proof, root)
	if err != nil {
		return false, err
	}
	if !ok {
		s.log.Infof("verification rejected a value against the trusted root (proof depth %d)", len(proof))
	}
	return ok, nil
}

// VerifyRequest decodes and verifies a wire encoded request in one step. The
// decode applies the width validation, so malformed requests fail closed with
// an error rather than producing a meaningless boolean.
func (s *Service) VerifyRequest(ctx context.Context, data []byte) (bool, error) {
	value, proof, err := DecodeRequest(data)
	if err != nil {
		return false, err
	}
	return s.Verify(ctx, value, proof)
}
