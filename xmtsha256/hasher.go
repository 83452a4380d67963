// Package xmtsha256 provides the default hash primitive for xmt trees.
//
// Every party that needs to agree on a root value must use the same concrete
// primitive; this package is that agreement point for sha256 based
// deployments. The implementation is minio's assembly accelerated sha256,
// which is a drop in replacement for crypto/sha256 and produces identical
// digests.
package xmtsha256

import (
	"hash"

	sha256 "github.com/minio/sha256-simd"

	"github.com/claimtrail/go-xmt/xmt"
)

// HashSize is the digest width, which is also xmt.ValueBytes.
const HashSize = sha256.Size

// New returns a fresh hasher for use with the xmt build, prove and verify
// functions. The returned hash.Hash is not safe for concurrent use; create
// one per goroutine.
func New() hash.Hash {
	return sha256.New()
}

// Sum combines two sibling values directly: sha256(a XOR b). It is the
// allocation free convenience form of xmt.CombineValues for callers that have
// fixed on this package's primitive.
func Sum(a, b xmt.Value) xmt.Value {
	var x xmt.Value
	for i := range x {
		x[i] = a[i] ^ b[i]
	}
	return xmt.Value(sha256.Sum256(x[:]))
}
