package roots

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateECKey(t *testing.T, curve elliptic.Curve) ecdsa.PrivateKey {
	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	return *privateKey
}

func TestNewStateSigner(t *testing.T, issuer string) StateSigner {
	cborCodec, err := NewStateCodec()
	require.NoError(t, err)
	rs := NewStateSigner(issuer, cborCodec)
	return rs
}
