package xmt

import (
	"crypto/sha256"
	"fmt"
	"testing"
)

// testLeaves returns n distinct non empty leaves.
func testLeaves(n int) []Value {
	leaves := make([]Value, n)
	for i := range leaves {
		leaves[i] = leafNum(uint32(i) + 1)
	}
	return leaves
}

func TestVerifyInclusionRoundTrip(t *testing.T) {
	hasher := sha256.New()

	// Every leaf of every tree size through two padded layers.
	for n := 1; n <= 9; n++ {
		leaves := testLeaves(n)
		root, err := BuildRoot(hasher, leaves)
		if err != nil {
			t.Fatalf("BuildRoot() error = %v", err)
		}
		for i := range uint64(n) {
			t.Run(fmt.Sprintf("n=%d/i=%d", n, i), func(t *testing.T) {
				proof, err := BuildProof(hasher, leaves, i)
				if err != nil {
					t.Fatalf("BuildProof() error = %v", err)
				}
				ok, err := VerifyInclusion(hasher, leaves[i], proof, root)
				if err != nil {
					t.Fatalf("VerifyInclusion() error = %v", err)
				}
				if !ok {
					t.Errorf("VerifyInclusion() = false, want true")
				}
			})
		}
	}
}

func TestVerifyInclusionRejectsTamperedValue(t *testing.T) {
	hasher := sha256.New()
	ct := newCanonicalTree()

	root, err := BuildRoot(hasher, ct.leaves)
	if err != nil {
		t.Fatalf("BuildRoot() error = %v", err)
	}

	for i := range uint64(len(ct.leaves)) {
		proof, err := BuildProof(hasher, ct.leaves, i)
		if err != nil {
			t.Fatalf("BuildProof() error = %v", err)
		}

		tampered := ct.leaves[i]
		tampered[0] ^= 0x01

		ok, err := VerifyInclusion(hasher, tampered, proof, root)
		if err != nil {
			t.Fatalf("VerifyInclusion() error = %v", err)
		}
		if ok {
			t.Errorf("VerifyInclusion() accepted a tampered value for leaf %d", i)
		}
	}
}

func TestVerifyInclusionRejectsTamperedProof(t *testing.T) {
	hasher := sha256.New()
	ct := newCanonicalTree()

	root, err := BuildRoot(hasher, ct.leaves)
	if err != nil {
		t.Fatalf("BuildRoot() error = %v", err)
	}
	proof, err := BuildProof(hasher, ct.leaves, 2)
	if err != nil {
		t.Fatalf("BuildProof() error = %v", err)
	}

	mutate := func(p Proof) Proof {
		cp := make(Proof, len(p))
		copy(cp, p)
		return cp
	}

	tests := []struct {
		name  string
		proof Proof
	}{
		{"flipped bit in first entry", func() Proof {
			p := mutate(proof)
			p[0][0] ^= 0x01
			return p
		}()},
		{"flipped bit in last entry", func() Proof {
			p := mutate(proof)
			p[len(p)-1][ValueBytes-1] ^= 0x80
			return p
		}()},
		{"truncated", proof[:len(proof)-1]},
		{"entries reordered", func() Proof {
			p := mutate(proof)
			p[0], p[1] = p[1], p[0]
			return p
		}()},
		{"empty proof against a multi leaf root", Proof{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyInclusion(hasher, ct.leaves[2], tt.proof, root)
			if err != nil {
				t.Fatalf("VerifyInclusion() error = %v", err)
			}
			if ok {
				t.Errorf("VerifyInclusion() accepted a corrupted proof")
			}
		})
	}
}

func TestVerifyInclusionSingleLeaf(t *testing.T) {
	hasher := sha256.New()
	leaves := testLeaves(1)

	root, err := BuildRoot(hasher, leaves)
	if err != nil {
		t.Fatalf("BuildRoot() error = %v", err)
	}

	// A single leaf commits to itself: empty proof, root == leaf.
	ok, err := VerifyInclusion(hasher, leaves[0], Proof{}, root)
	if err != nil {
		t.Fatalf("VerifyInclusion() error = %v", err)
	}
	if !ok {
		t.Errorf("VerifyInclusion() = false for the single leaf tree")
	}

	ok, err = VerifyInclusion(hasher, leafNum(2), Proof{}, root)
	if err != nil {
		t.Fatalf("VerifyInclusion() error = %v", err)
	}
	if ok {
		t.Errorf("VerifyInclusion() accepted the wrong value for the single leaf tree")
	}
}
