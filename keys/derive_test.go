package keys

import (
	"bytes"
	"crypto/ed25519"
	"testing"
)

func testRootSeed(b byte) []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	return seed
}

func TestDeriveChildSeed_Deterministic(t *testing.T) {
	root := testRootSeed(0xA1)
	a, err := DeriveChildSeed(root, "payments")
	if err != nil {
		t.Fatalf("DeriveChildSeed: %v", err)
	}
	b, err := DeriveChildSeed(root, "payments")
	if err != nil {
		t.Fatalf("DeriveChildSeed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same (root, name) must derive the same child seed")
	}
	if len(a) != ed25519.SeedSize {
		t.Fatalf("child seed length = %d, want %d", len(a), ed25519.SeedSize)
	}
}

func TestDeriveChildSeed_DistinctPerName(t *testing.T) {
	root := testRootSeed(0xA1)
	a, err := DeriveChildSeed(root, "payments")
	if err != nil {
		t.Fatalf("DeriveChildSeed: %v", err)
	}
	b, err := DeriveChildSeed(root, "escrow")
	if err != nil {
		t.Fatalf("DeriveChildSeed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("different names must derive different child seeds")
	}
	if bytes.Equal(a, root) {
		t.Fatal("child seed must differ from the root seed")
	}
}

func TestDeriveChildSeed_BadInputs(t *testing.T) {
	if _, err := DeriveChildSeed([]byte{1, 2, 3}, "payments"); err == nil {
		t.Fatal("expected error for short root seed")
	}
	if _, err := DeriveChildSeed(testRootSeed(0xA1), ""); err == nil {
		t.Fatal("expected error for empty child name")
	}
	if _, err := DeriveChildSeed(testRootSeed(0xA1), "bad name"); err == nil {
		t.Fatal("expected error for child name with spaces")
	}
}
