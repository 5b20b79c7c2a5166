package keys

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// deriveContext domain-separates the child-seed KDF from any other use of
// the root seed.
const deriveContext = "strkey-keys-kms-lite-v1"

// DeriveChildSeed deterministically derives a named child Ed25519 seed from
// a root seed. The same (root, name) pair always yields the same child.
func DeriveChildSeed(rootSeed []byte, name string) ([]byte, error) {
	if len(rootSeed) != ed25519.SeedSize {
		return nil, fmt.Errorf("root seed must be %d bytes", ed25519.SeedSize)
	}
	if err := CheckChildName(name); err != nil {
		return nil, err
	}

	h := sha3.New256()
	_, _ = h.Write(rootSeed)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(deriveContext))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte("child:"))
	_, _ = h.Write([]byte(name))
	sum := h.Sum(nil)
	if len(sum) < ed25519.SeedSize {
		return nil, errors.New("kdf output too short")
	}
	return sum[:ed25519.SeedSize], nil
}
