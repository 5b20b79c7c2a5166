package keys

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/future-tense/stellar-strkey/strkey"
)

// KeyPair wraps an Ed25519 private key and renders both halves as strkeys:
// the public key as a G... address, the seed as an S... seed string.
type KeyPair struct {
	priv ed25519.PrivateKey
}

// Generate returns a new keypair drawn from rand. A nil rand uses the
// platform CSPRNG.
func Generate(rand io.Reader) (*KeyPair, error) {
	_, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, err
	}
	return &KeyPair{priv: priv}, nil
}

// FromRawSeed builds the keypair determined by a 32-byte Ed25519 seed.
func FromRawSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &KeyPair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// FromSeedStrkey rebuilds a keypair from its S... seed strkey.
func FromSeedStrkey(s string) (*KeyPair, error) {
	seed, err := strkey.DecodeEd25519SecretSeed(s)
	if err != nil {
		return nil, err
	}
	return FromRawSeed(seed)
}

// Address returns the G... strkey of the public key.
func (kp *KeyPair) Address() (string, error) {
	pub := kp.priv.Public().(ed25519.PublicKey)
	return strkey.EncodeEd25519PublicKey(pub)
}

// Seed returns the S... strkey of the private seed.
func (kp *KeyPair) Seed() (string, error) {
	return strkey.EncodeEd25519SecretSeed(kp.priv.Seed())
}

// Sign signs message with the private key.
func (kp *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.priv, message)
}

// VerifyWithAddress checks sig over message against the public key carried
// by a G... address strkey.
func VerifyWithAddress(address string, message, sig []byte) (bool, error) {
	pub, err := strkey.DecodeEd25519PublicKey(address)
	if err != nil {
		return false, err
	}
	if len(pub) != ed25519.PublicKeySize {
		return false, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig), nil
}
