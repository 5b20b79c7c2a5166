// Command strkey_vector_gen regenerates the conformance vectors under
// testdata/conformance/strkey from deterministic inputs.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/future-tense/stellar-strkey/strkey"
)

func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func main() {
	root := filepath.Join("testdata", "conformance", "strkey")
	if err := os.MkdirAll(root, 0o755); err != nil {
		panic(err)
	}

	seq := sequence(strkey.RawSize)
	digest := sha256.Sum256([]byte("strkey conformance 1"))

	vectors := []struct {
		name    string
		keyType strkey.KeyType
		data    []byte
	}{
		{"ed25519_public_key_zero", strkey.Ed25519PublicKey, make([]byte, strkey.RawSize)},
		{"ed25519_public_key_1", strkey.Ed25519PublicKey, seq},
		{"ed25519_public_key_2", strkey.Ed25519PublicKey, digest[:]},
		{"ed25519_secret_seed_1", strkey.Ed25519SecretSeed, seq},
		{"pre_auth_tx_1", strkey.PreAuthTx, seq},
		{"sha256_hash_1", strkey.Sha256Hash, seq},
	}

	for _, v := range vectors {
		encoded, err := strkey.Encode(v.keyType, v.data)
		if err != nil {
			panic(err)
		}
		hexPath := filepath.Join(root, v.name+".hex")
		if err := os.WriteFile(hexPath, []byte(hex.EncodeToString(v.data)+"\n"), 0o644); err != nil {
			panic(err)
		}
		strkeyPath := filepath.Join(root, v.name+".strkey")
		if err := os.WriteFile(strkeyPath, []byte(encoded+"\n"), 0o644); err != nil {
			panic(err)
		}
		fmt.Printf("%s\t%s\n", v.name, encoded)
	}
}
