// Package strkey implements the versioned, checksum-protected base32 text
// encoding used to exchange fixed-size ledger identifiers as ASCII strings.
//
// A strkey packs a one-byte version tag, the raw identifier bytes, and a
// two-byte CRC16/XModem checksum into a single unpadded, uppercase RFC 4648
// base32 string. The version tag determines the first letter of the string:
//
//	G...  Ed25519 account public key
//	S...  Ed25519 secret seed
//	T...  pre-authorized transaction hash
//	X...  sha-256 hash digest
//
// Decoding is strict: only the exact output of Encode is accepted. Any
// non-canonical form that would alias to a valid strkey (lowercase symbols,
// nonzero trailing bits, embedded line breaks, dangling symbols) is rejected.
// The checksum detects transcription errors; it is not an authentication
// mechanism.
package strkey

import (
	"encoding/base32"
	"fmt"
)

// KeyType identifies which kind of identifier an encoded string carries.
//
// The value of each constant is the version byte prefixed to the raw
// identifier before checksumming. Version bytes are chosen as code<<3 so
// that the byte's high five bits, and therefore the first symbol of the
// encoded string, spell the type's letter.
type KeyType byte

const (
	Ed25519PublicKey  KeyType = 6 << 3  // 0x30, 'G'
	Ed25519SecretSeed KeyType = 18 << 3 // 0x90, 'S'
	PreAuthTx         KeyType = 19 << 3 // 0x98, 'T'
	Sha256Hash        KeyType = 23 << 3 // 0xB8, 'X'
)

// RawSize is the raw identifier length, in bytes, shared by all current
// key types.
const RawSize = 32

// EncodedSize is the encoded string length for a RawSize identifier:
// ceil((1 + RawSize + 2) * 8 / 5) base32 symbols.
const EncodedSize = 56

// b32 is the codec for the wire alphabet: RFC 4648, uppercase, no padding.
var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// versionByte resolves the version byte for kt.
//
// The switch is exhaustive over the declared constants, so this is total for
// any KeyType a caller can name; only an out-of-range value reaches the
// failure path.
func versionByte(kt KeyType) (byte, error) {
	switch kt {
	case Ed25519PublicKey, Ed25519SecretSeed, PreAuthTx, Sha256Hash:
		return byte(kt), nil
	}
	return 0, newError(KindUnknownKeyType, "STRKEY-KT-001",
		fmt.Sprintf("unknown key type 0x%02x", byte(kt)))
}

// String returns the stable lowercase name of the key type, as accepted by
// KeyTypeFromString.
func (kt KeyType) String() string {
	switch kt {
	case Ed25519PublicKey:
		return "ed25519_public_key"
	case Ed25519SecretSeed:
		return "ed25519_secret_seed"
	case PreAuthTx:
		return "pre_auth_tx"
	case Sha256Hash:
		return "sha256_hash"
	}
	return fmt.Sprintf("KeyType(0x%02x)", byte(kt))
}

// KeyTypeFromString resolves a key type from its stable name. This is the
// untyped dispatch path used by callers that receive the type over a flag or
// config value; unrecognized names fail with KindUnknownKeyType.
func KeyTypeFromString(name string) (KeyType, error) {
	switch name {
	case "ed25519_public_key":
		return Ed25519PublicKey, nil
	case "ed25519_secret_seed":
		return Ed25519SecretSeed, nil
	case "pre_auth_tx":
		return PreAuthTx, nil
	case "sha256_hash":
		return Sha256Hash, nil
	}
	return 0, newError(KindUnknownKeyType, "STRKEY-KT-002",
		fmt.Sprintf("unknown key type name %q", name))
}
