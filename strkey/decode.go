package strkey

import "fmt"

// Decode parses a strkey string of the given key type and returns the raw
// identifier bytes.
//
// Validation is a strict ordered pipeline; the first failing stage
// determines the reported error:
//
//  1. base32 syntax (KindEncoding)
//  2. minimum decoded length: version byte plus checksum (KindEncoding)
//  3. canonical form: re-encoding the decoded bytes must reproduce the
//     input exactly (KindEncoding)
//  4. version byte match (KindVersionByte, with Expected/Actual)
//  5. checksum over version byte plus data (KindChecksum)
//
// The returned slice is a copy owned by the caller.
func Decode(kt KeyType, encoded string) ([]byte, error) {
	raw, err := b32.DecodeString(encoded)
	if err != nil {
		return nil, wrapError(KindEncoding, "STRKEY-DEC-002", "invalid base32 string", err)
	}
	if len(raw) < 1+checksumSize {
		return nil, newError(KindEncoding, "STRKEY-DEC-003",
			fmt.Sprintf("decoded input too short: %d bytes", len(raw)))
	}

	// The stdlib base32 decoder is lenient in three ways the wire format
	// forbids: it ignores nonzero trailing bits in the final symbol, strips
	// CR/LF, and silently drops a dangling symbol in unpadded input. All
	// three alias a non-canonical string to valid bytes, so the decoded
	// blob must re-encode to the exact input.
	if b32.EncodeToString(raw) != encoded {
		return nil, newError(KindEncoding, "STRKEY-DEC-004", "non-canonical base32 form")
	}

	version, err := versionByte(kt)
	if err != nil {
		return nil, err
	}
	if raw[0] != version {
		return nil, &Error{
			Kind:     KindVersionByte,
			RuleID:   "STRKEY-DEC-005",
			Message:  fmt.Sprintf("version byte mismatch: want 0x%02x, got 0x%02x", version, raw[0]),
			Expected: version,
			Actual:   raw[0],
		}
	}

	payload := raw[:len(raw)-checksumSize]
	var sum [checksumSize]byte
	copy(sum[:], raw[len(raw)-checksumSize:])
	if !verifyChecksum(computeChecksum(payload), sum) {
		return nil, newError(KindChecksum, "STRKEY-DEC-006", "checksum mismatch")
	}

	return append([]byte(nil), payload[1:]...), nil
}

// DecodeAny decodes candidate, which must hold a string. Any other dynamic
// type fails with KindInputType. This is the untyped entry point for callers
// handling values of unknown shape (deserialized config, CLI input); typed
// callers should use Decode directly.
func DecodeAny(kt KeyType, candidate any) ([]byte, error) {
	s, ok := candidate.(string)
	if !ok {
		return nil, newError(KindInputType, "STRKEY-DEC-001",
			fmt.Sprintf("expected string input, got %T", candidate))
	}
	return Decode(kt, s)
}

// DecodeEd25519PublicKey parses a G... strkey into an Ed25519 public key.
func DecodeEd25519PublicKey(encoded string) ([]byte, error) {
	return Decode(Ed25519PublicKey, encoded)
}

// DecodeEd25519SecretSeed parses an S... strkey into an Ed25519 secret seed.
func DecodeEd25519SecretSeed(encoded string) ([]byte, error) {
	return Decode(Ed25519SecretSeed, encoded)
}

// DecodePreAuthTx parses a T... strkey into a pre-authorized transaction hash.
func DecodePreAuthTx(encoded string) ([]byte, error) {
	return Decode(PreAuthTx, encoded)
}

// DecodeSha256Hash parses an X... strkey into a sha-256 digest.
func DecodeSha256Hash(encoded string) ([]byte, error) {
	return Decode(Sha256Hash, encoded)
}
