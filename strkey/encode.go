package strkey

// Encode renders data as the strkey string for the given key type.
//
// A nil slice is rejected with KindNullData. An empty, non-nil slice is a
// present-but-empty identifier and encodes as version byte plus checksum.
// The result is deterministic: Encode is the sole producer of canonical
// strkeys, and Decode accepts nothing else.
func Encode(kt KeyType, data []byte) (string, error) {
	if data == nil {
		return "", newError(KindNullData, "STRKEY-ENC-001", "nil identifier data")
	}
	version, err := versionByte(kt)
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, 1+len(data)+checksumSize)
	blob = append(blob, version)
	blob = append(blob, data...)
	sum := computeChecksum(blob)
	blob = append(blob, sum[:]...)

	return b32.EncodeToString(blob), nil
}

// EncodeEd25519PublicKey renders an Ed25519 public key as a G... strkey.
func EncodeEd25519PublicKey(data []byte) (string, error) {
	return Encode(Ed25519PublicKey, data)
}

// EncodeEd25519SecretSeed renders an Ed25519 secret seed as an S... strkey.
func EncodeEd25519SecretSeed(data []byte) (string, error) {
	return Encode(Ed25519SecretSeed, data)
}

// EncodePreAuthTx renders a pre-authorized transaction hash as a T... strkey.
func EncodePreAuthTx(data []byte) (string, error) {
	return Encode(PreAuthTx, data)
}

// EncodeSha256Hash renders a sha-256 digest as an X... strkey.
func EncodeSha256Hash(data []byte) (string, error) {
	return Encode(Sha256Hash, data)
}
