package strkey

// decodeFn is an indirection over Decode so tests can assert that the
// length fast path in IsValid never reaches the decoder.
var decodeFn = Decode

// IsValid reports whether candidate is a well-formed strkey of the given
// key type carrying a RawSize identifier. Every decode failure, of any
// kind, collapses to false; callers needing the failure class should use
// Decode.
//
// Input whose length is not EncodedSize is rejected before any base32 work.
func IsValid(kt KeyType, candidate string) bool {
	if len(candidate) != EncodedSize {
		return false
	}
	data, err := decodeFn(kt, candidate)
	if err != nil {
		return false
	}
	return len(data) == RawSize
}

// IsValidEd25519PublicKey reports whether candidate is a valid G... strkey.
func IsValidEd25519PublicKey(candidate string) bool {
	return IsValid(Ed25519PublicKey, candidate)
}

// IsValidEd25519SecretSeed reports whether candidate is a valid S... strkey.
func IsValidEd25519SecretSeed(candidate string) bool {
	return IsValid(Ed25519SecretSeed, candidate)
}

// IsValidPreAuthTx reports whether candidate is a valid T... strkey.
func IsValidPreAuthTx(candidate string) bool {
	return IsValid(PreAuthTx, candidate)
}

// IsValidSha256Hash reports whether candidate is a valid X... strkey.
func IsValidSha256Hash(candidate string) bool {
	return IsValid(Sha256Hash, candidate)
}
