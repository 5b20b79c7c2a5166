package strkey

import (
	"bytes"
	"testing"
)

// zeroPublicKeyStrkey is the strkey of 32 zero bytes under the public-key
// version byte: base32 of 0x30, 32 zero bytes, and the little-endian
// CRC16/XModem of the first 33.
const zeroPublicKeyStrkey = "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"

func seqData(t *testing.T, n int) []byte {
	t.Helper()
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func mustEncode(t *testing.T, kt KeyType, data []byte) string {
	t.Helper()
	s, err := Encode(kt, data)
	if err != nil {
		t.Fatalf("Encode(%v): %v", kt, err)
	}
	return s
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	keyTypes := []KeyType{Ed25519PublicKey, Ed25519SecretSeed, PreAuthTx, Sha256Hash}
	inputs := [][]byte{
		make([]byte, RawSize),
		seqData(t, RawSize),
		bytes.Repeat([]byte{0xFF}, RawSize),
		bytes.Repeat([]byte{0x69}, RawSize),
	}

	for _, kt := range keyTypes {
		for _, data := range inputs {
			s := mustEncode(t, kt, data)
			if len(s) != EncodedSize {
				t.Fatalf("%v: encoded length = %d, want %d", kt, len(s), EncodedSize)
			}
			got, err := Decode(kt, s)
			if err != nil {
				t.Fatalf("%v: Decode(%q): %v", kt, s, err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("%v: round trip mismatch: got %x want %x", kt, got, data)
			}
		}
	}
}

func TestEncodeDecode_ReencodeReproducesInput(t *testing.T) {
	for _, kt := range []KeyType{Ed25519PublicKey, Ed25519SecretSeed, PreAuthTx, Sha256Hash} {
		s := mustEncode(t, kt, seqData(t, RawSize))
		data, err := Decode(kt, s)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		again := mustEncode(t, kt, data)
		if again != s {
			t.Fatalf("re-encode mismatch: got %q want %q", again, s)
		}
	}
}

func TestEncode_ZeroPublicKeyFixture(t *testing.T) {
	s := mustEncode(t, Ed25519PublicKey, make([]byte, RawSize))
	if s != zeroPublicKeyStrkey {
		t.Fatalf("Encode(zero key) = %q, want %q", s, zeroPublicKeyStrkey)
	}
}

func TestDecode_ZeroPublicKeyFixture(t *testing.T) {
	data, err := Decode(Ed25519PublicKey, zeroPublicKeyStrkey)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(data, make([]byte, RawSize)) {
		t.Fatalf("Decode(zero key strkey) = %x, want 32 zero bytes", data)
	}
}

func TestEncode_NilDataRejected(t *testing.T) {
	_, err := Encode(Ed25519PublicKey, nil)
	if err == nil {
		t.Fatal("expected error for nil data")
	}
	if !IsKind(err, KindNullData) {
		t.Fatalf("expected KindNullData, got %v", err)
	}
}

func TestEncode_EmptyDataAllowed(t *testing.T) {
	s, err := Encode(Ed25519PublicKey, []byte{})
	if err != nil {
		t.Fatalf("Encode(empty): %v", err)
	}
	data, err := Decode(Ed25519PublicKey, s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty data, got %x", data)
	}
}

func TestEncode_UnknownKeyType(t *testing.T) {
	_, err := Encode(KeyType(0x01), seqData(t, RawSize))
	if err == nil {
		t.Fatal("expected error for unknown key type")
	}
	if !IsKind(err, KindUnknownKeyType) {
		t.Fatalf("expected KindUnknownKeyType, got %v", err)
	}
}

func TestDecode_VersionMismatchAcrossTypes(t *testing.T) {
	s := mustEncode(t, Sha256Hash, seqData(t, RawSize))
	_, err := Decode(PreAuthTx, s)
	if err == nil {
		t.Fatal("expected version byte mismatch")
	}
	if !IsKind(err, KindVersionByte) {
		t.Fatalf("expected KindVersionByte, got %v", err)
	}
}

func TestDecode_CorruptedChecksumBytes(t *testing.T) {
	s := mustEncode(t, Ed25519PublicKey, seqData(t, RawSize))
	// The last symbols encode the checksum; replacing the final symbol with a
	// different alphabet symbol corrupts it without breaking base32 syntax
	// or canonical form.
	replacement := byte('A')
	if s[len(s)-1] == replacement {
		replacement = 'B'
	}
	corrupt := s[:len(s)-1] + string(replacement)
	_, err := Decode(Ed25519PublicKey, corrupt)
	if err == nil {
		t.Fatal("expected checksum failure")
	}
	if !IsKind(err, KindChecksum) {
		t.Fatalf("expected KindChecksum, got %v", err)
	}
}

func TestDecode_CorruptedPayloadFailsChecksumNotVersion(t *testing.T) {
	s := mustEncode(t, Ed25519PublicKey, seqData(t, RawSize))
	// Symbol 10 sits well inside the data region: the version byte survives,
	// so the corruption must surface as a checksum failure.
	replacement := byte('A')
	if s[10] == replacement {
		replacement = 'B'
	}
	corrupt := s[:10] + string(replacement) + s[11:]
	_, err := Decode(Ed25519PublicKey, corrupt)
	if err == nil {
		t.Fatal("expected checksum failure")
	}
	if !IsKind(err, KindChecksum) {
		t.Fatalf("expected KindChecksum, got %v", err)
	}
}

func TestDecode_CorruptedVersionByte(t *testing.T) {
	s := mustEncode(t, Ed25519PublicKey, seqData(t, RawSize))
	// The first symbol holds the version byte's high bits: G -> S flips the
	// version byte itself.
	corrupt := "S" + s[1:]
	_, err := Decode(Ed25519PublicKey, corrupt)
	if err == nil {
		t.Fatal("expected version byte failure")
	}
	if !IsKind(err, KindVersionByte) {
		t.Fatalf("expected KindVersionByte, got %v", err)
	}
}

func TestDecode_ReturnsOwnedCopy(t *testing.T) {
	s := mustEncode(t, Ed25519PublicKey, seqData(t, RawSize))
	a, err := Decode(Ed25519PublicKey, s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b, err := Decode(Ed25519PublicKey, s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	a[0] ^= 0xFF
	if bytes.Equal(a, b) {
		t.Fatal("mutating one decode result affected another")
	}
}

func TestKeyType_StringRoundTrip(t *testing.T) {
	for _, kt := range []KeyType{Ed25519PublicKey, Ed25519SecretSeed, PreAuthTx, Sha256Hash} {
		got, err := KeyTypeFromString(kt.String())
		if err != nil {
			t.Fatalf("KeyTypeFromString(%q): %v", kt.String(), err)
		}
		if got != kt {
			t.Fatalf("KeyTypeFromString(%q) = %v, want %v", kt.String(), got, kt)
		}
	}
}

func TestKeyTypeFromString_Unknown(t *testing.T) {
	_, err := KeyTypeFromString("ed25519")
	if err == nil {
		t.Fatal("expected error for unknown name")
	}
	if !IsKind(err, KindUnknownKeyType) {
		t.Fatalf("expected KindUnknownKeyType, got %v", err)
	}
}
