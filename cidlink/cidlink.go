// Package cidlink bridges sha-256 hash strkeys and CIDv1 content addresses.
//
// An X... strkey and a CIDv1 (raw codec, sha2-256) carry the same 32-byte
// digest in different clothes; this package converts between the two so
// ledger entries can reference externally stored blobs by either name.
package cidlink

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/future-tense/stellar-strkey/strkey"
)

// StrkeyForData returns the X... strkey of the sha2-256 digest of data.
func StrkeyForData(data []byte) (string, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	dec, err := multihash.Decode(sum)
	if err != nil {
		return "", err
	}
	return strkey.EncodeSha256Hash(dec.Digest)
}

// CIDForData returns the CIDv1 (raw + sha2-256) of data.
func CIDForData(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// CIDFromStrkey converts an X... strkey into the CIDv1 (raw + sha2-256)
// carrying the same digest.
func CIDFromStrkey(s string) (cid.Cid, error) {
	digest, err := strkey.DecodeSha256Hash(s)
	if err != nil {
		return cid.Undef, err
	}
	if len(digest) != strkey.RawSize {
		return cid.Undef, fmt.Errorf("sha-256 digest must be %d bytes, got %d", strkey.RawSize, len(digest))
	}
	sum, err := multihash.Encode(digest, multihash.SHA2_256)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, multihash.Multihash(sum)), nil
}

// StrkeyFromCID converts a CIDv1 carrying a sha2-256 multihash into the
// X... strkey of its digest. CIDs with any other hash function are rejected.
func StrkeyFromCID(c cid.Cid) (string, error) {
	dec, err := multihash.Decode(c.Hash())
	if err != nil {
		return "", err
	}
	if dec.Code != multihash.SHA2_256 {
		return "", fmt.Errorf("unsupported multihash code 0x%x: need sha2-256", dec.Code)
	}
	if len(dec.Digest) != strkey.RawSize {
		return "", fmt.Errorf("sha-256 digest must be %d bytes, got %d", strkey.RawSize, len(dec.Digest))
	}
	return strkey.EncodeSha256Hash(dec.Digest)
}
