package strkey

import "github.com/sigurn/crc16"

// checksumSize is the trailing checksum length in the decoded blob.
const checksumSize = 2

var xmodemTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// computeChecksum returns the CRC16/XModem of payload, serialized
// little-endian.
func computeChecksum(payload []byte) [checksumSize]byte {
	sum := crc16.Checksum(payload, xmodemTable)
	return [checksumSize]byte{byte(sum), byte(sum >> 8)}
}

// verifyChecksum reports whether expected and actual match byte for byte.
func verifyChecksum(expected, actual [checksumSize]byte) bool {
	return expected == actual
}
