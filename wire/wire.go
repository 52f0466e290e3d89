// Package wire adds optional framing around a sketch's minimal binary form:
// a minimal fixed-size encoding (t power sums packed big-endian, followed by
// a 2-byte count) plus a framed encoding that adds a fixed-size header and
// an integrity checksum around that minimal payload.
//
// The minimal form itself lives on the sketch types directly
// (PowerSumQuack.MarshalBinary/UnmarshalBinary in package quack), so every
// implementation can emit and consume it without this package's help. This
// package adds only the optional framing on top.
package wire

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// headerSize is the framed encoding's fixed overhead: a 1-byte identifier
// width tag, a 2-byte big-endian threshold, and a 32-byte blake2b-256
// checksum of the payload.
const headerSize = 1 + 2 + blake2b.Size256

// EncodeFrame wraps payload (the minimal wire form of a sketch) in a fixed
// header naming the identifier width and threshold it was built with, plus
// a blake2b-256 checksum over payload. The checksum is integrity-only: it
// lets a receiver detect a truncated or corrupted transfer before handing
// the payload to UnmarshalBinary. It is integrity-only, never a way to hide
// or authenticate payload content.
func EncodeFrame(width uint8, threshold uint16, payload []byte) []byte {
	sum := blake2b.Sum256(payload)
	buf := make([]byte, headerSize+len(payload))
	buf[0] = width
	binary.BigEndian.PutUint16(buf[1:3], threshold)
	copy(buf[3:headerSize], sum[:])
	copy(buf[headerSize:], payload)
	return buf
}

// DecodeFrame is EncodeFrame's inverse: it validates the checksum and
// returns the width tag, threshold, and payload it wrapped. It returns an
// error (not a panic) on a short buffer or a checksum mismatch — both are
// transport failures a caller can legitimately encounter, not programmer
// misuse.
func DecodeFrame(data []byte) (width uint8, threshold uint16, payload []byte, err error) {
	if len(data) < headerSize {
		return 0, 0, nil, fmt.Errorf("wire: frame has %d bytes, want at least %d", len(data), headerSize)
	}
	width = data[0]
	threshold = binary.BigEndian.Uint16(data[1:3])
	var wantSum [blake2b.Size256]byte
	copy(wantSum[:], data[3:headerSize])

	payload = append([]byte(nil), data[headerSize:]...)
	gotSum := blake2b.Sum256(payload)
	if gotSum != wantSum {
		return 0, 0, nil, fmt.Errorf("wire: checksum mismatch: frame is truncated or corrupted")
	}
	return width, threshold, payload, nil
}
