package quack

import (
	"encoding/binary"
	"fmt"

	"github.com/thearossman/quack/field"
)

// WireSize returns the exact serialized size of a sketch with threshold t
// over width W: t*(w/8)+2 bytes.
func WireSize[W field.Width](t int) int {
	var w W
	return t*w.ByteWidth() + 2
}

// MarshalBinary serializes the sketch to its minimal wire format: the power
// sums packed big-endian at w/8 bytes each, in order, followed by a 2-byte
// big-endian count. The inverse table is not serialized — it is
// reconstructed from t at the receiver by the New[W] call UnmarshalBinary's
// caller is expected to have already made.
func (q *PowerSumQuack[W]) MarshalBinary() ([]byte, error) {
	var w W
	width := w.ByteWidth()
	buf := make([]byte, len(q.powerSums)*width+2)
	off := 0
	for _, s := range q.powerSums {
		putUintBE(buf[off:off+width], s.Uint64())
		off += width
	}
	binary.BigEndian.PutUint16(buf[off:], q.count)
	return buf, nil
}

// UnmarshalBinary populates the receiver's power sums and count from the
// minimal wire format. The receiver must already have its threshold (and
// therefore its power-sum slice and inverse table) set, i.e. constructed
// via New[W](t) for the same t the sender used; the wire format does not
// encode t itself, so the caller is expected to know it out of band.
func (q *PowerSumQuack[W]) UnmarshalBinary(data []byte) error {
	var w W
	width := w.ByteWidth()
	t := len(q.powerSums)
	want := t*width + 2
	if len(data) != want {
		return fmt.Errorf("quack: wire data has %d bytes, want %d for threshold %d", len(data), want, t)
	}
	off := 0
	for i := range q.powerSums {
		q.powerSums[i] = field.New[W](getUintBE(data[off : off+width]))
		off += width
	}
	q.count = binary.BigEndian.Uint16(data[off:])
	return nil
}

// putUintBE writes v into buf, most significant byte first, truncated to
// len(buf) bytes. Callers guarantee v < 2^(8*len(buf)) because v is always
// a canonical field representative narrower than the field's byte width.
func putUintBE(buf []byte, v uint64) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
}

// getUintBE is putUintBE's inverse.
func getUintBE(buf []byte) uint64 {
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return v
}
