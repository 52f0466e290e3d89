package wire

import (
	"fmt"

	"github.com/thearossman/quack/field"
)

// binaryMarshaler is satisfied by a sketch with a minimal-form encoder. In
// package quack only PowerSumQuack has MarshalBinary; PowerTableQuack and
// MontgomeryQuack do not implement it.
type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
	Threshold() int
}

// binaryUnmarshaler is the receiving half: a sketch already constructed with
// the destination's own (w, t), ready to have its state overwritten from a
// wire payload.
type binaryUnmarshaler interface {
	UnmarshalBinary([]byte) error
	Threshold() int
}

// EncodeSketch frames q's minimal wire form with the width and threshold
// header this package's framing adds, so a receiver can check both before
// attempting to unmarshal the payload.
func EncodeSketch[W field.Width](q binaryMarshaler) ([]byte, error) {
	payload, err := q.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("wire: marshal sketch: %w", err)
	}
	var w W
	return EncodeFrame(uint8(w.Bits()), uint16(q.Threshold()), payload), nil
}

// DecodeSketch validates data's frame header against dst's width and
// threshold, then unmarshals the payload into dst. dst must already be
// constructed with the threshold the sender used: the minimal payload does
// not encode t itself, so the frame header is what lets a receiver catch a
// threshold mismatch before UnmarshalBinary would otherwise fail on a
// length mismatch.
func DecodeSketch[W field.Width](data []byte, dst binaryUnmarshaler) error {
	width, threshold, payload, err := DecodeFrame(data)
	if err != nil {
		return err
	}
	var w W
	if int(width) != w.Bits() {
		return fmt.Errorf("wire: frame width %d does not match destination width %d", width, w.Bits())
	}
	if int(threshold) != dst.Threshold() {
		return fmt.Errorf("wire: frame threshold %d does not match destination threshold %d", threshold, dst.Threshold())
	}
	return dst.UnmarshalBinary(payload)
}
