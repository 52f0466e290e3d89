// Package quacktest provides deterministic random-identifier generation for
// property-based tests (commutativity, homomorphism, roundtrip-via-
// coefficients): properties that need many independently generated
// multisets to be checked with confidence, but also need to be exactly
// reproducible across test runs when a failure needs to be re-examined.
//
// KeyedPRNG exposes a Read/Reset keyed-stream shape: the same key fed to
// two independent PRNGs, or the same PRNG reset mid-stream, produces
// byte-for-byte identical output. It is backed by github.com/zeebo/blake3's
// keyed XOF mode.
package quacktest

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"
)

// KeyedPRNG is a deterministic, reseekable byte stream derived from a 32-byte
// key: the same key always produces the same stream from the start, and
// Reset rewinds to the start without needing a new key.
type KeyedPRNG struct {
	key    [32]byte
	hasher *blake3.Hasher
	out    *blake3.Digest
}

// NewKeyedPRNG derives a stream from key, which must be exactly 32 bytes —
// blake3's keyed mode requirement.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("quacktest: keyed PRNG needs a 32-byte key, got %d", len(key))
	}
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, fmt.Errorf("quacktest: new keyed hasher: %w", err)
	}
	p := &KeyedPRNG{hasher: h}
	copy(p.key[:], key)
	p.out = h.Digest()
	return p, nil
}

// Read fills buf from the deterministic stream, implementing io.Reader.
func (p *KeyedPRNG) Read(buf []byte) (int, error) {
	return p.out.Read(buf)
}

// Reset rewinds the stream to its start, so the next Read reproduces bytes
// already consumed.
func (p *KeyedPRNG) Reset() {
	p.out = p.hasher.Digest()
}

// Uint64 draws the next 8 bytes of the stream as a big-endian uint64, the
// generator identifiers are drawn from in the property tests.
func (p *KeyedPRNG) Uint64() uint64 {
	var buf [8]byte
	if _, err := p.Read(buf[:]); err != nil {
		panic(fmt.Errorf("quacktest: PRNG stream exhausted: %w", err))
	}
	return binary.BigEndian.Uint64(buf[:])
}

// Uint64n draws a value in [0, n) by rejection sampling against the largest
// multiple of n below 2^64, avoiding the small modulo bias a plain
// Uint64()%n would introduce.
func (p *KeyedPRNG) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("quacktest: Uint64n(0)")
	}
	limit := ^uint64(0) - (^uint64(0) % n) // largest multiple of n not exceeding math.MaxUint64
	for {
		v := p.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// Identifiers draws n pseudo-random identifiers, each reduced to fit within
// bits (16, 32, or 64), for use as insert()/remove() arguments in property
// tests.
func (p *KeyedPRNG) Identifiers(n int, bits int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		v := p.Uint64()
		if bits < 64 {
			v &= (uint64(1) << bits) - 1
		}
		out[i] = v
	}
	return out
}

// Shuffle permutes ids in place using the stream to drive a Fisher-Yates
// shuffle, giving a permutation of a multiset for commutativity tests.
func (p *KeyedPRNG) Shuffle(ids []uint64) {
	for i := len(ids) - 1; i > 0; i-- {
		j := p.Uint64n(uint64(i + 1))
		ids[i], ids[j] = ids[j], ids[i]
	}
}
