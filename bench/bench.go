// Package bench implements a comparative-measurement harness outside the
// core decodability contract: two "strawman" baselines (multiset
// difference, SHA-256 over subsets) and the power-sum quACK itself, timed
// under the same workload so the core sketch's performance claims can be
// checked against simpler alternatives. Nothing in this package is part of
// the decodability contract field/poly/quack implement.
package bench

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/quack"
)

// Variant is which decode strategy a trial measures.
type Variant int

const (
	Strawman1a Variant = iota
	Strawman1b
	Strawman2
	PowerSum
)

func (v Variant) String() string {
	switch v {
	case Strawman1a:
		return "strawman1a"
	case Strawman1b:
		return "strawman1b"
	case Strawman2:
		return "strawman2"
	case PowerSum:
		return "power-sum"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Params is the power-sum sketch's configuration and which of its three
// mutually exclusive accelerator toggles to exercise.
type Params struct {
	Threshold  int
	NumBitsID  int
	Precompute bool
	Montgomery bool
	Factor     bool
}

// genUint32 draws numPackets pseudo-random uint32 identifiers. The benchmark
// workload is not a security property, so math/rand (not crypto/rand) is
// the right source here.
func genUint32(rng *rand.Rand, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = rng.Uint32()
	}
	return out
}

func genUint64(rng *rand.Rand, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = rng.Uint64()
	}
	return out
}

func genUint16(rng *rand.Rand, n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(rng.Uint32())
	}
	return out
}

// DecodeStrawman1a times computing the set difference between two
// HashMultiSet-style accumulators (here, Go maps counting multiplicities),
// the "strawman1a" baseline: the simplest possible correct algorithm,
// against which the quACK's O(t) space and decode cost are compared.
func DecodeStrawman1a(rng *rand.Rand, numPackets, numDrop int) (time.Duration, error) {
	numbers := genUint32(rng, numPackets)

	acc2 := make(map[uint32]int, numPackets)
	for _, n := range numbers[:numPackets-numDrop] {
		acc2[n]++
	}

	start := time.Now()
	acc1 := make(map[uint32]int, numPackets)
	for _, n := range numbers {
		acc1[n]++
	}
	dropped := 0
	for k, c1 := range acc1 {
		c2 := acc2[k]
		if c1 > c2 {
			dropped += c1 - c2
		}
	}
	duration := time.Since(start)

	if dropped != numDrop {
		return duration, fmt.Errorf("bench: strawman1a decoded %d dropped, want %d", dropped, numDrop)
	}
	return duration, nil
}

// subsetsLimit bounds the number of SHA-256 hashes strawman2 computes:
// recomputing every subset of size numPackets-numDrop is combinatorially
// infeasible, so the harness measures a lower bound on the time to hash
// that many subsets instead.
const subsetsLimit = 1_000_000

// DecodeStrawman2 times the "strawman2" baseline, the SHA-256 subset search
// a receiver without a quACK-like sketch would have to fall back to. It
// hashes the received packets subsetsLimit times (when numDrop > 0) as a
// stand-in for hashing that many subsets; the digests are not compared
// against anything.
func DecodeStrawman2(rng *rand.Rand, numPackets, numDrop int) time.Duration {
	numbers := genUint32(rng, numPackets)

	acc1 := sha256.New()
	for _, n := range numbers[:numPackets-numDrop] {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], n)
		acc1.Write(buf[:])
	}
	acc1.Sum(nil)

	start := time.Now()
	if numDrop > 0 {
		for i := 0; i < subsetsLimit; i++ {
			acc2 := sha256.New()
			for _, n := range numbers[:numPackets-numDrop] {
				var buf [4]byte
				binary.BigEndian.PutUint32(buf[:], n)
				acc2.Write(buf[:])
			}
			acc2.Sum(nil)
		}
	}
	return time.Since(start)
}

// DecodePowerSumFactor32 times the power-sum quACK's factorization decode
// path at w=32.
func DecodePowerSumFactor32(rng *rand.Rand, threshold, numPackets, numDrop int) (time.Duration, error) {
	numbers := genUint32(rng, numPackets)

	acc2 := quack.New[field.W32](threshold)
	for _, n := range numbers[:numPackets-numDrop] {
		acc2.Insert(uint64(n))
	}

	start := time.Now()
	acc1 := quack.New[field.W32](threshold)
	for _, n := range numbers {
		acc1.Insert(uint64(n))
	}
	diff := acc1.Sub(acc2)
	dropped, err := quack.DecodeByFactorization[field.W32](diff)
	duration := time.Since(start)
	if err != nil {
		return duration, fmt.Errorf("bench: factorization decode: %w", err)
	}
	if len(dropped) != numDrop {
		return duration, fmt.Errorf("bench: factorization decoded %d dropped, want %d", len(dropped), numDrop)
	}
	return duration, nil
}

// DecodePowerSumPrecompute16 times the PowerTableQuack accelerator at w=16.
func DecodePowerSumPrecompute16(rng *rand.Rand, threshold, numPackets, numDrop int) (time.Duration, error) {
	numbers := genUint16(rng, numPackets)
	table := quack.NewPowerTable(threshold)

	acc2 := quack.NewPowerTableQuack(table)
	for _, n := range numbers[:numPackets-numDrop] {
		acc2.Insert(n)
	}

	start := time.Now()
	acc1 := quack.NewPowerTableQuack(table)
	for _, n := range numbers {
		acc1.Insert(n)
	}
	diff := acc1.Sub(acc2)
	log := make([]uint64, len(numbers))
	for i, n := range numbers {
		log[i] = uint64(n)
	}
	dropped := quack.DecodeWithLog[field.W16](diff, log)
	duration := time.Since(start)

	if len(dropped) < numDrop {
		return duration, fmt.Errorf("bench: precompute decoded %d dropped, want at least %d", len(dropped), numDrop)
	}
	return duration, nil
}

// DecodePowerSumMontgomery64 times the MontgomeryQuack accelerator at w=64.
func DecodePowerSumMontgomery64(rng *rand.Rand, threshold, numPackets, numDrop int) (time.Duration, error) {
	numbers := genUint64(rng, numPackets)

	acc2 := quack.NewMontgomeryQuack(threshold)
	for _, n := range numbers[:numPackets-numDrop] {
		acc2.Insert(n)
	}

	start := time.Now()
	acc1 := quack.NewMontgomeryQuack(threshold)
	for _, n := range numbers {
		acc1.Insert(n)
	}
	diff := acc1.Sub(acc2)
	dropped := quack.DecodeWithLog[field.W64](diff, numbers)
	duration := time.Since(start)

	if len(dropped) < numDrop {
		return duration, fmt.Errorf("bench: montgomery decoded %d dropped, want at least %d", len(dropped), numDrop)
	}
	return duration, nil
}

// DecodePowerSum16/32/64 time the unaccelerated PowerSumQuack's log-based
// decode at each identifier width.
func DecodePowerSum16(rng *rand.Rand, threshold, numPackets, numDrop int) (time.Duration, error) {
	return decodePowerSum[field.W16](rng, threshold, numPackets, numDrop, genUint16ToUint64(rng, numPackets))
}

func DecodePowerSum32(rng *rand.Rand, threshold, numPackets, numDrop int) (time.Duration, error) {
	numbers := genUint32(rng, numPackets)
	log := make([]uint64, len(numbers))
	for i, n := range numbers {
		log[i] = uint64(n)
	}
	return decodePowerSum[field.W32](rng, threshold, numPackets, numDrop, log)
}

func DecodePowerSum64(rng *rand.Rand, threshold, numPackets, numDrop int) (time.Duration, error) {
	return decodePowerSum[field.W64](rng, threshold, numPackets, numDrop, genUint64(rng, numPackets))
}

func genUint16ToUint64(rng *rand.Rand, n int) []uint64 {
	numbers := genUint16(rng, n)
	out := make([]uint64, n)
	for i, v := range numbers {
		out[i] = uint64(v)
	}
	return out
}

func decodePowerSum[W field.Width](rng *rand.Rand, threshold, numPackets, numDrop int, numbers []uint64) (time.Duration, error) {
	acc2 := quack.New[W](threshold)
	for _, n := range numbers[:numPackets-numDrop] {
		acc2.Insert(n)
	}

	start := time.Now()
	acc1 := quack.New[W](threshold)
	for _, n := range numbers {
		acc1.Insert(n)
	}
	diff := acc1.Sub(acc2)
	dropped := quack.DecodeWithLog[W](diff, numbers)
	duration := time.Since(start)

	if len(dropped) < numDrop {
		return duration, fmt.Errorf("bench: decoded %d dropped, want at least %d", len(dropped), numDrop)
	}
	return duration, nil
}
