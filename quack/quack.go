// Package quack implements the power-sum set-difference sketch: an
// incrementally updatable summary of a multiset of fixed-width identifiers
// that lets a receiver decode which identifiers are missing between two
// sketches, as long as their symmetric difference does not exceed a
// configured threshold.
//
// The base implementation, PowerSumQuack, is generic over the identifier
// width via the field.Width type parameter: one abstract field capability
// with three concrete monomorphizations. PowerTableQuack and MontgomeryQuack
// are alternative representations of the same operation set, not subtypes
// — they live in their own files and share the package's Newton recurrence
// (newton.go) and decode functions (decode.go) by exposing the same
// ToCoeffs/Count surface.
package quack

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/thearossman/quack/field"
)

// PowerSumQuack is the base power-sum sketch over field.Width W: an inverse
// table, the running power sums, and a count, updated through the same
// insert/remove running-product loop and Newton conversion every
// representation in this package shares.
type PowerSumQuack[W field.Width] struct {
	powerSums    []field.Element[W]
	inverseTable []field.Element[W]
	count        uint16
}

// modularInverseTable returns [1^-1, 2^-1, ..., t^-1], the table the Newton
// conversion indexes as (i+1)^-1.
func modularInverseTable[W field.Width](t int) []field.Element[W] {
	table := make([]field.Element[W], t)
	for i := range table {
		table[i] = field.New[W](uint64(i + 1)).Inv()
	}
	return table
}

// New constructs a sketch with threshold t: t zero power sums, a
// precomputed inverse table for 1..t, and count 0.
func New[W field.Width](t int) *PowerSumQuack[W] {
	return &PowerSumQuack[W]{
		powerSums:    make([]field.Element[W], t),
		inverseTable: modularInverseTable[W](t),
		count:        0,
	}
}

// Threshold returns t, the number of power sums the sketch stores and the
// maximum decodable symmetric-difference size.
func (q *PowerSumQuack[W]) Threshold() int { return len(q.powerSums) }

// Count returns the net number of inserts minus removes, wrapping modulo
// 2^16.
func (q *PowerSumQuack[W]) Count() uint16 { return q.count }

// PowerSumValues returns the canonical representatives of the sketch's t
// power sums, in order. It exists for numeric-regression tests and
// diagnostics that need to inspect raw sketch state directly rather than
// through ToCoeffs; callers must not mutate the sketch through it.
func (q *PowerSumQuack[W]) PowerSumValues() []uint64 {
	out := make([]uint64, len(q.powerSums))
	for i, s := range q.powerSums {
		out[i] = s.Uint64()
	}
	return out
}

// Insert folds v's running powers x^1..x^t into the power sums in place,
// maintaining y=x^(k+1) as a running product rather than recomputing each
// power from scratch.
func (q *PowerSumQuack[W]) Insert(v uint64) {
	size := len(q.powerSums)
	if size == 0 {
		q.count++
		return
	}
	x := field.New[W](v)
	y := x
	for i := 0; i < size-1; i++ {
		q.powerSums[i] = q.powerSums[i].Add(y)
		y = y.Mul(x)
	}
	q.powerSums[size-1] = q.powerSums[size-1].Add(y)
	q.count++
}

// Remove is Insert's mirror image, subtracting v's running powers.
func (q *PowerSumQuack[W]) Remove(v uint64) {
	size := len(q.powerSums)
	if size == 0 {
		q.count--
		return
	}
	x := field.New[W](v)
	y := x
	for i := 0; i < size-1; i++ {
		q.powerSums[i] = q.powerSums[i].Sub(y)
		y = y.Mul(x)
	}
	q.powerSums[size-1] = q.powerSums[size-1].Sub(y)
	q.count--
}

// SubInto writes self-rhs into dst, panicking if self and rhs have
// different thresholds. Count subtraction wraps modulo 2^16 rather than
// asserting non-underflow.
func (q *PowerSumQuack[W]) SubInto(dst *PowerSumQuack[W], rhs *PowerSumQuack[W]) {
	if len(q.powerSums) != len(rhs.powerSums) {
		panic(fmt.Errorf("quack: cannot subtract quacks with different thresholds (%d != %d)",
			len(q.powerSums), len(rhs.powerSums)))
	}
	if cap(dst.powerSums) < len(q.powerSums) {
		dst.powerSums = make([]field.Element[W], len(q.powerSums))
	} else {
		dst.powerSums = dst.powerSums[:len(q.powerSums)]
	}
	for i := range q.powerSums {
		dst.powerSums[i] = q.powerSums[i].Sub(rhs.powerSums[i])
	}
	dst.inverseTable = q.inverseTable
	dst.count = q.count - rhs.count
}

// SubAssign subtracts rhs from the receiver in place.
func (q *PowerSumQuack[W]) SubAssign(rhs *PowerSumQuack[W]) {
	q.SubInto(q, rhs)
}

// Sub returns a new sketch holding self-rhs, leaving both operands
// unmodified — the value-returning counterpart of SubAssign.
func (q *PowerSumQuack[W]) Sub(rhs *PowerSumQuack[W]) *PowerSumQuack[W] {
	dst := &PowerSumQuack[W]{inverseTable: q.inverseTable}
	q.SubInto(dst, rhs)
	return dst
}

// Equal reports whether q and o hold the same power sums and count,
// comparing unexported state via go-cmp. The inverse table is derived
// state, not part of the sketch's logical value, so it is excluded from
// the comparison.
func (q *PowerSumQuack[W]) Equal(o *PowerSumQuack[W]) bool {
	if q == nil || o == nil {
		return q == o
	}
	return q.count == o.count && cmp.Equal(q.powerSums, o.powerSums, cmp.AllowUnexported(field.Element[W]{}))
}
