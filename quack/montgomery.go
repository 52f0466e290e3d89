package quack

import (
	"fmt"

	"github.com/thearossman/quack/field"
)

// MontgomeryQuack is the Montgomery-form accelerator for w=64: power sums
// are stored as field.Montgomery throughout the sketch's lifetime,
// replacing the widen-then-divide reduction inside the insert/remove hot
// loop with the Montgomery product. Conversion back to plain field elements
// happens once, at decode time.
//
// This is an alternative representation of PowerSumQuack[field.W64], not a
// subtype of it: it must produce identical decode results for the same
// inputs, which the accelerator-equivalence tests check directly.
type MontgomeryQuack struct {
	powerSums    []field.Montgomery
	inverseTable []field.Element[field.W64]
	count        uint16
}

// NewMontgomeryQuack constructs a Montgomery-form sketch with threshold t.
func NewMontgomeryQuack(t int) *MontgomeryQuack {
	return &MontgomeryQuack{
		powerSums:    make([]field.Montgomery, t),
		inverseTable: modularInverseTable[field.W64](t),
		count:        0,
	}
}

func (q *MontgomeryQuack) Threshold() int { return len(q.powerSums) }
func (q *MontgomeryQuack) Count() uint16  { return q.count }

// Insert runs the same running-product loop as PowerSumQuack.Insert, but
// entirely in Montgomery form: the running product y = x^(k+1) is
// maintained via Montgomery multiplication instead of mulMod.
func (q *MontgomeryQuack) Insert(v uint64) {
	size := len(q.powerSums)
	if size == 0 {
		q.count++
		return
	}
	x := field.MForm(field.New[field.W64](v))
	y := x
	for i := 0; i < size-1; i++ {
		q.powerSums[i] = q.powerSums[i].Add(y)
		y = y.Mul(x)
	}
	q.powerSums[size-1] = q.powerSums[size-1].Add(y)
	q.count++
}

// Remove mirrors Insert with subtraction.
func (q *MontgomeryQuack) Remove(v uint64) {
	size := len(q.powerSums)
	if size == 0 {
		q.count--
		return
	}
	x := field.MForm(field.New[field.W64](v))
	y := x
	for i := 0; i < size-1; i++ {
		q.powerSums[i] = q.powerSums[i].Sub(y)
		y = y.Mul(x)
	}
	q.powerSums[size-1] = q.powerSums[size-1].Sub(y)
	q.count--
}

// SubInto writes self-rhs into dst, entirely in Montgomery form (addition
// and subtraction are unaffected by the R scaling, so no conversion is
// needed here).
func (q *MontgomeryQuack) SubInto(dst *MontgomeryQuack, rhs *MontgomeryQuack) {
	if len(q.powerSums) != len(rhs.powerSums) {
		panic(fmt.Errorf("quack: cannot subtract quacks with different thresholds (%d != %d)",
			len(q.powerSums), len(rhs.powerSums)))
	}
	if cap(dst.powerSums) < len(q.powerSums) {
		dst.powerSums = make([]field.Montgomery, len(q.powerSums))
	} else {
		dst.powerSums = dst.powerSums[:len(q.powerSums)]
	}
	for i := range q.powerSums {
		dst.powerSums[i] = q.powerSums[i].Sub(rhs.powerSums[i])
	}
	dst.inverseTable = q.inverseTable
	dst.count = q.count - rhs.count
}

// Sub returns self-rhs as a new Montgomery-form sketch.
func (q *MontgomeryQuack) Sub(rhs *MontgomeryQuack) *MontgomeryQuack {
	dst := &MontgomeryQuack{inverseTable: q.inverseTable}
	q.SubInto(dst, rhs)
	return dst
}

// ToCoeffs converts the sketch's power sums back to plain field elements —
// the one Montgomery-out conversion the sketch's lifetime incurs — and then
// runs the same Newton recurrence every other representation uses.
func (q *MontgomeryQuack) ToCoeffs() []field.Element[field.W64] {
	plain := make([]field.Element[field.W64], len(q.powerSums))
	for i, m := range q.powerSums {
		plain[i] = field.InvMForm(m)
	}
	coeffs := make([]field.Element[field.W64], q.count)
	newtonCoeffsInto(plain, q.inverseTable, int(q.count), coeffs)
	return coeffs
}
