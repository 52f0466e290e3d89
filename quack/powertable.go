package quack

import (
	"fmt"

	"github.com/thearossman/quack/field"
)

// PowerTable is the t x 2^16 table of precomputed powers the w=16
// accelerator uses: table[k][id] = id^(k+1) in GF(p16). It depends only on
// (w=16, t), is immutable after construction, and may be shared read-only
// across every PowerTableQuack built with it.
type PowerTable struct {
	t     int
	table [][]field.Element[field.W16]
}

// NewPowerTable builds the shared power table for threshold t. This is the
// one-time cost the accelerator trades against: t*2^16 field
// exponentiations up front, in exchange for turning every subsequent
// insert/remove into table lookups instead of t-1 field multiplications.
func NewPowerTable(t int) *PowerTable {
	const domain = 1 << 16
	table := make([][]field.Element[field.W16], t)
	for k := 0; k < t; k++ {
		row := make([]field.Element[field.W16], domain)
		for id := 0; id < domain; id++ {
			row[id] = field.New[field.W16](uint16(id)).Pow(uint64(k + 1))
		}
		table[k] = row
	}
	return &PowerTable{t: t, table: table}
}

// PowerTableQuack is the precomputed-table accelerator for w=16: an
// alternative implementation of the same insert/remove/decode operation
// set as PowerSumQuack, not a subtype of it. It must produce identical
// decode results to PowerSumQuack for the same inputs.
type PowerTableQuack struct {
	table        *PowerTable
	powerSums    []field.Element[field.W16]
	inverseTable []field.Element[field.W16]
	count        uint16
}

// NewPowerTableQuack constructs a sketch backed by a shared table. table.t
// is the sketch's threshold.
func NewPowerTableQuack(table *PowerTable) *PowerTableQuack {
	return &PowerTableQuack{
		table:        table,
		powerSums:    make([]field.Element[field.W16], table.t),
		inverseTable: modularInverseTable[field.W16](table.t),
		count:        0,
	}
}

func (q *PowerTableQuack) Threshold() int { return len(q.powerSums) }
func (q *PowerTableQuack) Count() uint16  { return q.count }

// Insert replaces the running-product loop with t table lookups and t field
// additions.
func (q *PowerTableQuack) Insert(v uint16) {
	row := q.table.table
	for k := range q.powerSums {
		q.powerSums[k] = q.powerSums[k].Add(row[k][v])
	}
	q.count++
}

// Remove mirrors Insert with subtraction.
func (q *PowerTableQuack) Remove(v uint16) {
	row := q.table.table
	for k := range q.powerSums {
		q.powerSums[k] = q.powerSums[k].Sub(row[k][v])
	}
	q.count--
}

// SubInto is PowerSumQuack.SubInto's counterpart for the table-backed
// representation.
func (q *PowerTableQuack) SubInto(dst *PowerTableQuack, rhs *PowerTableQuack) {
	if len(q.powerSums) != len(rhs.powerSums) {
		panic(fmt.Errorf("quack: cannot subtract quacks with different thresholds (%d != %d)",
			len(q.powerSums), len(rhs.powerSums)))
	}
	if cap(dst.powerSums) < len(q.powerSums) {
		dst.powerSums = make([]field.Element[field.W16], len(q.powerSums))
	} else {
		dst.powerSums = dst.powerSums[:len(q.powerSums)]
	}
	for i := range q.powerSums {
		dst.powerSums[i] = q.powerSums[i].Sub(rhs.powerSums[i])
	}
	dst.table = q.table
	dst.inverseTable = q.inverseTable
	dst.count = q.count - rhs.count
}

// Sub returns self-rhs as a new sketch sharing the receiver's power table.
func (q *PowerTableQuack) Sub(rhs *PowerTableQuack) *PowerTableQuack {
	dst := &PowerTableQuack{table: q.table, inverseTable: q.inverseTable}
	q.SubInto(dst, rhs)
	return dst
}

// ToCoeffs converts the sketch's power sums into monic polynomial
// coefficients, reusing the same Newton recurrence PowerSumQuack uses.
func (q *PowerTableQuack) ToCoeffs() []field.Element[field.W16] {
	coeffs := make([]field.Element[field.W16], q.count)
	newtonCoeffsInto(q.powerSums, q.inverseTable, int(q.count), coeffs)
	return coeffs
}
