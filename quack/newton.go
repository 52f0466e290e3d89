package quack

import (
	"fmt"

	"github.com/thearossman/quack/field"
)

// ToCoeffs converts the sketch's power sums into the coefficients of the
// monic polynomial whose roots are the sketch's net multiset, via Newton's
// identities. The returned slice has length q.Count(); a count greater than
// the threshold would silently corrupt the result, so it is rejected here
// as a capability misuse instead.
func (q *PowerSumQuack[W]) ToCoeffs() []field.Element[W] {
	coeffs := make([]field.Element[W], q.Count())
	q.CoeffsInto(coeffs)
	return coeffs
}

// CoeffsInto writes the Newton conversion into a caller-supplied buffer of
// length q.Count(), the zero-allocation counterpart of ToCoeffs for
// hot-path callers that cannot allocate after construction.
func (q *PowerSumQuack[W]) CoeffsInto(coeffs []field.Element[W]) {
	newtonCoeffsInto(q.powerSums, q.inverseTable, int(q.count), coeffs)
}

// newtonCoeffsInto is the Newton's-identity recurrence itself, shared by
// every sketch representation (PowerSumQuack, PowerTableQuack,
// MontgomeryQuack) so the accelerator variants stay peers of the base
// sketch — alternative insert/remove implementations producing the same
// plain power-sum state — rather than subclasses reimplementing decode.
func newtonCoeffsInto[W field.Width](powerSums, inverseTable []field.Element[W], n int, coeffs []field.Element[W]) {
	if len(coeffs) != n {
		panic(fmt.Errorf("quack: coefficient buffer has length %d, want %d (sketch count)", len(coeffs), n))
	}
	if n == 0 {
		return
	}
	if n > len(powerSums) {
		panic(fmt.Errorf("quack: sketch count %d exceeds threshold %d; decoding would be silently wrong", n, len(powerSums)))
	}

	coeffs[0] = powerSums[0].Neg()
	for i := 1; i < n; i++ {
		acc := field.Zero[W]()
		for j := 0; j < i; j++ {
			acc = acc.Sub(powerSums[j].Mul(coeffs[i-j-1]))
		}
		acc = acc.Sub(powerSums[i])
		coeffs[i] = acc.Mul(inverseTable[i])
	}
}
