// Package probability estimates the false-positive rate the log-based
// decoder (quack.DecodeWithLog) exhibits against an identifier log: an
// entry outside the true symmetric difference can still evaluate to zero
// through the decoded polynomial, with probability approximately |L|/p.
//
// p for w=64 (18446744073709551557) already exceeds float64's 53-bit
// mantissa: computing |L|/p directly in float64 silently rounds p to 2^64
// and loses precision in the last several decimal digits. This package uses
// arbitrary-precision math/big.Float instead, plus github.com/ALTree/bigfloat
// for the one operation math/big.Float's standard library doesn't supply on
// its own: raising a big.Float to a real-valued power.
package probability

import (
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/thearossman/quack/field"
)

// precisionBits is generous headroom over the 64 bits a field prime needs:
// enough that the division and power computations below don't themselves
// introduce rounding error visible at 64-bit precision.
const precisionBits = 256

func bigPrime[W field.Width](prec uint) *big.Float {
	var w W
	return new(big.Float).SetPrec(prec).SetUint64(w.Prime())
}

// ExpectedFalsePositives estimates the expected number of identifier-log
// entries outside the true symmetric difference that nonetheless evaluate
// to zero through the decoded polynomial: |L|/p, for a log of length logLen
// over the field selected by W.
func ExpectedFalsePositives[W field.Width](logLen int) *big.Float {
	p := bigPrime[W](precisionBits)
	l := new(big.Float).SetPrec(precisionBits).SetInt64(int64(logLen))
	return new(big.Float).SetPrec(precisionBits).Quo(l, p)
}

// ProbabilityOfAnyFalsePositive estimates P(at least one spurious root among
// logLen independent, uniformly-distributed log entries), modeling each
// entry's chance of colliding with a root as 1/p:
//
//	1 - (1 - 1/p)^logLen
//
// bigfloat.Pow computes the exponentiation via exp(logLen * log(1-1/p))
// rather than logLen sequential multiplications, which matters once logLen
// reaches the sizes a real packet log would (thousands to millions of
// entries) and 1-1/p is a value extremely close to 1, where naive repeated
// squaring in fixed precision would otherwise need care to avoid
// catastrophic cancellation.
func ProbabilityOfAnyFalsePositive[W field.Width](logLen int) *big.Float {
	prec := uint(precisionBits)
	p := bigPrime[W](prec)
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	invP := new(big.Float).SetPrec(prec).Quo(one, p)
	base := new(big.Float).SetPrec(prec).Sub(one, invP)
	exp := new(big.Float).SetPrec(prec).SetInt64(int64(logLen))

	none := bigfloat.Pow(base, exp)
	return new(big.Float).SetPrec(prec).Sub(one, none)
}
