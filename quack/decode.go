package quack

import (
	"github.com/thearossman/quack/field"
	"github.com/thearossman/quack/poly"
)

// coeffSource is satisfied by every sketch representation (PowerSumQuack,
// PowerTableQuack, MontgomeryQuack): the common surface decoding needs,
// independent of how insert/remove are implemented internally.
type coeffSource[W field.Width] interface {
	ToCoeffs() []field.Element[W]
	Count() uint16
}

// Decode computes the full decoded result (index list plus suffix
// classification) of sketch q against log: convert to coefficients, then
// keep every log index whose entry evaluates to zero through the monic
// polynomial.
func Decode[W field.Width](q coeffSource[W], log []uint64) *Decoded {
	d := &Decoded{logLen: len(log)}
	if q.Count() == 0 {
		return d
	}
	coeffs := q.ToCoeffs()
	for i, x := range log {
		if poly.Eval[W](coeffs, field.New[W](x)).IsZero() {
			d.indexes = append(d.indexes, i)
		}
	}
	return d
}

// DecodeWithLog returns the missing identifiers themselves (rather than
// their log indices), preserving log order. May return more entries than
// q.Count() (field collisions, genuine duplicates) or fewer (an incomplete
// log); both are expected outcomes, not errors.
func DecodeWithLog[W field.Width](q coeffSource[W], log []uint64) []uint64 {
	if q.Count() == 0 {
		return nil
	}
	coeffs := q.ToCoeffs()
	var missing []uint64
	for _, x := range log {
		if poly.Eval[W](coeffs, field.New[W](x)).IsZero() {
			missing = append(missing, x)
		}
	}
	return missing
}

// DecodeByFactorization decodes without a log by factoring the sketch's
// polynomial directly, returning the roots lifted back to identifiers
// (their canonical representative in [0,p); identifiers >= p collided on
// insert and cannot be recovered unambiguously). Returns ErrCannotFactor,
// wrapping poly.ErrCannotFactor, when the polynomial does not split
// completely — the caller is expected to fall back to DecodeWithLog.
func DecodeByFactorization[W field.Width](q coeffSource[W]) ([]uint64, error) {
	if q.Count() == 0 {
		return []uint64{}, nil
	}
	coeffs := q.ToCoeffs()
	roots, err := poly.Factor[W](coeffs)
	if err != nil {
		return nil, ErrCannotFactor
	}
	ids := make([]uint64, len(roots))
	for i, r := range roots {
		ids[i] = r.Uint64()
	}
	return ids, nil
}
