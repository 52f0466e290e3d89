package field

import "math/bits"

// Montgomery represents a W64 field element in Montgomery form: the
// internal value is x*R mod p for R = 2^64. Addition and subtraction are
// unchanged by the R scaling; multiplication goes through mred, the
// Montgomery product, instead of the plain widen-then-reduce mulMod used by
// Element[W64].
//
// The REDC step (mred) implements the standard x*y*R^-1 mod q reduction,
// specialized here to the one fixed w=64 prime.
type Montgomery struct {
	v uint64
}

var (
	montQ    = p64
	montQInv = montgomeryQInv(p64)
	montR2   = montgomeryR2(p64)
)

// montgomeryQInv computes q^-1 mod 2^64 via Newton-iteration doubling:
// qInv_{i+1} = qInv_i * (2 - q*qInv_i), rewritten here in an equivalent
// repeated-squaring form, which converges because q is odd (all three
// field primes are odd).
func montgomeryQInv(q uint64) uint64 {
	qInv := uint64(1)
	x := q
	for i := 0; i < 63; i++ {
		qInv *= x
		x *= x
	}
	return qInv
}

// montgomeryR2 computes R^2 mod q = (2^64 mod q)^2 mod q, the constant used
// to move a plain field value into Montgomery form via mred(a, R2, ...).
func montgomeryR2(q uint64) uint64 {
	// 2^64 mod q, computed exactly: the 128-bit value (hi=1, lo=0) divided
	// by q. bits.Div64 requires hi < q, which holds because q > 1.
	_, rModQ := bits.Div64(1, 0, q)
	return mulMod(rModQ, rModQ, q)
}

// mred computes x*y*R^-1 mod q, the Montgomery product (REDC).
func mred(x, y uint64) uint64 {
	ahi, alo := bits.Mul64(x, y)
	r := alo * montQInv
	h, _ := bits.Mul64(r, montQ)
	result := ahi - h + montQ
	if result >= montQ {
		result -= montQ
	}
	return result
}

// MForm converts a plain W64 element into Montgomery form.
func MForm(a Element[W64]) Montgomery {
	return Montgomery{v: mred(a.v, montR2)}
}

// InvMForm converts a Montgomery-form element back to a plain W64 element.
// This is mred(a, 1, ...): REDC with y=1 computes a*R^-1 mod q exactly.
func InvMForm(m Montgomery) Element[W64] {
	return Element[W64]{v: mred(m.v, 1)}
}

// MontgomeryZero is the Montgomery-domain representation of zero (R*0=0, so
// it is the same as the plain zero — addition/subtraction need no
// conversion).
func MontgomeryZero() Montgomery { return Montgomery{v: 0} }

// Add returns a+b in Montgomery form; addition is unaffected by the R
// scaling, so this is the same addMod used by plain elements.
func (m Montgomery) Add(o Montgomery) Montgomery {
	return Montgomery{v: addMod(m.v, o.v, montQ)}
}

// Sub returns a-b in Montgomery form.
func (m Montgomery) Sub(o Montgomery) Montgomery {
	return Montgomery{v: subMod(m.v, o.v, montQ)}
}

// Mul returns a*b in Montgomery form via the Montgomery product, replacing
// the widen-then-divide reduction of mulMod with REDC in the hot loop.
func (m Montgomery) Mul(o Montgomery) Montgomery {
	return Montgomery{v: mred(m.v, o.v)}
}

// IsZero reports whether m represents zero (true in both domains, since
// 0*R mod q = 0).
func (m Montgomery) IsZero() bool { return m.v == 0 }
