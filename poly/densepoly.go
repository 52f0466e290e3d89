package poly

import "github.com/thearossman/quack/field"

// densePoly is coefficients stored low-degree-first (c[i] is the
// coefficient of x^i), the representation factoring needs for polynomial
// long division and gcd. This is the internal counterpart of the
// high-degree-first, implicit-leading-one representation exposed on the
// package boundary (Eval, Factor); fromMonic converts the boundary form
// into this one.
type densePoly[W field.Width] struct {
	c []field.Element[W]
}

func newDensePoly[W field.Width](c []field.Element[W]) densePoly[W] {
	p := densePoly[W]{c: append([]field.Element[W](nil), c...)}
	p.trim()
	return p
}

func zeroPoly[W field.Width]() densePoly[W] {
	return densePoly[W]{}
}

func constPoly[W field.Width](v field.Element[W]) densePoly[W] {
	if v.IsZero() {
		return zeroPoly[W]()
	}
	return densePoly[W]{c: []field.Element[W]{v}}
}

// linearPoly returns x + a.
func linearPoly[W field.Width](a field.Element[W]) densePoly[W] {
	return newDensePoly[W]([]field.Element[W]{a, field.One[W]()})
}

// xPoly returns the polynomial x.
func xPoly[W field.Width]() densePoly[W] {
	return linearPoly[W](field.Zero[W]())
}

func (p densePoly[W]) trim() densePoly[W] {
	n := len(p.c)
	for n > 0 && p.c[n-1].IsZero() {
		n--
	}
	p.c = p.c[:n]
	return p
}

func (p densePoly[W]) degree() int { return len(p.c) - 1 }

func (p densePoly[W]) isZero() bool { return len(p.c) == 0 }

func (p densePoly[W]) leadCoeff() field.Element[W] {
	if p.isZero() {
		return field.Zero[W]()
	}
	return p.c[len(p.c)-1]
}

// monic returns p scaled so its leading coefficient is 1.
func (p densePoly[W]) monic() densePoly[W] {
	if p.isZero() {
		return p
	}
	inv := p.leadCoeff().Inv()
	return p.scale(inv)
}

func (p densePoly[W]) scale(s field.Element[W]) densePoly[W] {
	out := make([]field.Element[W], len(p.c))
	for i, ci := range p.c {
		out[i] = ci.Mul(s)
	}
	return newDensePoly[W](out)
}

func (p densePoly[W]) add(q densePoly[W]) densePoly[W] {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]field.Element[W], n)
	for i := 0; i < n; i++ {
		var a, b field.Element[W]
		if i < len(p.c) {
			a = p.c[i]
		}
		if i < len(q.c) {
			b = q.c[i]
		}
		out[i] = a.Add(b)
	}
	return newDensePoly[W](out)
}

func (p densePoly[W]) sub(q densePoly[W]) densePoly[W] {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]field.Element[W], n)
	for i := 0; i < n; i++ {
		var a, b field.Element[W]
		if i < len(p.c) {
			a = p.c[i]
		}
		if i < len(q.c) {
			b = q.c[i]
		}
		out[i] = a.Sub(b)
	}
	return newDensePoly[W](out)
}

func (p densePoly[W]) mul(q densePoly[W]) densePoly[W] {
	if p.isZero() || q.isZero() {
		return zeroPoly[W]()
	}
	out := make([]field.Element[W], len(p.c)+len(q.c)-1)
	for i, ai := range p.c {
		if ai.IsZero() {
			continue
		}
		for j, bj := range q.c {
			out[i+j] = out[i+j].Add(ai.Mul(bj))
		}
	}
	return newDensePoly[W](out)
}

// divMod returns (q, r) such that p = q*b + r with deg(r) < deg(b), per the
// schoolbook division algorithm (Gathen & Gerhard, Algorithm 2.5), the same
// algorithm the Gao-decoder's LongDiv implements.
func (p densePoly[W]) divMod(b densePoly[W]) (q, r densePoly[W]) {
	if b.isZero() {
		panic("poly: division by zero polynomial")
	}
	r = newDensePoly[W](append([]field.Element[W](nil), p.c...))
	n, m := p.degree(), b.degree()
	if n < m {
		return zeroPoly[W](), r
	}
	qc := make([]field.Element[W], n-m+1)
	lead := b.leadCoeff()
	leadInv := lead.Inv()
	for r.degree() >= m && !r.isZero() {
		shift := r.degree() - m
		coeff := r.leadCoeff().Mul(leadInv)
		qc[shift] = coeff
		// r -= coeff * x^shift * b
		term := make([]field.Element[W], shift+len(b.c))
		for i, bi := range b.c {
			term[shift+i] = bi.Mul(coeff)
		}
		r = r.sub(newDensePoly[W](term))
	}
	return newDensePoly[W](qc), r
}

// gcdPoly returns the monic greatest common divisor of a and b via the
// Euclidean algorithm, the degree-zero endpoint of the same
// PartialExtendedEuclidean recurrence the Gao decoder uses for decoding.
func gcdPoly[W field.Width](a, b densePoly[W]) densePoly[W] {
	for !b.isZero() {
		_, r := a.divMod(b)
		a, b = b, r
	}
	if a.isZero() {
		return a
	}
	return a.monic()
}

// derivative returns the formal derivative of p.
func (p densePoly[W]) derivative() densePoly[W] {
	if p.degree() <= 0 {
		return zeroPoly[W]()
	}
	out := make([]field.Element[W], p.degree())
	for i := 1; i <= p.degree(); i++ {
		out[i-1] = p.c[i].Mul(field.New[W](uint64(i)))
	}
	return newDensePoly[W](out)
}

// modPow computes base^e mod m using square-and-multiply, reducing modulo m
// after every multiplication so intermediate degree never exceeds
// 2*deg(m)-2.
func modPow[W field.Width](base densePoly[W], e uint64, m densePoly[W]) densePoly[W] {
	result := constPoly[W](field.One[W]())
	b := base
	_, b = b.divMod(m)
	for e > 0 {
		if e&1 == 1 {
			result = result.mul(b)
			_, result = result.divMod(m)
		}
		b = b.mul(b)
		_, b = b.divMod(m)
		e >>= 1
	}
	return result
}

// eval evaluates p (low-to-high representation) at x via Horner's rule.
func (p densePoly[W]) eval(x field.Element[W]) field.Element[W] {
	r := field.Zero[W]()
	for i := p.degree(); i >= 0; i-- {
		r = r.Mul(x).Add(p.c[i])
	}
	return r
}

// fromMonic converts a high-degree-first, implicit-leading-one coefficient
// vector (c[0]..c[t-1] meaning x^t + c[0]x^(t-1) + ... + c[t-1]) into the
// internal low-to-high representation with an explicit leading 1.
func fromMonic[W field.Width](c []field.Element[W]) densePoly[W] {
	n := len(c)
	out := make([]field.Element[W], n+1)
	out[n] = field.One[W]()
	for i, ci := range c {
		out[n-1-i] = ci
	}
	return newDensePoly[W](out)
}
