// Package poly implements a monic polynomial evaluator and factorer:
// coefficients c[0..t) implicitly represent
// x^t + c[0]*x^(t-1) + ... + c[t-1], the shape a Newton-identity conversion
// from a power-sum sketch produces directly.
package poly

import "github.com/thearossman/quack/field"

// Eval evaluates the monic polynomial with coefficients c at x using
// Horner's rule, starting from the implicit leading coefficient 1:
// r <- 1; for each c_i: r <- r*x + c_i.
//
// Two edge cases fall out naturally: len(c)==0 returns 1 (the empty
// product / constant monic polynomial "1"); x==0 returns c[len(c)-1]
// (Horner naturally collapses to the final coefficient when x is zero).
func Eval[W field.Width](c []field.Element[W], x field.Element[W]) field.Element[W] {
	r := field.One[W]()
	for _, ci := range c {
		r = r.Mul(x).Add(ci)
	}
	return r
}
