package poly

import (
	"math/rand"

	"github.com/thearossman/quack/field"
)

// maxSplitAttempts bounds the number of random restarts equal-degree
// splitting tries before giving up and reporting ErrCannotFactor. The
// expected number of attempts to split a squarefree product of k distinct
// linear factors is O(1) per split (each random choice of a succeeds with
// probability >= 1/2 for an odd prime field), so this bound is generous
// headroom, not a tight tuning knob.
const maxSplitAttempts = 256

// Factor finds the roots of the monic polynomial with coefficients c
// (x^t + c[0]x^(t-1) + ... + c[t-1]) over the field, returning every root
// the correct number of times when the polynomial splits completely into
// linear factors, and ErrCannotFactor otherwise. This holds for all three
// supported widths: the splitting algorithm (Rabin root-finding via
// gcd(f, x^p-x) followed by Cantor-Zassenhaus degree-1 splitting) only
// requires p to be an odd prime, which all three fixed field primes are.
func Factor[W field.Width](c []field.Element[W]) ([]field.Element[W], error) {
	if len(c) == 0 {
		return nil, nil
	}
	f := fromMonic[W](c)
	n := f.degree()

	distinctRoots, err := squarefreeRoots(f)
	if err != nil {
		return nil, err
	}
	if len(distinctRoots) == 0 {
		return nil, ErrCannotFactor
	}

	roots := make([]field.Element[W], 0, n)
	remaining := f
	for _, root := range distinctRoots {
		factor := linearPoly[W](root.Neg())
		for {
			q, r := remaining.divMod(factor)
			if !r.isZero() {
				break
			}
			roots = append(roots, root)
			remaining = q
		}
	}

	if len(roots) != n || remaining.degree() != 0 {
		return nil, ErrCannotFactor
	}
	return roots, nil
}

// squarefreeRoots returns every distinct root of f in the field, each
// exactly once, by computing h = gcd(f, x^p - x) (the product of every
// distinct linear factor dividing f, since x^p-x factors as the product of
// (x-a) over every a in the field) and then splitting h with Cantor-
// Zassenhaus degree-1 splitting.
func squarefreeRoots[W field.Width](f densePoly[W]) ([]field.Element[W], error) {
	p := fieldPrime[W]()
	xToP := modPow[W](xPoly[W](), p, f)
	h := gcdPoly[W](f, xToP.sub(xPoly[W]()))
	if h.degree() <= 0 {
		return nil, nil
	}
	return splitToLinear[W](h)
}

func fieldPrime[W field.Width]() uint64 {
	var w W
	return w.Prime()
}

// splitToLinear recursively splits h, a squarefree polynomial known to split
// completely into distinct linear factors, into its deg(h) roots using the
// classic Cantor-Zassenhaus equal-degree-1 splitting step: for a random a,
// gcd((x+a)^((p-1)/2) - 1, h) is a nontrivial factor of h with probability
// >= 1/2 (p odd).
func splitToLinear[W field.Width](h densePoly[W]) ([]field.Element[W], error) {
	switch {
	case h.degree() < 0:
		return nil, nil
	case h.degree() == 0:
		return nil, nil
	case h.degree() == 1:
		// h is monic: x + h.c[0]; root is -h.c[0].
		return []field.Element[W]{h.c[0].Neg()}, nil
	}

	p := fieldPrime[W]()
	exp := (p - 1) / 2

	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		a := field.New[W](rand.Uint64())
		shifted := linearPoly[W](a)
		pw := modPow[W](shifted, exp, h)
		candidate := pw.sub(constPoly[W](field.One[W]()))
		g := gcdPoly[W](candidate, h)
		if g.degree() > 0 && g.degree() < h.degree() {
			other, _ := h.divMod(g)
			left, err := splitToLinear[W](g)
			if err != nil {
				return nil, err
			}
			right, err := splitToLinear[W](other)
			if err != nil {
				return nil, err
			}
			return append(left, right...), nil
		}
	}
	return nil, ErrCannotFactor
}
