package field

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Element is a value of GF(p) for the prime p selected by W. The zero value
// is the field's zero element. Elements are immutable: every operation
// returns a new value, and the stored value is always in [0, p).
type Element[W Width] struct {
	v uint64
}

// New reduces any unsigned integer width into the field by taking it
// modulo p. Identifiers wider than p collide on entry; callers are expected
// to accept that cost.
func New[W Width, T constraints.Unsigned](x T) Element[W] {
	q := widthOf[W]().Prime()
	return Element[W]{v: reduceMod(uint64(x), q)}
}

// Zero returns the field's additive identity.
func Zero[W Width]() Element[W] { return Element[W]{v: 0} }

// One returns the field's multiplicative identity.
func One[W Width]() Element[W] { return Element[W]{v: 1} }

// Uint64 returns the canonical representative of e in [0, p).
func (e Element[W]) Uint64() uint64 { return e.v }

// IsZero reports whether e is the field's zero element.
func (e Element[W]) IsZero() bool { return e.v == 0 }

// Add returns a+b mod p.
func (e Element[W]) Add(o Element[W]) Element[W] {
	return Element[W]{v: addMod(e.v, o.v, widthOf[W]().Prime())}
}

// Sub returns a-b mod p.
func (e Element[W]) Sub(o Element[W]) Element[W] {
	return Element[W]{v: subMod(e.v, o.v, widthOf[W]().Prime())}
}

// Neg returns -a mod p.
func (e Element[W]) Neg() Element[W] {
	return Element[W]{v: negMod(e.v, widthOf[W]().Prime())}
}

// Mul returns a*b mod p via a widening multiply into 128 bits followed by a
// reduction.
func (e Element[W]) Mul(o Element[W]) Element[W] {
	return Element[W]{v: mulMod(e.v, o.v, widthOf[W]().Prime())}
}

// Pow returns a^n mod p by square-and-multiply, O(log n) multiplications.
func (e Element[W]) Pow(n uint64) Element[W] {
	result := One[W]()
	base := e
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse of a, defined for a != 0, computed
// via Fermat's little theorem (a^(p-2)). Inv panics on a == 0: inverting
// zero is a programmer error, not a recoverable failure.
func (e Element[W]) Inv() Element[W] {
	if e.v == 0 {
		panic(fmt.Errorf("field: cannot invert zero element"))
	}
	return e.Pow(widthOf[W]().Prime() - 2)
}

// String renders the canonical representative, mainly for test failure
// messages and debug logging at call sites outside this package.
func (e Element[W]) String() string {
	return fmt.Sprintf("%d", e.v)
}
