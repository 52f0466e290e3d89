// Package field implements modular integer arithmetic over the three fixed
// primes used by the power-sum quACK: one field per supported identifier
// width (16, 32 or 64 bits). Each width is a distinct monomorphization of
// the same abstract field capability, selected through a zero-size marker
// type parameter rather than a runtime tag, so the hot insert/remove loops
// never branch on width.
package field

// Width names a fixed prime field used to back one identifier size. It is
// implemented by the three marker types below; values of Width carry no
// state and exist only to select a monomorphization of Element[W].
type Width interface {
	// Prime returns the field modulus p, chosen so that p < 2^Bits() with
	// room for one widening multiplication.
	Prime() uint64
	// Bits is the identifier width this field backs (16, 32, or 64).
	Bits() int
	// ByteWidth is Bits()/8, the per-power-sum wire encoding width.
	ByteWidth() int
}

// W16 selects the 16-bit identifier field, p = 65521 (the largest prime
// below 2^16).
type W16 struct{}

// W32 selects the 32-bit identifier field, p = 4294967291 (the largest
// prime below 2^32).
type W32 struct{}

// W64 selects the 64-bit identifier field, p = 18446744073709551557 (the
// largest prime below 2^64).
type W64 struct{}

const (
	p16 uint64 = 65521
	p32 uint64 = 4294967291
	p64 uint64 = 18446744073709551557
)

func (W16) Prime() uint64   { return p16 }
func (W16) Bits() int       { return 16 }
func (W16) ByteWidth() int  { return 2 }

func (W32) Prime() uint64  { return p32 }
func (W32) Bits() int      { return 32 }
func (W32) ByteWidth() int { return 4 }

func (W64) Prime() uint64  { return p64 }
func (W64) Bits() int      { return 64 }
func (W64) ByteWidth() int { return 8 }

// widthOf constructs the zero-value marker for W, the idiom used throughout
// this package to call the Width methods without requiring callers to pass
// an instance around.
func widthOf[W Width]() W {
	var w W
	return w
}
