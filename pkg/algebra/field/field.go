// Package field implements exact arithmetic over a prime field GF(p) whose
// modulus fits in a machine word.
package field

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

var (
	// ErrModulusMismatch is reported when two elements of different fields
	// meet in a binary operation.
	ErrModulusMismatch = errors.New("field: modulus mismatch")
	// ErrNotPrime is returned when a field is requested for a modulus that is
	// not a prime.
	ErrNotPrime = errors.New("field: modulus is not prime")
)

// Element is a residue modulo a prime. The value is always kept in
// [0, modulus). Elements are immutable; every operation returns a new one.
//
// The zero value has modulus 0 and is not a valid element.
type Element struct {
	v uint64
	m uint64
}

// New reduces value modulo modulus. Negative values are allowed and map to
// their non-negative representative. A zero modulus panics.
func New(value int64, modulus uint64) Element {
	if modulus == 0 {
		panic("field: zero modulus")
	}
	if value >= 0 {
		return Element{v: uint64(value) % modulus, m: modulus}
	}
	// -(value+1) cannot overflow, even for math.MinInt64
	mag := uint64(-(value+1)) + 1
	r := mag % modulus
	if r == 0 {
		return Element{v: 0, m: modulus}
	}
	return Element{v: modulus - r, m: modulus}
}

// FromUint64 is New for unsigned input.
func FromUint64(value, modulus uint64) Element {
	if modulus == 0 {
		panic("field: zero modulus")
	}
	return Element{v: value % modulus, m: modulus}
}

// Value returns the canonical representative in [0, modulus).
func (x Element) Value() uint64 { return x.v }

// Modulus returns the characteristic of the field x belongs to.
func (x Element) Modulus() uint64 { return x.m }

// Int64 returns the representative of x closest to zero, so that p-1 is
// reported as -1. Moduli above 2^63 are reported unsigned-truncated.
func (x Element) Int64() int64 {
	if x.v > x.m/2 {
		return -int64(x.m - x.v)
	}
	return int64(x.v)
}

// Compatible reports ErrModulusMismatch when x and y live in different fields.
func (x Element) Compatible(y Element) error {
	if x.m != y.m {
		return fmt.Errorf("%w: %d != %d", ErrModulusMismatch, x.m, y.m)
	}
	return nil
}

func (x Element) mustMatch(y Element) {
	if err := x.Compatible(y); err != nil {
		panic(err)
	}
}

// Add returns x+y. It panics with ErrModulusMismatch if the moduli differ.
func (x Element) Add(y Element) Element {
	x.mustMatch(y)
	s := x.v + y.v
	if s < x.v || s >= x.m {
		s -= x.m
	}
	return Element{v: s, m: x.m}
}

// Sub returns x-y. It panics with ErrModulusMismatch if the moduli differ.
func (x Element) Sub(y Element) Element {
	x.mustMatch(y)
	if x.v >= y.v {
		return Element{v: x.v - y.v, m: x.m}
	}
	return Element{v: x.m - (y.v - x.v), m: x.m}
}

// Mul returns x*y. It panics with ErrModulusMismatch if the moduli differ.
func (x Element) Mul(y Element) Element {
	x.mustMatch(y)
	return Element{v: mulMod(x.v, y.v, x.m), m: x.m}
}

// Div returns x * y^-1. Dividing by zero yields zero, see Inv.
func (x Element) Div(y Element) Element {
	return x.Mul(y.Inv())
}

// Neg returns -x.
func (x Element) Neg() Element {
	if x.v == 0 {
		return x
	}
	return Element{v: x.m - x.v, m: x.m}
}

// Inv returns the multiplicative inverse of x, computed as x^(p-2) by
// Fermat's little theorem. Zero has no inverse; Inv returns zero for it and
// callers are expected to screen zero beforehand.
func (x Element) Inv() Element {
	if x.m == 2 || x.v == 0 {
		return x
	}
	return x.Pow(x.m - 2)
}

// Pow returns x^e by square-and-multiply. x^0 is one, including 0^0.
func (x Element) Pow(e uint64) Element {
	result := uint64(1) % x.m
	base := x.v
	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, base, x.m)
		}
		base = mulMod(base, base, x.m)
		e >>= 1
	}
	return Element{v: result, m: x.m}
}

// Zero returns the additive identity of x's field.
func (x Element) Zero() Element { return Element{v: 0, m: x.m} }

// One returns the multiplicative identity of x's field.
func (x Element) One() Element { return Element{v: 1 % x.m, m: x.m} }

func (x Element) IsZero() bool { return x.v == 0 }

// Equal reports whether x and y are the same element of the same field.
func (x Element) Equal(y Element) bool { return x.v == y.v && x.m == y.m }

func (x Element) String() string { return strconv.FormatUint(x.v, 10) }

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// Field is a validated prime field GF(p).
type Field struct {
	p uint64
}

// NewField returns GF(p), or ErrNotPrime if p is not a prime.
func NewField(p uint64) (Field, error) {
	if !IsPrime(p) {
		return Field{}, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	return Field{p: p}, nil
}

// IsPrime reports whether p is prime. The test is exact for all 64-bit input.
func IsPrime(p uint64) bool {
	return new(big.Int).SetUint64(p).ProbablyPrime(0)
}

func (f Field) Modulus() uint64 { return f.p }

// Elem reduces v into the field.
func (f Field) Elem(v int64) Element { return New(v, f.p) }

func (f Field) Zero() Element { return Element{v: 0, m: f.p} }

func (f Field) One() Element { return Element{v: 1, m: f.p} }

// Lift maps a slice of integers of any width into f.
func Lift[I constraints.Integer](f Field, vs []I) []Element {
	out := make([]Element, len(vs))
	for i, v := range vs {
		if v < 0 {
			out[i] = New(int64(v), f.p)
		} else {
			out[i] = FromUint64(uint64(v), f.p)
		}
	}
	return out
}

// Values returns the canonical representatives of es.
func Values(es []Element) []uint64 {
	out := make([]uint64, len(es))
	for i, e := range es {
		out[i] = e.v
	}
	return out
}
