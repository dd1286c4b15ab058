// Package rs implements Reed-Solomon style codes over a prime field GF(p)
// and their decoding with the truncated extended Euclidean algorithm.
//
// A code is given by (p, n, d, a): the words of length n whose polynomial
// f satisfies f(a^i) = 0 for 1 <= i <= d-1. It corrects up to (d-1)/2
// errors. The order of a in GF(p)* is not checked; it has to be at least n
// for error positions to be told apart.
package rs

import (
	"errors"
	"fmt"

	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/algebra/poly"
)

var (
	// ErrInvalidDistanceRange is returned when 2 <= d <= n does not hold.
	ErrInvalidDistanceRange = errors.New("rs: distance out of range")
	// ErrInvalidBase is returned when the evaluation base is 0 mod p.
	ErrInvalidBase = errors.New("rs: evaluation base is zero")
	// ErrMessageTooLong is returned by Encode for messages longer than the
	// code dimension n-(d-1).
	ErrMessageTooLong = errors.New("rs: message too long")
	// ErrDivisionByZero is poly.ErrDivisionByZero, surfaced when the
	// Euclidean loop or the error value formula would divide by zero.
	ErrDivisionByZero = poly.ErrDivisionByZero
)

// Word is a polynomial over GF(p), low degree first.
type Word = poly.Poly[field.Element]

// Params describes a code.
type Params struct {
	Prime    uint64 `json:"prime"`    // field characteristic p
	Length   int    `json:"length"`   // n, coefficient slots of a codeword
	Distance int    `json:"distance"` // d, designed minimum distance
	Base     int64  `json:"base"`     // a, evaluation base
}

func (p Params) String() string {
	return fmt.Sprintf("GF(%d) n=%d d=%d a=%d", p.Prime, p.Length, p.Distance, p.Base)
}

// Validate checks the parameters without building a Code.
func (p Params) Validate() error {
	if p.Distance < 2 || p.Distance > p.Length {
		return fmt.Errorf("%w: need 2 <= d <= n, got d=%d n=%d", ErrInvalidDistanceRange, p.Distance, p.Length)
	}
	if !field.IsPrime(p.Prime) {
		return fmt.Errorf("%w: %d", field.ErrNotPrime, p.Prime)
	}
	if field.New(p.Base, p.Prime).IsZero() {
		return fmt.Errorf("%w: a=%d", ErrInvalidBase, p.Base)
	}
	return nil
}

// Code is a validated parameter set. It holds no mutable state and may be
// shared between goroutines.
type Code struct {
	params Params
	field  field.Field
	a      field.Element
	aInv   field.Element
}

// NewCode validates params and returns the code they describe.
func NewCode(params Params) (*Code, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f, err := field.NewField(params.Prime)
	if err != nil {
		return nil, err
	}
	a := f.Elem(params.Base)
	return &Code{
		params: params,
		field:  f,
		a:      a,
		aInv:   a.Inv(),
	}, nil
}

func (c *Code) Params() Params { return c.params }

func (c *Code) Field() field.Field { return c.field }

// Capacity is the number of errors the code is guaranteed to correct.
func (c *Code) Capacity() int { return (c.params.Distance - 1) / 2 }

// Dimension is the number of message symbols a codeword carries.
func (c *Code) Dimension() int { return c.params.Length - (c.params.Distance - 1) }

// Lift maps integers into a word over the code's field.
func (c *Code) Lift(y []int64) (Word, error) {
	return poly.New(field.Lift(c.field, y))
}

// Generator returns g(x) = (x - a)(x - a^2)...(x - a^(d-1)). Codewords are
// exactly the multiples of g of degree below n.
func (c *Code) Generator() (Word, error) {
	one := c.field.One()
	g := poly.Constant(one)
	root := one
	for i := 1; i < c.params.Distance; i++ {
		root = root.Mul(c.a)
		factor, err := poly.New([]field.Element{root.Neg(), one})
		if err != nil {
			return Word{}, err
		}
		if g, err = g.Mul(factor); err != nil {
			return Word{}, err
		}
	}
	return g, nil
}

// Encode returns m(x)*g(x) padded to n coefficients.
func (c *Code) Encode(msg []int64) (Word, error) {
	if len(msg) > c.Dimension() {
		return Word{}, fmt.Errorf("%w: %d symbols, dimension is %d", ErrMessageTooLong, len(msg), c.Dimension())
	}
	m, err := c.Lift(msg)
	if err != nil {
		return Word{}, err
	}
	g, err := c.Generator()
	if err != nil {
		return Word{}, err
	}
	cw, err := m.Mul(g)
	if err != nil {
		return Word{}, err
	}
	coeffs := cw.Coefficients()
	for len(coeffs) < c.params.Length {
		coeffs = append(coeffs, c.field.Zero())
	}
	return poly.New(coeffs[:c.params.Length])
}

// Syndrome returns S(x) = sum S_i x^(i-1) with S_i = y(a^i), 1 <= i <= d-1.
// It is zero exactly when y is a codeword.
func (c *Code) Syndrome(y []int64) (Word, error) {
	w, err := c.Lift(y)
	if err != nil {
		return Word{}, err
	}
	return c.syndrome(w)
}

func (c *Code) syndrome(y Word) (Word, error) {
	if y.Len() == 0 {
		return Word{}, poly.ErrEmptyPolynomial
	}
	if err := y.Coefficient(0).Compatible(c.a); err != nil {
		return Word{}, err
	}
	s := make([]field.Element, 0, c.params.Distance-1)
	x := c.field.One()
	for i := 1; i < c.params.Distance; i++ {
		x = x.Mul(c.a)
		s = append(s, y.Evaluate(x))
	}
	return poly.New(s)
}

// IsCodeword reports whether y has a zero syndrome.
func (c *Code) IsCodeword(y []int64) (bool, error) {
	s, err := c.Syndrome(y)
	if err != nil {
		return false, err
	}
	return s.IsZero(), nil
}
