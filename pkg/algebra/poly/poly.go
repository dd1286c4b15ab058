// Package poly implements dense univariate polynomials over any ring that
// provides the arithmetic of Ring. Coefficients are stored low degree first.
package poly

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPolynomial is returned when a polynomial is built from no
	// coefficients.
	ErrEmptyPolynomial = errors.New("poly: empty coefficient list")
	// ErrDivisionByZero is returned when dividing by a polynomial whose
	// coefficients are all zero.
	ErrDivisionByZero = errors.New("poly: division by zero polynomial")
)

// Ring is the capability set a coefficient type has to offer.
type Ring[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Neg() T
	Zero() T
	IsZero() bool
	Equal(y T) bool
	// Compatible returns a non-nil error when x and y cannot be combined,
	// e.g. elements of different fields.
	Compatible(y T) error
}

// Poly is a polynomial with coefficients in T. Index i holds the coefficient
// of x^i. A Poly always has at least one coefficient; the zero polynomial is
// any run of zero coefficients.
//
// Trailing zero coefficients are kept as they are. Degree scans for the
// highest non-zero term.
type Poly[T Ring[T]] struct {
	coeffs []T
}

// New builds a polynomial from coeffs. The slice is copied.
func New[T Ring[T]](coeffs []T) (Poly[T], error) {
	if len(coeffs) == 0 {
		return Poly[T]{}, ErrEmptyPolynomial
	}
	for i := 1; i < len(coeffs); i++ {
		if err := coeffs[0].Compatible(coeffs[i]); err != nil {
			return Poly[T]{}, fmt.Errorf("coefficient %d: %w", i, err)
		}
	}
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return Poly[T]{coeffs: c}, nil
}

// Monomial returns c*x^k.
func Monomial[T Ring[T]](c T, k int) Poly[T] {
	coeffs := make([]T, k+1)
	zero := c.Zero()
	for i := 0; i < k; i++ {
		coeffs[i] = zero
	}
	coeffs[k] = c
	return Poly[T]{coeffs: coeffs}
}

// Constant returns the degree-0 polynomial c.
func Constant[T Ring[T]](c T) Poly[T] {
	return Poly[T]{coeffs: []T{c}}
}

// Len returns the number of stored coefficients, zeros included.
func (p Poly[T]) Len() int { return len(p.coeffs) }

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial. -1 compares below every real degree.
func (p Poly[T]) Degree() int {
	return topIndex(p.coeffs, len(p.coeffs)-1)
}

// topIndex returns the highest index <= from holding a non-zero value, or -1.
func topIndex[T Ring[T]](c []T, from int) int {
	for i := from; i >= 0; i-- {
		if !c[i].IsZero() {
			return i
		}
	}
	return -1
}

func (p Poly[T]) IsZero() bool { return p.Degree() == -1 }

func (p Poly[T]) zero() T { return p.coeffs[0].Zero() }

// Coefficient returns the coefficient of x^i; indexes past the end read as
// zero.
func (p Poly[T]) Coefficient(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return p.zero()
	}
	return p.coeffs[i]
}

// Coefficients returns a copy of the stored coefficients.
func (p Poly[T]) Coefficients() []T {
	c := make([]T, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Leading returns the highest non-zero coefficient, or zero.
func (p Poly[T]) Leading() T {
	if d := p.Degree(); d >= 0 {
		return p.coeffs[d]
	}
	return p.zero()
}

// Trim returns p without structural trailing zeros. The zero polynomial
// keeps a single zero coefficient.
func (p Poly[T]) Trim() Poly[T] {
	n := p.Degree() + 1
	if n == 0 {
		n = 1
	}
	c := make([]T, n)
	copy(c, p.coeffs[:n])
	return Poly[T]{coeffs: c}
}

// Equal reports whether p and q describe the same polynomial. Trailing zeros
// do not matter.
func (p Poly[T]) Equal(q Poly[T]) bool {
	n := max(len(p.coeffs), len(q.coeffs))
	for i := 0; i < n; i++ {
		if !p.Coefficient(i).Equal(q.Coefficient(i)) {
			return false
		}
	}
	return true
}

func (p Poly[T]) compatible(q Poly[T]) error {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return ErrEmptyPolynomial
	}
	return p.coeffs[0].Compatible(q.coeffs[0])
}

// Evaluate returns p(x) using Horner's rule.
func (p Poly[T]) Evaluate(x T) T {
	acc := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Differentiate returns the formal derivative of p. Its coefficient i is
// (i+1)*p[i+1]. A single-coefficient polynomial differentiates to zero.
func (p Poly[T]) Differentiate() Poly[T] {
	if len(p.coeffs) == 1 {
		return Constant(p.zero())
	}
	c := make([]T, len(p.coeffs)-1)
	for i := range c {
		c[i] = times(p.coeffs[i+1], i+1)
	}
	return Poly[T]{coeffs: c}
}

// times returns k*c as a k-fold sum, computed by doubling.
func times[T Ring[T]](c T, k int) T {
	acc := c.Zero()
	for k > 0 {
		if k&1 == 1 {
			acc = acc.Add(c)
		}
		c = c.Add(c)
		k >>= 1
	}
	return acc
}

// Add returns p+q. The result has max(p.Len(), q.Len()) coefficients.
func (p Poly[T]) Add(q Poly[T]) (Poly[T], error) {
	return p.combine(q, false)
}

// Sub returns p-q. The result has max(p.Len(), q.Len()) coefficients.
func (p Poly[T]) Sub(q Poly[T]) (Poly[T], error) {
	return p.combine(q, true)
}

func (p Poly[T]) combine(q Poly[T], subtract bool) (Poly[T], error) {
	if err := p.compatible(q); err != nil {
		return Poly[T]{}, err
	}
	short := min(len(p.coeffs), len(q.coeffs))
	c := make([]T, 0, max(len(p.coeffs), len(q.coeffs)))
	for i := 0; i < short; i++ {
		if subtract {
			c = append(c, p.coeffs[i].Sub(q.coeffs[i]))
		} else {
			c = append(c, p.coeffs[i].Add(q.coeffs[i]))
		}
	}
	c = append(c, p.coeffs[short:]...)
	for _, v := range q.coeffs[short:] {
		if subtract {
			v = v.Neg()
		}
		c = append(c, v)
	}
	return Poly[T]{coeffs: c}, nil
}

// Mul returns the product p*q, with p.Len()+q.Len()-1 coefficients.
func (p Poly[T]) Mul(q Poly[T]) (Poly[T], error) {
	if err := p.compatible(q); err != nil {
		return Poly[T]{}, err
	}
	c := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	zero := p.zero()
	for k := range c {
		c[k] = zero
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return Poly[T]{coeffs: c}, nil
}

// Scale returns s*p.
func (p Poly[T]) Scale(s T) (Poly[T], error) {
	if err := p.coeffs[0].Compatible(s); err != nil {
		return Poly[T]{}, err
	}
	c := make([]T, len(p.coeffs))
	for i, v := range p.coeffs {
		c[i] = v.Mul(s)
	}
	return Poly[T]{coeffs: c}, nil
}

// DivideBy performs long division and returns quotient and remainder with
// p = quotient*divisor + remainder and deg(remainder) < deg(divisor).
//
// Structural leading zeros in either operand are skipped. The remainder keeps
// p's length; the quotient has max(p.Len()-deg(divisor), 1) coefficients.
func (p Poly[T]) DivideBy(divisor Poly[T]) (quotient, remainder Poly[T], err error) {
	if err := p.compatible(divisor); err != nil {
		return Poly[T]{}, Poly[T]{}, err
	}
	j := divisor.Degree()
	if j < 0 {
		return Poly[T]{}, Poly[T]{}, ErrDivisionByZero
	}
	lead := divisor.coeffs[j]
	zero := p.zero()

	r := p.Coefficients()
	q := make([]T, max(len(r)-j, 1))
	for i := range q {
		q[i] = zero
	}

	for i := topIndex(r, len(r)-1); i >= j; i = topIndex(r, i-1) {
		a := r[i].Div(lead)
		q[i-j] = a
		for k := 0; k <= j; k++ {
			r[i-j+k] = r[i-j+k].Sub(a.Mul(divisor.coeffs[k]))
		}
	}
	return Poly[T]{coeffs: q}, Poly[T]{coeffs: r}, nil
}

// String renders p as a sum of terms, lowest degree first, e.g.
// "1 + 2x^2 + x^3".
func (p Poly[T]) String() string {
	var terms []string
	for i, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		s := fmt.Sprint(c)
		switch {
		case i == 0:
			terms = append(terms, s)
		case s == "1" && i == 1:
			terms = append(terms, "x")
		case s == "1":
			terms = append(terms, fmt.Sprintf("x^%d", i))
		case i == 1:
			terms = append(terms, s+"x")
		default:
			terms = append(terms, fmt.Sprintf("%sx^%d", s, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
