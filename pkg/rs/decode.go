package rs

import (
	"fmt"

	"github.com/Davincible/euclid/pkg/algebra/field"
	"github.com/Davincible/euclid/pkg/algebra/poly"
)

// ErrorValue is one located error: the received word held
// codeword[Position] + Value.
type ErrorValue struct {
	Position int
	Value    field.Element
}

// Step records one division of the Euclidean loop.
type Step struct {
	Quotient  Word // q_k
	Remainder Word // r_k
	Auxiliary Word // t_k
}

// Result is the outcome of a decode.
type Result struct {
	Received  Word
	Corrected Word
	Syndrome  Word
	Locator   Word // sigma, zero-free unless errors were found
	Evaluator Word // omega
	Errors    []ErrorValue
	Steps     []Step

	// Verified is set when the corrected word has a zero syndrome.
	Verified bool
	// Exceeded is set when the locator has fewer roots among the scanned
	// positions than its degree, i.e. more errors occurred than the code
	// can correct and Corrected is not trustworthy.
	Exceeded bool
}

// Decode corrects y in the code (p, n, d, a) and returns the corrected word.
// y holds coefficients low degree first and may be longer than n, but only
// error positions 0..n-1 are examined.
//
// It fails with ErrInvalidDistanceRange unless 2 <= d <= n.
func Decode(p uint64, n, d int, a int64, y []int64) (Word, error) {
	code, err := NewCode(Params{Prime: p, Length: n, Distance: d, Base: a})
	if err != nil {
		return Word{}, err
	}
	res, err := code.Decode(y)
	if err != nil {
		return Word{}, err
	}
	return res.Corrected, nil
}

// Decode lifts y into the code's field and decodes it.
func (c *Code) Decode(y []int64) (*Result, error) {
	w, err := c.Lift(y)
	if err != nil {
		return nil, err
	}
	return c.DecodeWord(w)
}

// DecodeWord decodes a received word that already lives in the code's field.
func (c *Code) DecodeWord(y Word) (*Result, error) {
	s, err := c.syndrome(y)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Received:  y,
		Corrected: y,
		Syndrome:  s,
		Locator:   poly.Constant(c.field.One()),
		Evaluator: poly.Constant(c.field.Zero()),
	}
	if s.Degree() == -1 {
		res.Verified = true
		return res, nil
	}

	sigma, omega, steps, err := c.euclid(s)
	if err != nil {
		return nil, err
	}
	res.Locator, res.Evaluator, res.Steps = sigma, omega, steps

	pattern := make([]field.Element, c.params.Length)
	dsigma := sigma.Differentiate()

	// x runs through a^0, a^-1, a^-2, ...
	x := c.a
	for e := range pattern {
		x = x.Mul(c.aInv)
		pattern[e] = c.field.Zero()
		if !sigma.Evaluate(x).IsZero() {
			continue
		}
		den := dsigma.Evaluate(x)
		if den.IsZero() {
			return nil, fmt.Errorf("%w: locator derivative vanishes at position %d", ErrDivisionByZero, e)
		}
		pattern[e] = pattern[e].Sub(omega.Evaluate(x).Div(den))
		res.Errors = append(res.Errors, ErrorValue{Position: e, Value: pattern[e]})
	}

	ep, err := poly.New(pattern)
	if err != nil {
		return nil, err
	}
	if res.Corrected, err = y.Sub(ep); err != nil {
		return nil, err
	}

	res.Exceeded = len(res.Errors) != sigma.Degree()
	check, err := c.syndrome(res.Corrected)
	if err != nil {
		return nil, err
	}
	res.Verified = check.IsZero()
	return res, nil
}

// euclid runs the extended Euclidean algorithm on x^(d-1) and s until the
// remainder degree drops to (d-1)/2 - 1 or below, and returns the locator
// t_k and evaluator r_k at that point.
func (c *Code) euclid(s Word) (Word, Word, []Step, error) {
	d := c.params.Distance
	stop := (d-1)/2 - 1

	rPrev, r := poly.Monomial(c.field.One(), d-1), s
	tPrev, t := poly.Constant(c.field.Zero()), poly.Constant(c.field.One())

	var steps []Step

	for {
		q, rem, err := rPrev.DivideBy(r)
		if err != nil {
			return Word{}, Word{}, nil, fmt.Errorf("euclid step %d: %w", len(steps)+1, err)
		}
		qt, err := q.Mul(t)
		if err != nil {
			return Word{}, Word{}, nil, err
		}
		tNext, err := tPrev.Sub(qt)
		if err != nil {
			return Word{}, Word{}, nil, err
		}

		rPrev, r = r, rem
		tPrev, t = t, tNext
		steps = append(steps, Step{Quotient: q, Remainder: r, Auxiliary: t})

		if r.Degree() <= stop {
			return t, r, steps, nil
		}
	}
}
