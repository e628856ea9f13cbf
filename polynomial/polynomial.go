// Package polynomial implements a generic univariate polynomial with integer,
// floating-point or complex coefficients.
//
// Coefficients are stored highest-degree first: NewPolynomial(1, 2, 3)
// represents 1*x^2 + 2*x + 3. No operation ever trims leading zeros, so
// the degree of a polynomial is always the number of stored coefficients
// minus one, and equality is sensitive to that length.
package polynomial

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	// ErrIndexOutOfRange is returned when accessing a coefficient outside of [0, Degree()].
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Polynomial is a univariate polynomial with coefficients of type T.
//
// The zero value is the zero polynomial (a single coefficient equal to 0).
// Assigning a Polynomial shares its coefficients, use CopyNew to obtain an
// independent copy.
type Polynomial[T Number] struct {
	coeffs []T
}

// NewPolynomial creates a new polynomial from the given coefficients, the
// first one being the coefficient of the highest degree term and the last
// one the constant term.
// Called without argument, it returns the zero polynomial.
func NewPolynomial[T Number](coeffs ...T) Polynomial[T] {
	if len(coeffs) == 0 {
		return Polynomial[T]{coeffs: []T{0}}
	}
	return Polynomial[T]{coeffs: slices.Clone(coeffs)}
}

// values returns the stored coefficients, or the coefficients of the
// zero polynomial if p is the zero value.
func (p Polynomial[T]) values() []T {
	if len(p.coeffs) == 0 {
		return []T{0}
	}
	return p.coeffs
}

func (p *Polynomial[T]) materialize() {
	if len(p.coeffs) == 0 {
		p.coeffs = []T{0}
	}
}

// Degree returns the degree of the polynomial, that is, the number of
// stored coefficients minus one.
func (p Polynomial[T]) Degree() int {
	return len(p.values()) - 1
}

// ValueAtDegree returns the coefficient stored at position i, counted from
// the leading term: position 0 is the coefficient of x^Degree() and position
// Degree() is the constant term.
// Use Coefficient to index by power of x.
func (p Polynomial[T]) ValueAtDegree(i int) (c T, err error) {
	values := p.values()
	if i < 0 || i >= len(values) {
		return c, fmt.Errorf("cannot ValueAtDegree: position %d is not in [0, %d]: %w", i, len(values)-1, ErrIndexOutOfRange)
	}
	return values[i], nil
}

// Coefficient returns the coefficient of the term x^d.
func (p Polynomial[T]) Coefficient(d int) (c T, err error) {
	values := p.values()
	if d < 0 || d >= len(values) {
		return c, fmt.Errorf("cannot Coefficient: degree %d is not in [0, %d]: %w", d, len(values)-1, ErrIndexOutOfRange)
	}
	return values[len(values)-1-d], nil
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p Polynomial[T]) Coefficients() []T {
	return slices.Clone(p.values())
}

// CopyNew returns a deep copy of the polynomial.
func (p Polynomial[T]) CopyNew() Polynomial[T] {
	return Polynomial[T]{coeffs: slices.Clone(p.values())}
}

// Scale multiplies every coefficient of p by scalar, in place.
func (p *Polynomial[T]) Scale(scalar T) {
	p.materialize()
	for i := range p.coeffs {
		p.coeffs[i] *= scalar
	}
}

// AddTerm inserts the given coefficients as new leading terms, increasing
// the degree by len(coeffs). After the call, coeffs[0] is the coefficient
// of the highest degree term, followed by the remaining coeffs in order and
// then by the previous coefficients of p.
func (p *Polynomial[T]) AddTerm(coeffs ...T) {
	p.materialize()
	p.coeffs = slices.Insert(p.coeffs, 0, coeffs...)
}

// String returns a human readable representation of the polynomial, for
// example "1*x^2 + 2*x + 3". Zero coefficients are printed as well.
func (p Polynomial[T]) String() string {
	values := p.values()
	degree := len(values) - 1

	var sb strings.Builder
	for i, c := range values {
		if i != 0 {
			sb.WriteString(" + ")
		}
		switch power := degree - i; power {
		case 0:
			fmt.Fprintf(&sb, "%v", c)
		case 1:
			fmt.Fprintf(&sb, "%v*x", c)
		default:
			fmt.Fprintf(&sb, "%v*x^%d", c, power)
		}
	}

	return sb.String()
}
