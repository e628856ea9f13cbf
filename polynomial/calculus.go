package polynomial

// Evaluate returns P(x), computed with Horner's method in exactly
// Degree() multiply-add steps.
func (p Polynomial[T]) Evaluate(x T) (y T) {
	values := p.values()
	y = values[0]
	for _, c := range values[1:] {
		y = y*x + c
	}
	return
}

// Derive returns a new polynomial equal to dP/dx. The derivative of a
// polynomial of degree n > 0 has degree n-1: the constant term is dropped.
// The derivative of a polynomial of degree 0 is the zero polynomial.
func (p Polynomial[T]) Derive() Polynomial[T] {

	values := p.values()
	degree := len(values) - 1

	if degree == 0 {
		return NewPolynomial[T]()
	}

	coeffs := make([]T, degree)

	// Powers are accumulated in T, as integers cannot be converted to every
	// member of Number at runtime.
	var one, power T = 1, 0
	for i := degree - 1; i >= 0; i-- {
		power += one
		coeffs[i] = values[i] * power
	}

	return Polynomial[T]{coeffs: coeffs}
}

// Integral returns the definite integral of P between lower and upper,
// that is Q(upper) - Q(lower) where Q is the antiderivative of P with a
// zero constant term.
//
// Each term c*x^k contributes c/(k+1) * x^(k+1), the division being the one
// of T: integer coefficients are truncated term by term.
func (p Polynomial[T]) Integral(lower, upper T) T {
	return p.antiderivativeAt(upper) - p.antiderivativeAt(lower)
}

func (p Polynomial[T]) antiderivativeAt(x T) (y T) {
	values := p.values()

	var one T = 1
	exponent, power := one, x
	for i := len(values) - 1; i >= 0; i-- {
		y += values[i] / exponent * power
		exponent += one
		power *= x
	}

	return
}
