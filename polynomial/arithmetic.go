package polynomial

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

// Equal returns true if p and other store the same coefficients, position by
// position. Polynomials that differ only by leading zeros are not equal.
func (p Polynomial[T]) Equal(other Polynomial[T]) bool {
	return cmp.Equal(p.values(), other.values())
}

// Add returns a new polynomial equal to p + other. The operands are aligned
// on their constant terms and the result has the length of the longest one.
func (p Polynomial[T]) Add(other Polynomial[T]) Polynomial[T] {

	a, b := p.values(), other.values()
	if len(b) > len(a) {
		a, b = b, a
	}

	coeffs := slices.Clone(a)

	offset := len(a) - len(b)
	for j, c := range b {
		coeffs[offset+j] += c
	}

	return Polynomial[T]{coeffs: coeffs}
}

// Mul returns a new polynomial equal to p * other, of length
// len(p) + len(other) - 1.
func (p Polynomial[T]) Mul(other Polynomial[T]) Polynomial[T] {

	a, b := p.values(), other.values()

	coeffs := make([]T, len(a)+len(b)-1)

	for i := range a {
		for j := range b {
			coeffs[i+j] += a[i] * b[j]
		}
	}

	return Polynomial[T]{coeffs: coeffs}
}
