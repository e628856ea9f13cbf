package polynomial

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of types a Polynomial can take its coefficients from.
// Every member supports +, -, *, / and ==, and can be built from the
// untyped constants 0 and 1.
//
// Division follows the semantic of the underlying type: for integer
// coefficients it truncates toward zero.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
