/*
Package unipoly is a small library for arithmetic on univariate polynomials.
The polynomial package provides a generic Polynomial type over integer,
floating-point and complex coefficients, supporting evaluation, scaling,
term insertion, derivation, definite integration, addition and
multiplication, as well as binary serialization.
*/
package unipoly
