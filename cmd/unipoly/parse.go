package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tuneinsight/unipoly/polynomial"
)

type parser[T polynomial.Number] func(string) (T, error)

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseComplex(s string) (complex128, error) {
	return strconv.ParseComplex(s, 128)
}

// parsePolynomial reads the coefficients, highest degree first, from args.
// Each argument may hold several coefficients separated by commas or spaces.
func parsePolynomial[T polynomial.Number](parse parser[T], args []string) (p polynomial.Polynomial[T], err error) {

	var coeffs []T

	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, isSeparator) {
			c, err := parse(field)
			if err != nil {
				return p, fmt.Errorf("invalid coefficient %q: %w", field, err)
			}
			coeffs = append(coeffs, c)
		}
	}

	if len(coeffs) == 0 {
		return p, errors.New("no coefficient given")
	}

	return polynomial.NewPolynomial(coeffs...), nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
