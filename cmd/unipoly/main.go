// Command unipoly evaluates, derives, integrates, adds and multiplies
// univariate polynomials given on the command line.
//
// Coefficients are listed highest degree first, separated by spaces or
// commas. Use "--" before a list starting with a negative coefficient:
//
//	unipoly eval --at 2 1 -1 -2
//	unipoly integrate --lower 0 --upper 2 -- -1 0 4
//	unipoly --kind complex mul "1,-1i" "1,1i"
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
