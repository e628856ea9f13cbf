package main

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/unipoly/polynomial"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval --at x coefficients...",
		Short: "evaluate a polynomial at a point.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  execute,
	}
	cmd.Flags().String("at", "0", "evaluation point")
	return cmd
}

func newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive coefficients...",
		Short: "print the derivative of a polynomial.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  execute,
	}
}

func newIntegrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate --lower a --upper b coefficients...",
		Short: "compute the definite integral of a polynomial.",
		Long: `Compute the definite integral of a polynomial between two bounds.
	 With integer coefficients, every term of the antiderivative is truncated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: execute,
	}
	cmd.Flags().String("lower", "0", "lower bound")
	cmd.Flags().String("upper", "1", "upper bound")
	return cmd
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add \"coefficients...\" \"coefficients...\"",
		Short: "add two polynomials.",
		Args:  cobra.ExactArgs(2),
		RunE:  execute,
	}
}

func newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul \"coefficients...\" \"coefficients...\"",
		Short: "multiply two polynomials.",
		Args:  cobra.ExactArgs(2),
		RunE:  execute,
	}
}

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest coefficients...",
		Short: "print the blake3 digest of the binary encoding of a polynomial.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  execute,
	}
}

// execute dispatches a sub-command on the coefficient kind selected with --kind.
func execute(cmd *cobra.Command, args []string) (err error) {

	var out string

	switch kind := GetString(cmd, "kind"); kind {
	case "int":
		out, err = run[int64](cmd, args, parseInt)
	case "float":
		out, err = run[float64](cmd, args, parseFloat)
	case "complex":
		out, err = run[complex128](cmd, args, parseComplex)
	default:
		return fmt.Errorf("unknown coefficient kind %q", kind)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}

func run[T polynomial.Number](cmd *cobra.Command, args []string, parse parser[T]) (string, error) {

	switch cmd.Name() {
	case "add", "mul":

		p, err := parsePolynomial(parse, args[:1])
		if err != nil {
			return "", err
		}

		q, err := parsePolynomial(parse, args[1:])
		if err != nil {
			return "", err
		}

		log.Debugf("%s (%s) (%s)", cmd.Name(), p, q)

		if cmd.Name() == "add" {
			return p.Add(q).String(), nil
		}

		return p.Mul(q).String(), nil
	}

	p, err := parsePolynomial(parse, args)
	if err != nil {
		return "", err
	}

	log.Debugf("%s %s (degree %d)", cmd.Name(), p, p.Degree())

	switch cmd.Name() {
	case "eval":
		x, err := parseFlag(cmd, "at", parse)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(p.Evaluate(x)), nil

	case "derive":
		return p.Derive().String(), nil

	case "integrate":
		lower, err := parseFlag(cmd, "lower", parse)
		if err != nil {
			return "", err
		}
		upper, err := parseFlag(cmd, "upper", parse)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(p.Integral(lower, upper)), nil

	case "digest":
		digest := p.Digest()
		return hex.EncodeToString(digest[:]), nil

	default:
		return "", fmt.Errorf("unknown command %q", cmd.Name())
	}
}

func parseFlag[T polynomial.Number](cmd *cobra.Command, flag string, parse parser[T]) (x T, err error) {
	if x, err = parse(GetString(cmd, flag)); err != nil {
		return x, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	log.Debugf("--%s=%v", flag, x)
	return
}
