package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {

	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"Eval", []string{"--kind", "int", "eval", "--at", "2", "1,-1,-2"}, "0"},
		{"EvalFloat", []string{"eval", "--at", "0.5", "--", "4", "-2", "1"}, "1"},
		{"Derive", []string{"--kind", "int", "derive", "1", "2", "3"}, "2*x + 2"},
		{"DeriveConstant", []string{"--kind", "int", "derive", "7"}, "0"},
		{"Integrate", []string{"integrate", "--lower", "0", "--upper", "3", "1,0,0"}, "9"},
		{"IntegrateInt", []string{"-k", "int", "integrate", "--lower", "0", "--upper", "2", "1,-1,-2"}, "-4"},
		{"Add", []string{"--kind", "int", "add", "1 2 3", "7 3 2 1"}, "7*x^3 + 4*x^2 + 4*x + 4"},
		{"Mul", []string{"--kind", "int", "mul", "2,1", "1,-1"}, "2*x^2 + -1*x + -1"},
		{"MulComplex", []string{"--kind", "complex", "mul", "1,-1i", "1,1i"}, "(1+0i)*x^2 + (0+0i)*x + (1+0i)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestDigestCommand(t *testing.T) {
	a, err := executeCommand(t, "--kind", "int", "digest", "1,2,3")
	require.NoError(t, err)
	b, err := executeCommand(t, "--kind", "int", "digest", "1", "2", "3")
	require.NoError(t, err)
	c, err := executeCommand(t, "--kind", "int", "digest", "0,1,2,3")
	require.NoError(t, err)

	require.Len(t, a, 64)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--kind", "rational", "derive", "1"},
		{"--kind", "int", "derive", "1.5"},
		{"eval", "--at", "x", "1"},
		{"derive", ","},
		{"add", "1"},
	} {
		_, err := executeCommand(t, args...)
		require.Error(t, err, "%v", args)
	}
}

func TestParsePolynomial(t *testing.T) {
	p, err := parsePolynomial(parser[int64](parseInt), []string{"1, 2", "3"})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, p.Coefficients())

	_, err = parsePolynomial(parser[int64](parseInt), []string{" "})
	require.Error(t, err)
}
