package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/dispatch"
	"github.com/cwbudde/algo-arrayfunc/internal/testutil"
	"github.com/cwbudde/algo-arrayfunc/ops"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(stdout.String()), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range dispatch.Names() {
		assert.Contains(t, out, name)
	}

	out, err = execute(t, "list", "--shape", "binary")
	require.NoError(t, err)
	assert.Contains(t, out, "truediv")
	assert.NotContains(t, out, "asum")

	_, err = execute(t, "list", "--shape", "bogus")
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "active:  "+ops.Active().Name)
	for _, dt := range array.Types() {
		assert.Contains(t, out, dt.String())
	}
	out, err = execute(t, "info", "--impl", "generic")
	require.NoError(t, err)
	assert.Contains(t, out, "generic: level")
	assert.Contains(t, out, "float64")

	_, err = execute(t, "info", "--impl", "bogus")
	require.Error(t, err)
}

func TestCall(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"sum", []string{"asum", "--type", "int8", "--", "1", "2", "3", "-128"}, "-122"},
		{"sum comma", []string{"asum", "-t", "h", "1,2,3"}, "6"},
		{"max", []string{"amax", "--type", "float32", "--maxlen", "2", "1", "5", "9"}, "5"},
		{"count", []string{"count", "--threshold", "2", "2", "1", "2"}, "2"},
		{"findindex", []string{"findindex", "--cmp", ">", "--threshold", "2", "1", "2", "3"}, "2"},
		{"aall", []string{"aall", "--cmp", "lt", "--threshold", "4", "1", "2", "3"}, "true"},
		{"afilter", []string{"afilter", "--type", "int16", "--cmp", "lt", "--threshold", "3", "1", "5", "2", "7"}, "[1 2]"},
		{"findindices", []string{"findindices", "--type", "uint32", "--threshold", "2", "2", "1", "2"}, "[0 2]"},
		{"neg maxlen", []string{"neg", "--type", "int8", "--maxlen", "2", "1", "2", "3"}, "[-1 -2 3]"},
		{"add wrap", []string{"add", "--type", "uint8", "--operand", "250", "--matherrors", "10", "20"}, "[4 14]"},
		{"mul vector", []string{"mul", "--type", "int32", "--operand", "2,3", "4", "5"}, "[8 15]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"call"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	out, err := execute(t, "call", "findindexset", "--cmp", "ge", "--threshold", "2", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "1,2")
}

func TestCallErrors(t *testing.T) {
	_, err := execute(t, "call", "nosuch", "1")
	require.ErrorIs(t, err, dispatch.ErrUnknownOperation)

	_, err = execute(t, "call", "add", "--type", "uint8", "--operand", "250", "10")
	require.ErrorIs(t, err, ops.ErrOverflow)

	_, err = execute(t, "call", "count", "--nosimd", "--threshold", "1", "1")
	require.ErrorIs(t, err, ops.ErrType)

	_, err = execute(t, "call", "asum", "--type", "int8", "200")
	require.ErrorIs(t, err, array.ErrRange)

	_, err = execute(t, "call", "asum", "--type", "int8", "1.5")
	require.Error(t, err)

	_, err = execute(t, "call", "findindex", "1")
	require.ErrorContains(t, err, "--threshold")

	_, err = execute(t, "call", "add", "1")
	require.ErrorContains(t, err, "--operand")

	_, err = execute(t, "call", "asum", "--type", "complex", "1")
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchfuncs.txt")
	_, err := execute(t, "bench", "--size", "64", "--repeat", "1", "--jobs", "2",
		"--funcs", "asum,add", "--types", "int8,float64", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	table := string(data)
	assert.Contains(t, table, "Function")
	assert.Equal(t, 4, strings.Count(table, "\nasum ")+strings.Count(table, "\nadd "))

	_, err = execute(t, "bench", "--funcs", "sqrt")
	require.Error(t, err)
	_, err = execute(t, "bench", "--size", "0")
	require.Error(t, err)
}

func TestBenchNaiveMatchesOps(t *testing.T) {
	cases := benchCases[int16](37)
	for name, c := range cases {
		require.NoError(t, c.run(ops.Options{}), name)
		require.NoError(t, c.run(ops.Options{NoSIMD: true}), name)
	}

	x := array.Array[int16](testutil.Small[int16](1, 37, 10))
	sum, err := ops.ASum(x, ops.Options{})
	require.NoError(t, err)
	assert.Equal(t, float64(sum.Int64()), cases["asum"].naive())

	hi, err := ops.AMax(x, ops.Options{})
	require.NoError(t, err)
	assert.Equal(t, hi.Float64(), cases["amax"].naive())
	assert.Equal(t, -1.0, cases["findindex"].naive())
}
