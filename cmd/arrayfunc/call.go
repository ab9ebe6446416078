package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/dispatch"
)

type callFlags struct {
	typeName   string
	cmp        string
	threshold  string
	operand    string
	maxLen     int
	noSIMD     bool
	mathErrors bool
	disOvfl    bool
}

func newCallCmd() *cobra.Command {
	var f callFlags

	cmd := &cobra.Command{
		Use:   "call NAME [flags] [--] values...",
		Short: "Run one operation over inline values",
		Long: "Run one operation over inline values and print the result.\n" +
			"Values are separate arguments or comma separated; put negative values after --.\n" +
			"Elementwise and binary operations print the updated buffer.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runCall(cmd, f, args[0], splitValues(args[1:]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.typeName, "type", "t", "float64", "element type name or code (int8, B, d, ...)")
	fl.StringVar(&f.cmp, "cmp", "==", "comparison operator for searches and filters")
	fl.StringVar(&f.threshold, "threshold", "", "threshold for searches and filters, value for count")
	fl.StringVar(&f.operand, "operand", "", "second operand of a binary operation: a number or comma separated values")
	fl.IntVar(&f.maxLen, dispatch.KeyMaxLen, 0, "process at most this many elements")
	fl.BoolVar(&f.noSIMD, dispatch.KeyNoSIMD, false, "force the scalar path")
	fl.BoolVar(&f.mathErrors, dispatch.KeyMathErrors, false, "disable arithmetic error checks")
	fl.BoolVar(&f.disOvfl, dispatch.KeyDisOvfl, false, "disable overflow checks for reductions")
	return cmd
}

// keywords returns the keyword arguments the user set explicitly, so that
// dispatch rejects the ones the operation does not take.
func (f callFlags) keywords(cmd *cobra.Command) map[string]any {
	kw := map[string]any{}
	fl := cmd.Flags()
	if fl.Changed(dispatch.KeyMaxLen) {
		kw[dispatch.KeyMaxLen] = f.maxLen
	}
	if fl.Changed(dispatch.KeyNoSIMD) {
		kw[dispatch.KeyNoSIMD] = f.noSIMD
	}
	if fl.Changed(dispatch.KeyMathErrors) {
		kw[dispatch.KeyMathErrors] = f.mathErrors
	}
	if fl.Changed(dispatch.KeyDisOvfl) {
		kw[dispatch.KeyDisOvfl] = f.disOvfl
	}
	return kw
}

func runCall(cmd *cobra.Command, f callFlags, name string, values []string) (string, error) {
	d, ok := dispatch.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q (see arrayfunc list)", dispatch.ErrUnknownOperation, name)
	}
	dt, err := array.ParseDataType(f.typeName)
	if err != nil {
		return "", err
	}
	buf, err := parseBuffer(dt, values)
	if err != nil {
		return "", err
	}
	kw := f.keywords(cmd)

	threshold := func() (array.Scalar, error) {
		if f.threshold == "" {
			return array.Scalar{}, errors.New("--threshold is required for " + name)
		}
		return parseNumber(dt, f.threshold)
	}

	switch d.Shape {
	case dispatch.ShapeReduction:
		return callResult(dispatch.Call(name, []any{buf}, kw))

	case dispatch.ShapeCount:
		v, err := threshold()
		if err != nil {
			return "", err
		}
		return callResult(dispatch.Call(name, []any{buf, v}, kw))

	case dispatch.ShapeSearch:
		v, err := threshold()
		if err != nil {
			return "", err
		}
		return callResult(dispatch.Call(name, []any{f.cmp, buf, v}, kw))

	case dispatch.ShapeFilter, dispatch.ShapeIndex:
		v, err := threshold()
		if err != nil {
			return "", err
		}
		outType := dt
		if d.Shape == dispatch.ShapeIndex {
			outType = array.TypeInt64
		}
		out, err := array.New(outType, buf.Len())
		if err != nil {
			return "", err
		}
		res, err := dispatch.Call(name, []any{f.cmp, buf, out, v}, kw)
		if err != nil {
			return "", err
		}
		return formatBuffer(out, res.(int)), nil

	case dispatch.ShapeElementwise:
		if _, err := dispatch.Call(name, []any{buf}, kw); err != nil {
			return "", err
		}
		return formatBuffer(buf, buf.Len()), nil

	case dispatch.ShapeBinary:
		operand, err := parseOperand(dt, f.operand)
		if err != nil {
			return "", err
		}
		if _, err := dispatch.Call(name, []any{buf, operand}, kw); err != nil {
			return "", err
		}
		return formatBuffer(buf, buf.Len()), nil

	default:
		return "", fmt.Errorf("operation %q has unsupported shape %v", name, d.Shape)
	}
}

func parseOperand(dt array.DataType, s string) (any, error) {
	switch {
	case s == "":
		return nil, errors.New("--operand is required for binary operations")
	case strings.Contains(s, ","):
		return parseBuffer(dt, splitValues([]string{s}))
	default:
		return parseNumber(dt, s)
	}
}

func callResult(res any, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return fmt.Sprint(res), nil
}
