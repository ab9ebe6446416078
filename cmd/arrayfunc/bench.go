package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/testutil"
	"github.com/cwbudde/algo-arrayfunc/ops"
)

var benchFuncs = []string{"asum", "amax", "findindex", "neg", "add", "mul"}

type benchCase struct {
	naive func() float64 // returns the reduction so it is not optimised away
	run   func(o ops.Options) error
}

type benchConfig struct {
	size   int
	repeat int
	jobs   int
	output string
	funcs  []string
	types  []string
}

type benchRow struct {
	fn     string
	dt     array.DataType
	lanes  int
	naive  time.Duration
	vector time.Duration
	scalar time.Duration
	err    error
}

func newBenchCmd() *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare naive loops with the vector and scalar paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := runBench(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if cfg.output == "" {
				return writeBench(cmd.OutOrStdout(), cfg, rows)
			}
			f, err := os.Create(cfg.output)
			if err != nil {
				return err
			}
			if err := writeBench(f, cfg, rows); err != nil {
				_ = f.Close()
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", cfg.output)
			return f.Close()
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&cfg.size, "size", 100_000, "elements per buffer")
	fl.IntVar(&cfg.repeat, "repeat", 5, "timed repetitions, the fastest is reported")
	fl.IntVar(&cfg.jobs, "jobs", 1, "benchmarks run concurrently")
	fl.StringVarP(&cfg.output, "output", "o", "", "write the table to this file (e.g. benchfuncs.txt) instead of stdout")
	fl.StringSliceVar(&cfg.funcs, "funcs", benchFuncs, "operations to benchmark")
	fl.StringSliceVar(&cfg.types, "types", lo.Map(array.Types(), func(dt array.DataType, _ int) string { return dt.String() }), "element types")
	return cmd
}

func runBench(ctx context.Context, cfg benchConfig) ([]benchRow, error) {
	if cfg.size <= 0 || cfg.repeat <= 0 || cfg.jobs <= 0 {
		return nil, fmt.Errorf("size, repeat and jobs must be positive")
	}
	for _, fn := range cfg.funcs {
		if !slices.Contains(benchFuncs, fn) {
			return nil, fmt.Errorf("cannot benchmark %q (want one of %s)", fn, strings.Join(benchFuncs, ", "))
		}
	}
	types := make([]array.DataType, 0, len(cfg.types))
	for _, name := range cfg.types {
		dt, err := array.ParseDataType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, dt)
	}

	rows := make([]benchRow, 0, len(cfg.funcs)*len(types))
	for _, fn := range cfg.funcs {
		for _, dt := range types {
			rows = append(rows, benchRow{fn: fn, dt: dt, lanes: ops.Lanes(dt, false)})
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := &rows[i]
			c := benchCasesFor(row.dt, cfg.size)[row.fn]

			// Unsupported combinations such as neg on unsigned types are
			// reported in the table rather than aborting the run.
			if row.err = c.run(ops.Options{}); row.err != nil {
				return nil
			}
			inner := max(1, (1<<20)/cfg.size)
			row.naive = measure(cfg.repeat, inner, func() error { _ = c.naive(); return nil })
			row.vector = measure(cfg.repeat, inner, func() error { return c.run(ops.Options{}) })
			row.scalar = measure(cfg.repeat, inner, func() error { return c.run(ops.Options{NoSIMD: true}) })
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// measure returns the fastest per-call time over repeat rounds of inner calls.
func measure(repeat, inner int, f func() error) time.Duration {
	best := time.Duration(-1)
	for range repeat {
		start := time.Now()
		for range inner {
			_ = f()
		}
		if d := time.Since(start) / time.Duration(inner); best < 0 || d < best {
			best = d
		}
	}
	return best
}

func writeBench(w io.Writer, cfg benchConfig, rows []benchRow) error {
	impl := ops.Active()
	fmt.Fprintf(w, "implementation: %s (%s), size %d, best of %d\n\n", impl.Name, impl.Level, cfg.size, cfg.repeat)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Function\tType\tLanes\tNaive\tVector\tScalar\tNaive/Vector\tScalar/Vector\n")
	fmt.Fprintf(tw, "--------\t----\t-----\t-----\t------\t------\t------------\t-------------\n")
	for _, r := range rows {
		if r.err != nil {
			fmt.Fprintf(tw, "%s\t%s\t%d\t-\t-\t-\t-\t- (%v)\n", r.fn, r.dt, r.lanes, r.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%v\t%v\t%.2f\t%.2f\n",
			r.fn, r.dt, r.lanes, r.naive, r.vector, r.scalar,
			ratio(r.naive, r.vector), ratio(r.scalar, r.vector))
	}
	return tw.Flush()
}

func ratio(a, b time.Duration) float64 {
	if b <= 0 {
		return 0
	}
	return float64(a) / float64(b)
}

func benchCasesFor(dt array.DataType, n int) map[string]benchCase {
	switch dt {
	case array.TypeInt8:
		return benchCases[int8](n)
	case array.TypeInt16:
		return benchCases[int16](n)
	case array.TypeInt32:
		return benchCases[int32](n)
	case array.TypeInt64:
		return benchCases[int64](n)
	case array.TypeUint8:
		return benchCases[uint8](n)
	case array.TypeUint16:
		return benchCases[uint16](n)
	case array.TypeUint32:
		return benchCases[uint32](n)
	case array.TypeUint64:
		return benchCases[uint64](n)
	case array.TypeFloat32:
		return benchCases[float32](n)
	default:
		return benchCases[float64](n)
	}
}

// benchCases builds the benchmark closures over data small enough that no
// operation overflows int8.
func benchCases[T array.Element](n int) map[string]benchCase {
	x := array.Array[T](testutil.Small[T](1, n, 10))
	y := array.Array[T](testutil.Small[T](2, n, 10))
	out := make(array.Array[T], n)
	limit := T(100)
	threshold := array.ScalarOf(limit)

	return map[string]benchCase{
		"asum": {
			naive: func() float64 {
				var s T
				for _, v := range x {
					s += v
				}
				return float64(s)
			},
			run: func(o ops.Options) error { _, err := ops.ASum(x, o); return err },
		},
		"amax": {
			naive: func() float64 {
				m := x[0]
				for _, v := range x[1:] {
					if v > m {
						m = v
					}
				}
				return float64(m)
			},
			run: func(o ops.Options) error { _, err := ops.AMax(x, o); return err },
		},
		"findindex": {
			naive: func() float64 {
				idx := -1
				for i, v := range x {
					if v > limit {
						idx = i
						break
					}
				}
				return float64(idx)
			},
			run: func(o ops.Options) error { _, err := ops.FindIndex(ops.Gt, x, threshold, o); return err },
		},
		"neg": {
			naive: func() float64 {
				for i, v := range x {
					out[i] = -v
				}
				return 0
			},
			run: func(o ops.Options) error { return ops.Unary(ops.Neg, x, out, o) },
		},
		"add": {
			naive: func() float64 {
				for i := range x {
					out[i] = x[i] + y[i]
				}
				return 0
			},
			run: func(o ops.Options) error { return ops.Binary(ops.Add, x, y, out, o) },
		},
		"mul": {
			naive: func() float64 {
				for i := range x {
					out[i] = x[i] * y[i]
				}
				return 0
			},
			run: func(o ops.Options) error { return ops.Binary(ops.Mul, x, y, out, o) },
		},
	}
}
