package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-arrayfunc/array"
	"github.com/cwbudde/algo-arrayfunc/internal/cpu"
	"github.com/cwbudde/algo-arrayfunc/ops"
)

func newInfoCmd() *cobra.Command {
	var implName string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show CPU features and the selected kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if implName != "" {
				impl, supported, ok := ops.LookupImplementation(implName)
				if !ok {
					return fmt.Errorf("unknown implementation %q", implName)
				}
				fmt.Fprintf(out, "%s: level %s, priority %d, width %d, supported %v\n\n",
					impl.Name, impl.Level, impl.Priority, impl.Width, supported)
				return printLanes(out, impl)
			}

			f := cpu.DetectFeatures()
			fmt.Fprintf(out, "arch:    %s\n", f.Architecture)
			fmt.Fprintf(out, "best:    %s\n", cpu.Best(f))
			fmt.Fprintf(out, "generic: %v (%s)\n", f.ForceGeneric, cpu.NoSIMDEnv)
			active := ops.Active()
			fmt.Fprintf(out, "active:  %s\n\n", active.Name)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Implementation\tLevel\tPriority\tWidth\tSupported\n")
			impls, supported := ops.Implementations()
			for i, impl := range impls {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%v\n", impl.Name, impl.Level, impl.Priority, impl.Width, supported[i])
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return printLanes(out, active)
		},
	}
	cmd.Flags().StringVar(&implName, "impl", "", "describe one implementation by name (generic, avx2, neon, ...)")
	return cmd
}

func printLanes(w io.Writer, impl ops.Implementation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Type\tCode\tSize\tLanes\n")
	for _, dt := range array.Types() {
		fmt.Fprintf(tw, "%s\t%c\t%d\t%d\n", dt, dt.Code(), dt.Size(), impl.Lanes(dt))
	}
	return tw.Flush()
}
