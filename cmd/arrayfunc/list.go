package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-arrayfunc/dispatch"
)

func newListCmd() *cobra.Command {
	var shapeNames []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shapes, err := parseShapes(shapeNames)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Name\tShape\tKeywords\tArguments\n")
			fmt.Fprintf(tw, "----\t-----\t--------\t---------\n")
			for _, d := range dispatch.Descriptors(shapes...) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					d.Name, d.Shape, strings.Join(d.Keywords(), ","), d.Shape.Usage())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&shapeNames, "shape", nil, "only list operations of these shapes")
	return cmd
}

func allShapes() []dispatch.Shape {
	return []dispatch.Shape{
		dispatch.ShapeReduction, dispatch.ShapeCount, dispatch.ShapeElementwise,
		dispatch.ShapeFilter, dispatch.ShapeSearch, dispatch.ShapeIndex, dispatch.ShapeBinary,
	}
}

func parseShapes(names []string) ([]dispatch.Shape, error) {
	byName := lo.KeyBy(allShapes(), dispatch.Shape.String)
	shapes := make([]dispatch.Shape, 0, len(names))
	for _, n := range names {
		s, ok := byName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			known := lo.Keys(byName)
			slices.Sort(known)
			return nil, fmt.Errorf("unknown shape %q (want one of %s)", n, strings.Join(known, ", "))
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}
