package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/spaces"
	"github.com/hupe1980/spaces/ndarray"
)

type definer interface {
	Definition() spaces.Definition
}

func newDescribeCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the shape, element type and bounds of a space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sp, err := o.space(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sp)
			fmt.Fprintf(out, "dtype: %s\n", sp.DType())

			d, ok := sp.(definer)
			if !ok {
				return nil
			}
			def := d.Definition()
			for _, b := range []struct {
				name string
				v    any
			}{{"low", def.Low}, {"high", def.High}} {
				a, err := ndarray.FromNested(b.v)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", b.name, a)
			}
			return nil
		},
	}
}
