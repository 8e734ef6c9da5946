package cli

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/spf13/cobra"

	"github.com/hupe1980/spaces/ndarray"
)

type violator interface {
	Violations(x ndarray.Array[float64]) (*roaring.Bitmap, error)
}

func newContainsCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <json-array>",
		Short: "Report whether a value lies inside the space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := o.space(cmd)
			if err != nil {
				return err
			}
			x, err := o.parseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sp.Contains(x))
			return nil
		},
	}
}

func newViolationsCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "violations <json-array>",
		Short: "Print the flat indices of coordinates outside the bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := o.space(cmd)
			if err != nil {
				return err
			}
			v, ok := sp.(violator)
			if !ok {
				return fmt.Errorf("%s does not report violations", sp)
			}
			x, err := o.parseValue(args[0])
			if err != nil {
				return err
			}
			bm, err := v.Violations(x)
			if err != nil {
				return err
			}
			c, err := o.resolveCodec()
			if err != nil {
				return err
			}
			data, err := c.Marshal(bm.ToArray())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func (o *rootOptions) parseValue(arg string) (ndarray.Array[float64], error) {
	c, err := o.resolveCodec()
	if err != nil {
		return ndarray.Array[float64]{}, err
	}
	var raw any
	if err := c.Unmarshal([]byte(arg), &raw); err != nil {
		return ndarray.Array[float64]{}, fmt.Errorf("parse value %q: %w", arg, err)
	}
	return ndarray.FromNested(raw)
}
