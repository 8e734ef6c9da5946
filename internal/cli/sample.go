package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/spaces"
	"github.com/hupe1980/spaces/ndarray"
	"github.com/hupe1980/spaces/prng"
)

func newSampleCommand(o *rootOptions) *cobra.Command {
	var (
		n    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw uniform samples and print them in jsonable form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			prng.Seed(seed)

			sp, err := o.space(cmd)
			if err != nil {
				return err
			}
			c, err := o.resolveCodec()
			if err != nil {
				return err
			}

			samples := make([]ndarray.Array[float64], 0, max(n, 0))
			for i := 0; i < n; i++ {
				x, err := sp.Sample()
				if err != nil {
					return err
				}
				samples = append(samples, x)
			}

			data, err := spaces.EncodeSamples(c, sp, samples)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "n", "n", 1, "number of samples")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the random source (default: current time)")
	return cmd
}
