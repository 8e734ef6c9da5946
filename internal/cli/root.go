// Package cli implements the spaces command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hupe1980/spaces"
	"github.com/hupe1980/spaces/codec"
)

const longDesc = `spaces inspects and samples bounded vector spaces (boxes).

A space is given either as a JSON definition file (--space, "-" reads stdin):

  {"low": -1, "high": 1, "shape": [3]}
  {"low": [0, -5], "high": [1, 5], "dtype": "float64"}

or inline with --low, --high, --shape and --dtype.`

type rootOptions struct {
	spacePath string
	low       float64
	high      float64
	shape     []int
	dtype     string
	codecName string
	indent    string
	logLevel  string
}

// NewRootCommand builds the command tree. A fresh tree is built per run so
// flag values never leak between invocations.
func NewRootCommand() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "spaces",
		Short:         "Inspect and sample bounded vector spaces",
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	o.addFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newDescribeCommand(o),
		newSampleCommand(o),
		newContainsCommand(o),
		newViolationsCommand(o),
	)
	return rootCmd
}

func (o *rootOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.spacePath, "space", "s", "", "space definition file (- for stdin)")
	fs.Float64Var(&o.low, "low", 0, "lower bound of every coordinate (with --shape)")
	fs.Float64Var(&o.high, "high", 1, "upper bound of every coordinate (with --shape)")
	fs.IntSliceVar(&o.shape, "shape", nil, "shape of the space, e.g. 3,4")
	fs.StringVar(&o.dtype, "dtype", "", "element type (default float32)")
	fs.StringVar(&o.codecName, "codec", "go-json", "codec for JSON input and output (json, go-json)")
	fs.StringVar(&o.indent, "indent", "", "indent JSON output with this string")
	fs.StringVar(&o.logLevel, "log-level", "", "enable logging to stderr at this level (debug, info, warn, error)")
}

// Execute runs the tool with os.Args and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "spaces: %v\n", err)
		return 1
	}
	return 0
}

func (o *rootOptions) resolveCodec() (codec.Codec, error) {
	c, ok := codec.ByName(o.codecName)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q (want one of %v)", o.codecName, codec.Names())
	}
	return codec.WithIndent(c, o.indent), nil
}

func (o *rootOptions) logger(w io.Writer) (*spaces.Logger, error) {
	if o.logLevel == "" {
		return spaces.NoopLogger(), nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return spaces.NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func (o *rootOptions) definition(cmd *cobra.Command) (spaces.Definition, error) {
	if o.spacePath != "" {
		c, err := o.resolveCodec()
		if err != nil {
			return spaces.Definition{}, err
		}
		data, err := readInput(cmd, o.spacePath)
		if err != nil {
			return spaces.Definition{}, err
		}
		return spaces.ParseDefinition(c, data)
	}
	if !cmd.Flags().Changed("shape") {
		return spaces.Definition{}, errors.New("either --space or --shape is required")
	}
	return spaces.Definition{
		Low:   o.low,
		High:  o.high,
		Shape: o.shape,
		DType: o.dtype,
	}, nil
}

// space builds the space selected by the flags.
func (o *rootOptions) space(cmd *cobra.Command, optFns ...spaces.Option) (spaces.Space, error) {
	d, err := o.definition(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := o.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return d.Build(append([]spaces.Option{spaces.WithLogger(logger)}, optFns...)...)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read space definition: %w", err)
	}
	return data, nil
}
