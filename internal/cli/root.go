// Package cli implements the soa command line tool.
package cli

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"soa/internal/table"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Table   string

	log zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the soa CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "soa",
		Short:         "Aligned column computations over struct-of-arrays tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			opts.log = newLogger(cmd.ErrOrStderr(), opts.Verbose, opts.Format)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Table, "table", "t", "", "path to the YAML table")
	_ = cmd.MarkPersistentFlagRequired("table")

	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewStepCommand(opts))

	return cmd
}

func (o *RootOptions) loadTable() (*table.Table, error) {
	t, err := table.LoadFile(o.Table)
	if err != nil {
		o.log.Error().Err(err).Str("path", o.Table).Msg("load table")
		return nil, err
	}
	o.log.Debug().
		Str("table", t.Name).
		Int("rows", t.Rows()).
		Strs("columns", t.Names()).
		Msg("table loaded")
	return t, nil
}
