package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"soa/internal/table"
)

type describeOutput struct {
	Table   string          `json:"table"`
	Rows    int             `json:"rows"`
	Columns []table.Summary `json:"columns"`
}

// NewDescribeCommand prints row count and per-column sum and max.
func NewDescribeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Summarize the columns of a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTable()
			if err != nil {
				return err
			}
			out := describeOutput{Table: t.Name, Rows: t.Rows(), Columns: t.Summaries()}

			w := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeJSON(w, out)
			}
			fmt.Fprintf(w, "%s: %d rows\n", out.Table, out.Rows)
			for _, s := range out.Columns {
				fmt.Fprintf(w, "%s\tsum=%g\tmax=%g\n", s.Name, s.Sum, s.Max)
			}
			return nil
		},
	}
}
