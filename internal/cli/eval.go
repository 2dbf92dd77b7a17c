package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"soa/internal/table"
)

type evalOutput struct {
	Op     string    `json:"op"`
	Args   []string  `json:"args"`
	Values []float64 `json:"values"`
}

// NewEvalCommand applies an elementwise operation to columns of the table.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <column> [column]",
		Short: "Apply an elementwise operation to columns",
		Long:  "Apply an elementwise operation to columns. Operations: " + strings.Join(table.Ops(), ", ") + ".",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTable()
			if err != nil {
				return err
			}
			op, operands := args[0], args[1:]
			values, err := t.Eval(op, operands...)
			if err != nil {
				return err
			}
			opts.log.Debug().Str("op", op).Strs("args", operands).Int("rows", len(values)).Msg("evaluated")

			w := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeJSON(w, evalOutput{Op: op, Args: operands, Values: values})
			}
			fmt.Fprintf(w, "%s(%s): %s\n", op, strings.Join(operands, ", "), formatValues(values))
			return nil
		},
	}
}
