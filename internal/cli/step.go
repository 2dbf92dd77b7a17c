package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"soa/internal/table"
)

type stepOutput struct {
	Table   string         `json:"table"`
	Steps   int            `json:"steps"`
	DT      float64        `json:"dt"`
	Columns []columnValues `json:"columns"`
}

// StepOptions holds the flags of the step command.
type StepOptions struct {
	Steps int
	DT    float64
	Out   string
}

// NewStepCommand integrates every position column by its velocity column.
func NewStepCommand(opts *RootOptions) *cobra.Command {
	stepOpts := &StepOptions{}

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance positions by velocity (x += vx*dt) in place",
		Long: "Advance positions by velocity in place. Every column named vN moves the\n" +
			"column named N; other columns are left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stepOpts.Steps < 0 {
				return fmt.Errorf("steps must not be negative, got %d", stepOpts.Steps)
			}
			t, err := opts.loadTable()
			if err != nil {
				return err
			}

			moved := t.Integrate(stepOpts.Steps, stepOpts.DT)
			if moved == 0 {
				opts.log.Warn().Str("table", t.Name).Msg("no velocity columns; nothing moved")
			}
			opts.log.Debug().Int("columns", moved).Int("steps", stepOpts.Steps).Float64("dt", stepOpts.DT).Msg("integrated")

			if stepOpts.Out != "" {
				if err := writeTable(stepOpts.Out, t); err != nil {
					return err
				}
				opts.log.Debug().Str("path", stepOpts.Out).Msg("table written")
			}

			out := stepOutput{Table: t.Name, Steps: stepOpts.Steps, DT: stepOpts.DT}
			for _, name := range t.Names() {
				c, _ := t.Column(name)
				out.Columns = append(out.Columns, columnValues{Name: name, Values: c.ToSlice()})
			}

			w := cmd.OutOrStdout()
			if opts.Format == "json" {
				return writeJSON(w, out)
			}
			fmt.Fprintf(w, "%s after %d steps (dt=%g)\n", out.Table, out.Steps, out.DT)
			writeColumnsText(w, out.Columns)
			return nil
		},
	}

	cmd.Flags().IntVar(&stepOpts.Steps, "steps", 1, "number of integration steps")
	cmd.Flags().Float64Var(&stepOpts.DT, "dt", 1, "time step")
	cmd.Flags().StringVarP(&stepOpts.Out, "out", "o", "", "write the updated table to this path")

	return cmd
}

func writeTable(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
