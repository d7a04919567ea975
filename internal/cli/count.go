package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ddabb/sudoku-mcp/internal/usecase"
)

func newCountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <puzzle>",
		Short: "Count a puzzle's solutions up to a bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxCount, err := cmd.Flags().GetInt("max")
			if err != nil {
				return err
			}
			n, err := newService().CountSolutions(cmd.Context(), args[0], maxCount)
			if err != nil {
				return err
			}
			if n >= maxCount {
				fmt.Fprintf(cmd.OutOrStdout(), "%d or more\n", n)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().Int("max", usecase.MaxReportedSolutions, "stop counting once this many solutions are found")
	return cmd
}
