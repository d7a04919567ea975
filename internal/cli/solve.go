package cli

import (
	"github.com/spf13/cobra"

	"github.com/ddabb/sudoku-mcp/internal/usecase"
)

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <puzzle>",
		Short: "Solve an 81-character puzzle string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newService().Solve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if res.Solutions > 1 {
				n := "3 or more"
				if res.Solutions < usecase.MaxReportedSolutions {
					n = "2"
				}
				log.WithField("solutions", n).Warn("puzzle is ambiguous, reference solution shown")
			}
			return printBoard(cmd, res.Solution)
		},
	}
}
