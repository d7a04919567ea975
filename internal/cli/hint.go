package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint <puzzle>",
		Short: "Reveal solved digits for a few empty cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			res, err := newService().Hint(cmd.Context(), args[0], count)
			if err != nil {
				return err
			}
			if res.Complete {
				fmt.Fprintln(cmd.OutOrStdout(), "already complete")
				return nil
			}
			for _, rv := range res.Reveals {
				fmt.Fprintf(cmd.OutOrStdout(), "r%dc%d = %d\n", rv.Row, rv.Col, rv.Digit)
			}
			return printBoard(cmd, res.Puzzle)
		},
	}
	cmd.Flags().Int("count", 1, "number of cells to reveal")
	return cmd
}
