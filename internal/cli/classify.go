package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <puzzle>",
		Short: "Grade a puzzle by its empty-cell count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newService().Classify(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d empty cells)\n", res.Difficulty, res.EmptyCells)
			return nil
		},
	}
}
