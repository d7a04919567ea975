package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <puzzle>",
		Short: "Check a puzzle for row, column, and box conflicts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, conflicts, err := newService().Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "invalid: %d conflicting cells\n", len(conflicts))
			for _, cc := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "  r%dc%d\n", cc.Row+1, cc.Col+1)
			}
			return nil
		},
	}
}
