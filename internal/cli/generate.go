package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ddabb/sudoku-mcp/internal/domain"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetInt("level")
			if err != nil {
				return err
			}
			res, err := newService().Generate(cmd.Context(), level)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"level":      res.Level,
				"removed":    res.Removed,
				"difficulty": res.Difficulty,
			}).Info("puzzle generated")
			return printBoard(cmd, res.Puzzle)
		},
	}
	cmd.Flags().Int("level", int(domain.DefaultLevel), "difficulty level 1 (easiest) to 5")
	return cmd
}
