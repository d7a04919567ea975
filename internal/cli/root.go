// Package cli is the thin host process around the engine: one subcommand
// per named operation, configuration via flags and SUDOKU_* environment
// variables, results on stdout and diagnostics on stderr.
package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ddabb/sudoku-mcp/internal/generator"
	"github.com/ddabb/sudoku-mcp/internal/hint"
	"github.com/ddabb/sudoku-mcp/internal/render"
	"github.com/ddabb/sudoku-mcp/internal/solver"
	"github.com/ddabb/sudoku-mcp/internal/usecase"
	"github.com/ddabb/sudoku-mcp/internal/validator"
)

var log = logrus.New()

// prof holds the active CPU profile between pre- and post-run.
var prof interface{ Stop() }

// NewRootCommand builds the command tree and wires configuration.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Generate, solve, and inspect 9×9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(viper.GetString("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(lvl)
			if viper.GetBool("cpuprofile") {
				prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
				prof = nil
			}
		},
	}

	flags := root.PersistentFlags()
	flags.Int64("seed", 0, "random seed, 0 uses the current time")
	flags.String("log-level", "info", "log level: debug|info|warn|error")
	flags.Bool("pretty", false, "also render boards as box-drawing tables")
	flags.Bool("cpuprofile", false, "write a CPU profile to the working directory")

	viper.SetEnvPrefix("SUDOKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"seed", "log-level", "pretty", "cpuprofile"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newGenerateCommand(),
		newSolveCommand(),
		newValidateCommand(),
		newCountCommand(),
		newHintCommand(),
		newClassifyCommand(),
	)
	return root
}

// newService wires providers → use cases with one shared seeded rand
// source, so generation and hint selection are reproducible together.
func newService() *usecase.Service {
	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("rng initialized")
	rng := rand.New(rand.NewSource(seed))

	s := solver.NewBacktrackingSolver()
	return usecase.NewService(s, generator.New(s, rng), validator.New(), hint.New(s, rng))
}

func printBoard(cmd *cobra.Command, puzzle string) error {
	fmt.Fprintln(cmd.OutOrStdout(), puzzle)
	if viper.GetBool("pretty") {
		tbl, err := render.Table(puzzle)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl)
	}
	return nil
}
