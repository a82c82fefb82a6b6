package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-core/internal/replay"
)

func Replay(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Evaluates a recorded game",
		Long: heredoc.Doc(`
			replay reads a YAML file with the squares chosen in order and prints the
			resulting game as YAML. Use - to read from standard input.

			  marks:
			    first: x
			    second: o
			  moves: [0, 1, 2, 4, 3, 5, 7, 6, 8]

			Choices of a taken square, and choices made after the game ended, are
			skipped. Marks default to the configured ones.
		`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("could not open script: %w", err)
				}
				defer file.Close()

				in = file
			}

			script, err := replay.Load(in, replay.Marks{First: opts.conf.Marks.First, Second: opts.conf.Marks.Second})
			if err != nil {
				return err
			}

			game, err := replay.Run(opts.logger, script)
			if err != nil {
				return fmt.Errorf("could not replay %s: %w", args[0], err)
			}

			return replay.Write(cmd.OutOrStdout(), game)
		},
	}
}
