package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-core/internal/board"
	"github.com/rocketscienceinc/tictactoe-core/internal/console"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

func Play(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Plays a game in the terminal",
		Long: heredoc.Doc(`
			play starts a game for two players at the same keyboard. Type the number
			of a free square to mark it; the players alternate, starting with the
			first configured mark.

			Type n for a new game once a game is over, or q to quit.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			game, err := tictactoe.NewGameController(board.Mark(opts.conf.Marks.First), board.Mark(opts.conf.Marks.Second))
			if err != nil {
				return fmt.Errorf("could not start game: %w", err)
			}

			return console.New(opts.logger, cmd.InOrStdin(), cmd.OutOrStdout(), game).Run()
		},
	}
}
