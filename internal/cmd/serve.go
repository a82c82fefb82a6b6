package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-core/internal"
)

func Serve(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serves the local game API",
		Long: heredoc.Doc(`
			serve starts an HTTP server on the configured port. Every game lives in
			memory and disappears when the server stops.

			  POST   /games              start a game
			  GET    /games/{id}         read a game
			  POST   /games/{id}/moves   {"position": 0-8}
			  POST   /games/{id}/reset   start over
			  DELETE /games/{id}         forget a game
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.RunApp(cmd.Context(), opts.logger, opts.conf)
		},
	}
}
