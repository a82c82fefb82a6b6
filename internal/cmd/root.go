package cmd

import (
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-core/internal/config"
)

const defaultConfigPath = "./config.yml"

// options carries what PersistentPreRunE loads for the subcommands.
type options struct {
	configPath string
	logLevel   string

	conf   *config.Config
	logger *slog.Logger
}

func Root() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player tic-tac-toe on a 3x3 grid",
		Long: heredoc.Doc(`
			tictactoe plays the classic 3x3 game between two players sharing one seat.

			Use "play" for the terminal, "serve" for the local JSON API a browser page
			can drive, or "replay" to evaluate a recorded list of moves.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			if opts.logLevel != "" {
				conf.LogLevel = opts.logLevel
			}

			opts.conf = conf
			opts.logger = initLogger(conf, cmd.ErrOrStderr())

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Path to the config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	root.AddCommand(Serve(opts))
	root.AddCommand(Play(opts))
	root.AddCommand(Replay(opts))

	return root
}

// initialize logger.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
