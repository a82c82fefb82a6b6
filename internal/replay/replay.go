package replay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/board"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

// Script is a recorded sequence of square choices, e.g.
//
//	marks:
//	  first: x
//	  second: o
//	moves: [0, 1, 2, 4, 3, 5, 7, 6, 8]
type Script struct {
	Marks Marks `yaml:"marks"`
	Moves []int `yaml:"moves"`
}

type Marks struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// Load decodes a script. Missing marks are taken from defaults.
func Load(r io.Reader, defaults Marks) (*Script, error) {
	var script Script

	if err := yaml.NewDecoder(r).Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	if script.Marks.First == "" {
		script.Marks.First = defaults.First
	}

	if script.Marks.Second == "" {
		script.Marks.Second = defaults.Second
	}

	return &script, nil
}

// Run plays the script from an empty board. Like clicks on the page, choices of a taken
// square and choices made after the game ended are skipped.
func Run(logger *slog.Logger, script *Script) (*entity.Game, error) {
	log := logger.With("component", "replay")

	game, err := tictactoe.NewGameController(board.Mark(script.Marks.First), board.Mark(script.Marks.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	for i, square := range script.Moves {
		_, err = game.MakeTurn(board.Position(square))

		switch {
		case err == nil:
			continue
		case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrGameFinished):
			log.Debug("move skipped", "index", i, "square", square, "reason", err)
		default:
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}

	return game.Snapshot(), nil
}

// Write encodes the snapshot as YAML.
func Write(w io.Writer, game *entity.Game) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(game); err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush game: %w", err)
	}

	return nil
}
