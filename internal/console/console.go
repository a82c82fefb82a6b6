package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/board"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const (
	commandQuit    = "q"
	commandNewGame = "n"
)

// Console runs a hot-seat game on a terminal: both players type square numbers into the same input.
type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
	game   *tictactoe.GameController
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, game *tictactoe.GameController) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
		game:   game,
	}
}

// Run reads moves until the input ends or the player quits.
func (that *Console) Run() error {
	log := that.logger.With("method", "Run")

	that.render()

	for {
		that.prompt()

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		}

		input := strings.TrimSpace(that.in.Text())
		switch input {
		case "":
			continue
		case commandQuit:
			return nil
		case commandNewGame:
			if that.game.Outcome().IsFinished() {
				that.game.Reset()
				log.Debug("new game started")
				that.render()
				continue
			}
		}

		if that.game.Outcome().IsFinished() {
			that.printf("The game is over. Type %s for a new game or %s to quit.\n", commandNewGame, commandQuit)
			continue
		}

		square, err := strconv.Atoi(input)
		if err != nil {
			that.printf("Not a square: %q\n", input)
			continue
		}

		outcome, err := that.game.MakeTurn(board.Position(square))
		switch {
		case errors.Is(err, apperror.ErrInvalidPosition):
			that.printf("Choose a square between 0 and %d.\n", board.Size-1)
			continue
		case errors.Is(err, apperror.ErrCellOccupied):
			that.printf("Square %d is already taken.\n", square)
			continue
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn made", "square", square, "status", outcome.Status.String())

		that.render()
		that.announce(outcome)
	}
}

func (that *Console) prompt() {
	if that.game.Outcome().IsFinished() {
		that.printf("> ")
		return
	}

	player := that.game.Turn()
	that.printf("Player %d (%s) > ", player.Number, player.Mark)
}

func (that *Console) announce(outcome tictactoe.Outcome) {
	switch outcome.Status {
	case tictactoe.Win:
		that.printf("Player %d wins!\n", outcome.Winner.Number)
	case tictactoe.Tie:
		that.printf("It's a tie!\n")
	default:
		return
	}

	that.printf("Type %s for a new game or %s to quit.\n", commandNewGame, commandQuit)
}

func (that *Console) render() {
	that.printf("\n%s\n", Render(that.game.Board()))
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// Render draws the grid. Empty squares show their number.
func Render(cells [board.Size]board.Cell) string {
	var sb strings.Builder

	for row := range 3 {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := range 3 {
			pos := row*3 + col
			if col > 0 {
				sb.WriteString("|")
			}

			label := strconv.Itoa(pos)
			if mark, ok := cells[pos].Mark(); ok {
				label = string(mark)
			}

			sb.WriteString(" " + label + " ")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
