package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/board"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type Status uint8

const (
	InProgress Status = iota
	Win
	Tie
)

func (s Status) String() string {
	switch s {
	case Win:
		return entity.StatusWin
	case Tie:
		return entity.StatusTie
	default:
		return entity.StatusOngoing
	}
}

type Player struct {
	Number int
	Mark   board.Mark
}

// Outcome is the result of the latest move. Winner and Line are set only for Win.
type Outcome struct {
	Status Status
	Winner Player
	Line   board.Line
}

func (o Outcome) IsFinished() bool {
	return o.Status != InProgress
}

// GameController applies moves to a board and decides when the game is over.
type GameController struct {
	board   *board.Board
	players [2]Player
	moves   int
	outcome Outcome
}

// NewGameController creates a game where the player holding first moves first.
func NewGameController(first, second board.Mark) (*GameController, error) {
	if first == "" || second == "" || first == second {
		return nil, fmt.Errorf("%w: %q, %q", apperror.ErrInvalidMarks, first, second)
	}

	return &GameController{
		board: board.New(),
		players: [2]Player{
			{Number: 1, Mark: first},
			{Number: 2, Mark: second},
		},
	}, nil
}

func (that *GameController) Players() [2]Player {
	return that.players
}

// Turn returns the player expected to move next.
func (that *GameController) Turn() Player {
	return that.players[that.moves%2]
}

func (that *GameController) Moves() int {
	return that.moves
}

func (that *GameController) Outcome() Outcome {
	return that.outcome
}

func (that *GameController) Board() [board.Size]board.Cell {
	return that.board.Contents()
}

// MakeTurn marks pos for the player whose turn it is. A move on an occupied square is
// rejected without passing the turn.
func (that *GameController) MakeTurn(pos board.Position) (Outcome, error) {
	if that.outcome.IsFinished() {
		return that.outcome, apperror.ErrGameFinished
	}

	if err := that.validateMove(pos); err != nil {
		return that.outcome, fmt.Errorf("invalid turn: %w", err)
	}

	player := that.Turn()
	if err := that.board.Set(pos, player.Mark); err != nil {
		return that.outcome, fmt.Errorf("failed to set cell: %w", err)
	}

	that.moves++
	that.outcome = that.evaluate()

	return that.outcome, nil
}

// validateMove - checks if the square can take a mark.
func (that *GameController) validateMove(pos board.Position) error {
	cell, err := that.board.Get(pos)
	if err != nil {
		return err
	}

	if !cell.IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, pos)
	}

	return nil
}

func (that *GameController) evaluate() Outcome {
	if line, ok := that.board.Triplet(); ok {
		mark, _ := that.board.Contents()[line[0]].Mark()

		return Outcome{
			Status: Win,
			Winner: that.playerByMark(mark),
			Line:   line,
		}
	}

	// the game will continue until all the squares are full
	if that.board.Full() {
		return Outcome{Status: Tie}
	}

	return Outcome{Status: InProgress}
}

func (that *GameController) playerByMark(mark board.Mark) Player {
	for _, player := range that.players {
		if player.Mark == mark {
			return player
		}
	}

	return Player{Mark: mark}
}

// Reset starts a new game with the same players.
func (that *GameController) Reset() {
	that.board.Clear()
	that.moves = 0
	that.outcome = Outcome{}
}

// Snapshot renders the current state for presenters.
func (that *GameController) Snapshot() *entity.Game {
	game := &entity.Game{
		Status: that.outcome.Status.String(),
		Moves:  that.moves,
	}

	for i, cell := range that.board.Contents() {
		game.Board[i] = cell.String()
	}

	switch that.outcome.Status {
	case Win:
		game.Winner = toEntityPlayer(that.outcome.Winner)
		game.Line = that.outcome.Line.Ints()
	case InProgress:
		game.Turn = toEntityPlayer(that.Turn())
	}

	return game
}

func toEntityPlayer(player Player) *entity.Player {
	return &entity.Player{
		Number: player.Number,
		Mark:   string(player.Mark),
	}
}
