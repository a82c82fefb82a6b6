package entity

import "github.com/rocketscienceinc/tictactoe-core/internal/board"

const (
	StatusOngoing = "ongoing"
	StatusWin     = "win"
	StatusTie     = "tie"

	EmptyCell = ""
)

// Game is a render-ready snapshot of one game.
type Game struct {
	ID     string             `json:"id,omitempty" yaml:"id,omitempty"`
	Board  [board.Size]string `json:"board" yaml:"board,flow"`
	Turn   *Player            `json:"player_turn,omitempty" yaml:"player_turn,omitempty"`
	Status string             `json:"status" yaml:"status"`
	Winner *Player            `json:"winner,omitempty" yaml:"winner,omitempty"`
	Line   []int              `json:"line,omitempty" yaml:"line,omitempty,flow"`
	Moves  int                `json:"moves" yaml:"moves"`
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWin() bool {
	return that.Status == StatusWin
}

func (that *Game) IsTie() bool {
	return that.Status == StatusTie
}

func (that *Game) IsFinished() bool {
	return that.IsWin() || that.IsTie()
}
