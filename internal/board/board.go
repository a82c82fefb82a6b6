package board

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

// Board is a passive store of the nine squares. It does not know whose turn it is and
// accepts overwrites; turn and occupancy rules belong to the caller.
type Board struct {
	cells [Size]Cell
}

func New() *Board {
	return &Board{}
}

// Contents returns a copy of the squares.
func (that *Board) Contents() [Size]Cell {
	return that.cells
}

func (that *Board) Get(pos Position) (Cell, error) {
	if !pos.Valid() {
		return Empty(), fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, pos)
	}

	return that.cells[pos], nil
}

// Set puts mark into the square at pos, replacing whatever was there.
func (that *Board) Set(pos Position, mark Mark) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, pos)
	}

	that.cells[pos] = Marked(mark)

	return nil
}

func (that *Board) Clear() {
	that.cells = [Size]Cell{}
}

// Len returns the number of filled squares.
func (that *Board) Len() int {
	n := 0
	for _, cell := range that.cells {
		if !cell.IsEmpty() {
			n++
		}
	}

	return n
}

func (that *Board) Full() bool {
	return that.Len() == Size
}

// Triplet reports the first completed line on the board, see FindTriplet.
func (that *Board) Triplet() (Line, bool) {
	return FindTriplet(that.cells)
}
