package board

import "strconv"

// Size is the number of squares on the grid.
const Size = 9

// Mark is the symbol a player puts into a square.
type Mark string

// Position identifies a square, laid out row-major:
//
//	0 | 1 | 2
//	3 | 4 | 5
//	6 | 7 | 8
type Position int

func (p Position) Valid() bool {
	return p >= 0 && p < Size
}

func (p Position) String() string {
	return strconv.Itoa(int(p))
}

// Cell is either empty or holds a mark. The zero value is an empty cell.
type Cell struct {
	mark   Mark
	filled bool
}

func Empty() Cell {
	return Cell{}
}

func Marked(mark Mark) Cell {
	return Cell{mark: mark, filled: true}
}

// Mark returns the mark stored in the cell and whether the cell is filled.
func (c Cell) Mark() (Mark, bool) {
	return c.mark, c.filled
}

func (c Cell) IsEmpty() bool {
	return !c.filled
}

// String returns the mark, or an empty string for an empty cell.
func (c Cell) String() string {
	return string(c.mark)
}
