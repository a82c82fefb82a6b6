package board

// Line is three positions that win when they all hold the same mark.
type Line [3]Position

// Ints returns the line as plain indexes.
func (l Line) Ints() []int {
	return []int{int(l[0]), int(l[1]), int(l[2])}
}

// lines is ordered by priority: rows, then columns, then diagonals.
var lines = [8]Line{
	// horizontals
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	// verticals
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	// diagonals
	{0, 4, 8},
	{2, 4, 6},
}

// Lines returns the eight win lines in the order FindTriplet checks them.
func Lines() [8]Line {
	return lines
}

// FindTriplet returns the first line whose three cells are filled with the same mark.
// When several lines are complete at once, the earliest one in Lines wins.
func FindTriplet(cells [Size]Cell) (Line, bool) {
	for _, line := range lines {
		a, okA := cells[line[0]].Mark()
		b, okB := cells[line[1]].Mark()
		c, okC := cells[line[2]].Mark()

		if okA && okB && okC && a == b && b == c {
			return line, true
		}
	}

	return Line{}, false
}
