package game

import "fmt"

// Point is a grid coordinate: X is the column, Y the row
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

var neighborOffsets = [maxNeighbors]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Cell is stored by value inside its Board; accessors hand out copies.
type Cell struct {
	x, y int

	// 0..8 for safe cells, MineHint or DetonatedHint for mines
	hint int

	isExposed, isFlagged bool
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell Cell) X() int {
	return cell.x
}

func (cell Cell) Y() int {
	return cell.y
}

func (cell Cell) Point() Point {
	return Point{cell.x, cell.y}
}

// Hint is the number of neighbouring mines, or one of the mine sentinels
func (cell Cell) Hint() int {
	return cell.hint
}

func (cell Cell) IsMine() bool {
	return cell.hint < 0
}

func (cell Cell) IsDetonated() bool {
	return cell.hint == DetonatedHint
}

func (cell Cell) IsExposed() bool {
	return cell.isExposed
}

func (cell Cell) IsFlagged() bool {
	return cell.isFlagged
}

// state resolves how the cell should be drawn. Mines and wrong flags only
// surface once the game is over.
func (cell Cell) state(phase Phase) CellState {
	over := phase.IsTerminal()

	switch {
	case cell.IsDetonated():
		return MineLosing
	case cell.isFlagged:
		if over && !cell.IsMine() {
			return FlagWrong
		}
		return Flag
	case cell.isExposed:
		return CellState(cell.hint)
	case over && cell.IsMine():
		if phase == Won {
			return Mine
		}
		return MineUnrevealed
	default:
		return Unrevealed
	}
}
