package game

// CellView is the read-only projection of a cell handed to presentation
// layers. IsMine and Hint stay zero for hidden cells until the game is over.
type CellView struct {
	X, Y        int
	Exposed     bool
	Flagged     bool
	IsMine      bool
	IsDetonated bool
	Hint        int
	State       CellState
}

type GameSnapshot struct {
	Phase          Phase
	Elapsed        int
	RemainingFlags int
	Width, Height  int
	// Indexed [y][x]
	Cells [][]CellView
}

// Cell returns the view of the cell at (x, y)
func (snapshot GameSnapshot) Cell(x, y int) (CellView, bool) {
	if x < 0 || y < 0 || x >= snapshot.Width || y >= snapshot.Height {
		return CellView{}, false
	}
	return snapshot.Cells[y][x], true
}

// Neighbors returns the views of the in-bounds neighbours of (x, y)
func (snapshot GameSnapshot) Neighbors(x, y int) []CellView {
	neighbors := make([]CellView, 0, maxNeighbors)
	for _, offset := range neighborOffsets {
		if view, ok := snapshot.Cell(x+offset.X, y+offset.Y); ok {
			neighbors = append(neighbors, view)
		}
	}
	return neighbors
}

// Hidden returns every cell that is neither exposed nor flagged
func (snapshot GameSnapshot) Hidden() []CellView {
	var hidden []CellView
	for _, row := range snapshot.Cells {
		for _, view := range row {
			if !view.Exposed && !view.Flagged {
				hidden = append(hidden, view)
			}
		}
	}
	return hidden
}

func (board *Board) view(phase Phase) [][]CellView {
	views := make([][]CellView, board.height)
	for y, row := range board.cells {
		views[y] = make([]CellView, board.width)
		for x, cell := range row {
			views[y][x] = cell.view(phase)
		}
	}
	return views
}

func (cell Cell) view(phase Phase) CellView {
	view := CellView{
		X:           cell.x,
		Y:           cell.y,
		Exposed:     cell.isExposed,
		Flagged:     cell.isFlagged,
		IsDetonated: cell.IsDetonated(),
		State:       cell.state(phase),
	}

	if cell.isExposed || view.IsDetonated || phase.IsTerminal() {
		view.IsMine = cell.IsMine()
		view.Hint = cell.hint
	}

	return view
}
