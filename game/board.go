package game

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Config describes the board of a single game
type Config struct {
	Width, Height int
	MineCount     int
}

func (config Config) NumCells() int {
	return config.Width * config.Height
}

func (config Config) String() string {
	return fmt.Sprintf("%dx%d/%d", config.Width, config.Height, config.MineCount)
}

// Validate checks the dimensions are positive and the mine count lies
// strictly between zero and the number of cells.
func (config Config) Validate() error {
	if config.Width < 1 || config.Height < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "dimensions %dx%d must be positive", config.Width, config.Height)
	}
	if config.MineCount <= 0 || config.MineCount >= config.NumCells() {
		return errors.Wrapf(ErrInvalidConfiguration,
			"mine count %d must be between 0 and %d exclusive", config.MineCount, config.NumCells())
	}
	return nil
}

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell

	numExposed int
	numFlags   int
}

// Generate creates a board with config.MineCount mines placed uniformly at
// random using rng.
func Generate(config Config, rng *rand.Rand) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := newBoard(config)

	// Store cell indexes, to shuffle later and fill mines
	cellIndexes := make([]int, config.NumCells())
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	mines := make([]Point, config.MineCount)
	for i := range mines {
		idx := cellIndexes[i]
		mines[i] = Point{X: idx % config.Width, Y: idx / config.Width}
	}
	board.fillMines(mines)

	return board, nil
}

// NewBoardWithMines creates a board with mines at exactly the given points
func NewBoardWithMines(width, height int, mines []Point) (*Board, error) {
	config := Config{Width: width, Height: height, MineCount: len(mines)}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := newBoard(config)
	seen := make(map[Point]struct{}, len(mines))
	for _, mine := range mines {
		if !board.InBounds(mine.X, mine.Y) {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "mine %v outside %v board", mine, config)
		}
		if _, dupe := seen[mine]; dupe {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "duplicate mine at %v", mine)
		}
		seen[mine] = struct{}{}
	}
	board.fillMines(mines)

	return board, nil
}

func newBoard(config Config) *Board {
	board := &Board{
		width:    config.Width,
		height:   config.Height,
		numMines: config.MineCount,
		cells:    make([][]Cell, config.Height),
	}

	for y := range board.cells {
		row := make([]Cell, config.Width)
		for x := range row {
			row[x].x, row[x].y = x, y
		}
		board.cells[y] = row
	}

	return board
}

// fillMines marks the given cells as mines, then computes the hints of every
// other cell.
func (board *Board) fillMines(mines []Point) {
	for _, mine := range mines {
		board.cell(mine.X, mine.Y).hint = MineHint
	}

	for y, row := range board.cells {
		for x := range row {
			cell := &row[x]
			if cell.IsMine() {
				continue
			}
			for _, neighbor := range board.Neighbors(x, y) {
				if board.cell(neighbor.X, neighbor.Y).IsMine() {
					cell.hint++
				}
			}
		}
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) MineCount() int {
	return board.numMines
}

func (board *Board) ExposedCount() int {
	return board.numExposed
}

func (board *Board) FlaggedCount() int {
	return board.numFlags
}

// SafeCellCount is the number of exposures needed to win
func (board *Board) SafeCellCount() int {
	return board.NumCells() - board.numMines
}

func (board *Board) RemainingFlags() int {
	return board.numMines - board.numFlags
}

func (board *Board) Config() Config {
	return Config{Width: board.width, Height: board.height, MineCount: board.numMines}
}

func (board *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

// CellAt returns a copy of the cell at (x, y)
func (board *Board) CellAt(x, y int) (Cell, bool) {
	if !board.InBounds(x, y) {
		return Cell{}, false
	}
	return board.cells[y][x], true
}

// Cells calls visit for every cell in row-major order
func (board *Board) Cells(visit func(Cell)) {
	for _, row := range board.cells {
		for _, cell := range row {
			visit(cell)
		}
	}
}

// Mines returns the positions of every mine, in row-major order
func (board *Board) Mines() []Point {
	mines := make([]Point, 0, board.numMines)
	board.Cells(func(cell Cell) {
		if cell.IsMine() {
			mines = append(mines, cell.Point())
		}
	})
	return mines
}

// Neighbors returns the in-bounds king-move neighbours of (x, y)
func (board *Board) Neighbors(x, y int) []Point {
	neighbors := make([]Point, 0, maxNeighbors)
	for _, offset := range neighborOffsets {
		nx, ny := x+offset.X, y+offset.Y
		if board.InBounds(nx, ny) {
			neighbors = append(neighbors, Point{nx, ny})
		}
	}
	return neighbors
}

// ToggleFlag flags or unflags the cell at (x, y). Placing a flag consumes
// one of MineCount flags; removing one is always allowed.
func (board *Board) ToggleFlag(x, y int) error {
	if !board.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "flag %v", Point{x, y})
	}

	cell := board.cell(x, y)
	if cell.isExposed {
		return errors.Wrapf(ErrCellExposed, "flag %v", cell.Point())
	}

	if cell.isFlagged {
		cell.isFlagged = false
		board.numFlags--
	} else {
		if board.numFlags >= board.numMines {
			return errors.Wrapf(ErrNoFlagsRemaining, "flag %v", cell.Point())
		}
		cell.isFlagged = true
		board.numFlags++
	}

	return nil
}

func (board *Board) cell(x, y int) *Cell {
	return &board.cells[y][x]
}

// expose marks a safe, hidden, unflagged cell as exposed
func (board *Board) expose(cell *Cell) {
	if cell.IsMine() || cell.isExposed || cell.isFlagged {
		panic(fmt.Sprintf("expose called on %v (hint=%d exposed=%v flagged=%v)",
			cell, cell.hint, cell.isExposed, cell.isFlagged))
	}

	cell.isExposed = true
	board.numExposed++

	if board.numExposed > board.SafeCellCount() {
		panic(fmt.Sprintf("exposed count %d exceeds safe cells %d", board.numExposed, board.SafeCellCount()))
	}
}

func (board *Board) detonate(cell *Cell) {
	if !cell.IsMine() {
		panic(fmt.Sprintf("detonate called on safe %v", cell))
	}
	cell.hint = DetonatedHint
}

// Cleared reports whether every safe cell is exposed
func (board *Board) Cleared() bool {
	return board.numExposed == board.SafeCellCount()
}
