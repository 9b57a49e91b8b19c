package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Layout is a text rendering of a board, one character per cell:
//
//	#  hidden      .  exposed     f  flagged
//	O  mine        F  flagged mine
//	*  detonated mine
//
// Only mine positions matter when a layout is loaded.
type Layout struct {
	Seed  int64  `yaml:"seed,omitempty"`
	Board string `yaml:"board"`
}

func (layout *Layout) Serialize() (string, error) {
	out, err := yaml.Marshal(layout)
	if err != nil {
		return "", errors.Wrap(err, "marshal layout")
	}
	return string(out), nil
}

func LoadLayout(in []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(in, &layout); err != nil {
		return nil, errors.Wrapf(ErrInvalidLayout, "unmarshal: %v", err)
	}
	if _, err := layout.rows(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Config returns the dimensions and mine count the layout describes
func (layout *Layout) Config() (Config, error) {
	rows, err := layout.rows()
	if err != nil {
		return Config{}, err
	}

	config := Config{Width: len(rows[0]), Height: len(rows)}
	for _, row := range rows {
		config.MineCount += strings.Count(row, "O") + strings.Count(row, "F") + strings.Count(row, "*")
	}
	return config, nil
}

// Mines returns the mine positions of the layout in row-major order
func (layout *Layout) Mines() ([]Point, error) {
	rows, err := layout.rows()
	if err != nil {
		return nil, err
	}

	var mines []Point
	for y, row := range rows {
		for x, c := range row {
			if isMineChar(c) {
				mines = append(mines, Point{x, y})
			}
		}
	}
	return mines, nil
}

// CreateBoard builds a board with every cell hidden and the layout's mines
func (layout *Layout) CreateBoard() (*Board, error) {
	config, err := layout.Config()
	if err != nil {
		return nil, err
	}
	mines, err := layout.Mines()
	if err != nil {
		return nil, err
	}
	return NewBoardWithMines(config.Width, config.Height, mines)
}

func (layout *Layout) rows() ([]string, error) {
	rows := strings.Split(strings.TrimSpace(layout.Board), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	width := len(rows[0])
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidLayout, "empty board")
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidLayout, "row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, c := range row {
			if !strings.ContainsRune("#.fOF*", c) {
				return nil, errors.Wrapf(ErrInvalidLayout, "unknown cell %q at %v", c, Point{x, y})
			}
		}
	}

	return rows, nil
}

func isMineChar(c rune) bool {
	return c == 'O' || c == 'F' || c == '*'
}

// Layout renders the current state of the board
func (board *Board) Layout() *Layout {
	var builder strings.Builder
	for y, row := range board.cells {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for _, cell := range row {
			builder.WriteByte(cell.serialize())
		}
	}
	return &Layout{Board: builder.String()}
}

func (cell Cell) serialize() byte {
	switch {
	case cell.IsMine():
		switch {
		case cell.IsDetonated():
			return '*'
		case cell.isFlagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.isFlagged:
		return 'f'
	case cell.isExposed:
		return '.'
	default:
		return '#'
	}
}
