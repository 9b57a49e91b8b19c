package game

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned for non-positive dimensions or a mine
	// count outside (0, width*height).
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrOutOfBounds is returned for coordinates outside the current grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrCellExposed is returned when flagging a cell that is already exposed.
	ErrCellExposed = errors.New("cell is exposed")
	// ErrNoFlagsRemaining is returned when every flag of the budget is placed.
	ErrNoFlagsRemaining = errors.New("no flags remaining")
	// ErrNotStarted is returned when restarting a game that was never started.
	ErrNotStarted = errors.New("game not started")
	// ErrInvalidLayout is returned for malformed board layouts.
	ErrInvalidLayout = errors.New("invalid layout")
)
