package game

import "fmt"

type CellState int
type Phase int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

// Hint sentinels stored on mine cells
const (
	MineHint      = -1
	DetonatedHint = -2
)

const maxNeighbors = 8

const (
	NotStarted Phase = iota
	InProgress
	Won
	Lost
)

func (phase Phase) String() string {
	switch phase {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Phase(%d)", int(phase))
	}
}

// IsTerminal reports whether no further moves are accepted in this phase
func (phase Phase) IsTerminal() bool {
	return phase == Won || phase == Lost
}
