// Package director plays games through the public snapshot API.
package director

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/game"
)

type MoveKind int

const (
	Reveal MoveKind = iota
	Flag
	Chord
)

func (kind MoveKind) String() string {
	switch kind {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(kind))
	}
}

type Move struct {
	Kind MoveKind
	X, Y int
}

func (move Move) String() string {
	return fmt.Sprintf("%s (%d, %d)", move.Kind, move.X, move.Y)
}

// Director picks moves for a game it can only see through snapshots
type Director interface {
	/**
	 * Choose the next move, or return false when there is nothing to do
	 */
	Next(snapshot game.GameSnapshot) (Move, bool)
}

var (
	ErrNoMove  = errors.New("director has no move")
	ErrStalled = errors.New("director stopped making progress")
)

// Apply performs move on g
func Apply(g *game.Game, move Move) game.GameSnapshot {
	switch move.Kind {
	case Flag:
		return g.ToggleFlag(move.X, move.Y)
	case Chord:
		return g.Chord(move.X, move.Y)
	default:
		return g.Reveal(move.X, move.Y)
	}
}

// Play lets director make moves until the game is over. observe, if not nil,
// is called after every move.
func Play(g *game.Game, director Director, observe func(Move, game.GameSnapshot)) (game.GameSnapshot, error) {
	snapshot := g.Snapshot()
	maxMoves := 2*snapshot.Width*snapshot.Height + 1

	for moves := 0; snapshot.Phase == game.InProgress; moves++ {
		if moves >= maxMoves {
			return snapshot, errors.Wrapf(ErrStalled, "after %d moves", moves)
		}

		move, ok := director.Next(snapshot)
		if !ok {
			return snapshot, errors.WithStack(ErrNoMove)
		}

		logrus.WithField("move", move).Debug("Director moved")

		snapshot = Apply(g, move)
		if observe != nil {
			observe(move, snapshot)
		}
	}

	return snapshot, nil
}
