package random

import (
	"math/rand"

	"github.com/they4kman/sweepcore/director"
	"github.com/they4kman/sweepcore/game"
)

// Director reveals a random hidden cell on every move
type Director struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Director {
	return &Director{rng: rng}
}

func (d *Director) Next(snapshot game.GameSnapshot) (director.Move, bool) {
	return d.Pick(snapshot.Hidden())
}

// Pick chooses one of cells to reveal
func (d *Director) Pick(cells []game.CellView) (director.Move, bool) {
	if len(cells) == 0 {
		return director.Move{}, false
	}

	cell := cells[d.rng.Intn(len(cells))]
	return director.Move{Kind: director.Reveal, X: cell.X, Y: cell.Y}, true
}
