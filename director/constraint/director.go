package constraint

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/sweepcore/director"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

// Director flags and clears cells it can prove, and otherwise guesses the
// cell least likely to hold a mine.
type Director struct {
	random *random.Director
}

func New(rng *rand.Rand) *Director {
	return &Director{random: random.New(rng)}
}

// Observation states that numMines of cells hold mines
type Observation struct {
	origin   game.Point
	numMines int
	cells    collections.Set[game.Point]
}

func (observation Observation) String() string {
	cells := sortedPoints(observation.cells)
	reprs := make([]string, len(cells))
	for i, cell := range cells {
		reprs[i] = cell.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", observation.origin, observation.numMines, strings.Join(reprs, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (d *Director) Next(snapshot game.GameSnapshot) (director.Move, bool) {
	observations := observe(snapshot)

	actors := []func([]Observation, game.GameSnapshot) (director.Move, bool){
		actDeliberate,
		actSubset,
		d.actLowestProbability,
	}
	for _, actor := range actors {
		if move, ok := actor(observations, snapshot); ok {
			return move, true
		}
	}

	return d.random.Next(snapshot)
}

// observe builds one observation per exposed number bordering hidden cells
func observe(snapshot game.GameSnapshot) []Observation {
	var observations []Observation

	for _, row := range snapshot.Cells {
		for _, cell := range row {
			if !cell.Exposed || cell.Hint <= 0 {
				continue
			}

			observation := Observation{
				origin:   game.Point{X: cell.X, Y: cell.Y},
				numMines: cell.Hint,
				cells:    make(collections.Set[game.Point]),
			}
			for _, neighbor := range snapshot.Neighbors(cell.X, cell.Y) {
				switch {
				case neighbor.Flagged:
					observation.numMines--
				case !neighbor.Exposed:
					observation.cells.Add(game.Point{X: neighbor.X, Y: neighbor.Y})
				}
			}

			if len(observation.cells) > 0 {
				observations = append(observations, observation)
			}
		}
	}

	return observations
}

func actDeliberate(observations []Observation, snapshot game.GameSnapshot) (director.Move, bool) {
	for _, observation := range observations {
		switch {
		case observation.numMines == 0:
			return move(director.Chord, observation.origin, observation, "all mines flagged"), true
		case observation.numMines == len(observation.cells) && snapshot.RemainingFlags > 0:
			return move(director.Flag, sortedPoints(observation.cells)[0], observation, "every cell is a mine"), true
		}
	}
	return director.Move{}, false
}

// actSubset compares pairs of observations: when one's cells lie within
// another's, the leftover cells hold the difference in mines.
func actSubset(observations []Observation, snapshot game.GameSnapshot) (director.Move, bool) {
	for _, inner := range observations {
		for _, outer := range observations {
			if inner.origin == outer.origin {
				continue
			}
			if _, isSubset := inner.cells.IntersectionEx(outer.cells); !isSubset {
				continue
			}

			leftover := outer.cells.Difference(inner.cells)
			if len(leftover) == 0 {
				continue
			}

			occludedMines := outer.numMines - inner.numMines
			split := Observation{origin: outer.origin, numMines: occludedMines, cells: leftover}

			switch {
			case occludedMines == 0:
				return move(director.Reveal, sortedPoints(leftover)[0], split, "leftover is clear"), true
			case occludedMines == len(leftover) && snapshot.RemainingFlags > 0:
				return move(director.Flag, sortedPoints(leftover)[0], split, "leftover is mined"), true
			}
		}
	}
	return director.Move{}, false
}

// actLowestProbability reveals the frontier cell whose worst observation
// gives it the lowest chance of being a mine, unless an unobserved cell is
// safer on average.
func (d *Director) actLowestProbability(observations []Observation, snapshot game.GameSnapshot) (director.Move, bool) {
	if len(observations) == 0 {
		return director.Move{}, false
	}

	cellProbabilities := make(map[game.Point]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, ok := cellProbabilities[cell]; !ok || probability > past {
				cellProbabilities[cell] = probability
			}
		}
	}

	frontier := make(collections.Set[game.Point], len(cellProbabilities))
	for cell := range cellProbabilities {
		frontier.Add(cell)
	}

	var best game.Point
	lowestProbability := 2.0
	for _, cell := range sortedPoints(frontier) {
		if probability := cellProbabilities[cell]; probability < lowestProbability {
			best, lowestProbability = cell, probability
		}
	}

	var unobserved []game.CellView
	for _, cell := range snapshot.Hidden() {
		if !frontier.Contains(game.Point{X: cell.X, Y: cell.Y}) {
			unobserved = append(unobserved, cell)
		}
	}
	if len(unobserved) > 0 {
		density := float64(snapshot.RemainingFlags) / float64(len(snapshot.Hidden()))
		if density < lowestProbability {
			return d.random.Pick(unobserved)
		}
	}

	return director.Move{Kind: director.Reveal, X: best.X, Y: best.Y}, true
}

func move(kind director.MoveKind, target game.Point, observation Observation, reason string) director.Move {
	logrus.WithFields(logrus.Fields{
		"observation": observation.String(),
		"reason":      reason,
	}).Debug("Deduced move")

	return director.Move{Kind: kind, X: target.X, Y: target.Y}
}

func sortedPoints(set collections.Set[game.Point]) []game.Point {
	points := set.Values()
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
