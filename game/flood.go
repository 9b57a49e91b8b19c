package game

import (
	"github.com/gammazero/deque"
	"github.com/pkg/errors"

	"github.com/they4kman/sweepcore/util/collections"
)

// RevealResult reports what a reveal or chord did to the board
type RevealResult struct {
	HitMine bool
	// Number of cells newly exposed
	Exposed int
}

// Reveal exposes the cell at (x, y). A zero-hint cell cascades into every
// connected zero-hint cell and their numbered border. Flagged and already
// exposed cells are left alone.
func Reveal(board *Board, x, y int) (RevealResult, error) {
	if !board.InBounds(x, y) {
		return RevealResult{}, errors.Wrapf(ErrOutOfBounds, "reveal %v", Point{x, y})
	}

	cell := board.cell(x, y)
	if cell.isExposed || cell.isFlagged || cell.IsDetonated() {
		return RevealResult{}, nil
	}

	if cell.IsMine() {
		board.detonate(cell)
		return RevealResult{HitMine: true}, nil
	}

	return RevealResult{Exposed: flood(board, cell)}, nil
}

// Chord reveals every hidden, unflagged neighbour of an exposed numbered cell
// once the number of flags around it matches its hint. It stops at the first
// mine hit.
func Chord(board *Board, x, y int) (RevealResult, error) {
	if !board.InBounds(x, y) {
		return RevealResult{}, errors.Wrapf(ErrOutOfBounds, "chord %v", Point{x, y})
	}

	cell := board.cell(x, y)
	if !cell.isExposed || cell.hint == 0 {
		return RevealResult{}, nil
	}

	neighbors := board.Neighbors(x, y)
	numFlaggedNeighbors := 0
	for _, neighbor := range neighbors {
		if board.cell(neighbor.X, neighbor.Y).isFlagged {
			numFlaggedNeighbors++
		}
	}
	if numFlaggedNeighbors != cell.hint {
		return RevealResult{}, nil
	}

	var result RevealResult
	for _, neighbor := range neighbors {
		neighborResult, err := Reveal(board, neighbor.X, neighbor.Y)
		if err != nil {
			return result, err
		}
		result.Exposed += neighborResult.Exposed
		if neighborResult.HitMine {
			result.HitMine = true
			break
		}
	}

	return result, nil
}

// flood exposes start and cascades from every zero-hint cell it reaches,
// returning the number of cells exposed.
func flood(board *Board, start *Cell) int {
	visited := make(collections.Set[Point])
	var visitQueue deque.Deque[Point]

	enqueue := func(p Point) {
		// Don't visit, if already visited
		if visited.Contains(p) {
			return
		}
		visited.Add(p)
		visitQueue.PushBack(p)
	}

	numExposed := 0
	enqueue(start.Point())

	for visitQueue.Len() > 0 {
		p := visitQueue.PopFront()
		cell := board.cell(p.X, p.Y)
		if cell.isExposed || cell.isFlagged {
			continue
		}

		board.expose(cell)
		numExposed++

		if cell.hint == 0 {
			for _, neighbor := range board.Neighbors(p.X, p.Y) {
				enqueue(neighbor)
			}
		}
	}

	return numExposed
}
