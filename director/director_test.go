package director_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweepcore/director"
	"github.com/they4kman/sweepcore/game"
)

// scripted replays a fixed list of moves
type scripted struct {
	moves []director.Move
}

func (s *scripted) Next(game.GameSnapshot) (director.Move, bool) {
	if len(s.moves) == 0 {
		return director.Move{}, false
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, true
}

// stuck repeats a move that never changes the board
type stuck struct{}

func (stuck) Next(game.GameSnapshot) (director.Move, bool) {
	return director.Move{Kind: director.Reveal, X: -1, Y: -1}, true
}

func newGame(t *testing.T, board string) *game.Game {
	log := logrus.New()
	log.SetOutput(io.Discard)

	g := game.NewGame(game.WithLogger(log))
	_, err := g.StartLayout(&game.Layout{Board: board})
	require.NoError(t, err)
	return g
}

func TestPlay(t *testing.T) {
	g := newGame(t, "O##\n###\n###")

	var observed []director.Move
	snapshot, err := director.Play(g, &scripted{moves: []director.Move{
		{Kind: director.Reveal, X: 1, Y: 1},
		{Kind: director.Flag, X: 0, Y: 0},
		{Kind: director.Chord, X: 1, Y: 1},
	}}, func(move director.Move, _ game.GameSnapshot) {
		observed = append(observed, move)
	})
	require.NoError(t, err)
	require.Equal(t, game.Won, snapshot.Phase)
	require.Len(t, observed, 3)
}

func TestPlay_NoMove(t *testing.T) {
	g := newGame(t, "O##")

	snapshot, err := director.Play(g, &scripted{}, nil)
	require.ErrorIs(t, err, director.ErrNoMove)
	require.Equal(t, game.InProgress, snapshot.Phase)
}

func TestPlay_Stalled(t *testing.T) {
	g := newGame(t, "O##")

	_, err := director.Play(g, stuck{}, nil)
	require.ErrorIs(t, err, director.ErrStalled)
}

func TestMove_String(t *testing.T) {
	require.Equal(t, "chord (2, 3)", director.Move{Kind: director.Chord, X: 2, Y: 3}.String())
}
